package flagmeta_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/apstndb/flagbind/flagmeta"
)

func TestValueTypesAndStrings(t *testing.T) {
	t.Parallel()
	csv := flagmeta.CustomType("csv")

	tests := []struct {
		name     string
		value    flagmeta.Value
		wantType flagmeta.Type
		wantStr  string
	}{
		{"int", flagmeta.Int(-150), flagmeta.IntType, "-150"},
		{"bool", flagmeta.Bool(true), flagmeta.BoolType, "TRUE"},
		{"string", flagmeta.String("hello"), flagmeta.StringType, "hello"},
		{"duration", flagmeta.Duration(1500 * time.Millisecond), flagmeta.DurationType, "1.5s"},
		{"custom list", flagmeta.NewCustom(csv, []string{"a", "b"}), csv, "a,b"},
		{"custom nil", flagmeta.NewCustom(csv, nil), csv, ""},
		{"enum", flagmeta.NewEnum("Mode", "A").MustMember("A"), flagmeta.Type{Kind: flagmeta.KindEnum, Name: "Mode"}, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.value.Type())
			assert.Equal(t, tt.wantStr, tt.value.String())
		})
	}
}

func TestNewCustomRejectsPrimitiveType(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { flagmeta.NewCustom(flagmeta.IntType, 1) })
}

func TestAs(t *testing.T) {
	t.Parallel()
	v := flagmeta.NewCustom(flagmeta.CustomType("csv"), []string{"q1"})

	got, ok := flagmeta.As[[]string](v)
	assert.True(t, ok)
	assert.Equal(t, []string{"q1"}, got)

	_, ok = flagmeta.As[int](v)
	assert.False(t, ok)
	_, ok = flagmeta.As[[]string](flagmeta.Int(1))
	assert.False(t, ok)
}

func TestTypeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "int", flagmeta.IntType.String())
	assert.Equal(t, "custom csv", flagmeta.CustomType("csv").String())
	assert.Equal(t, "enum Mode", flagmeta.Type{Kind: flagmeta.KindEnum, Name: "Mode"}.String())
	assert.Equal(t, "<invalid>", flagmeta.Type{}.String())
	assert.False(t, flagmeta.Type{}.IsValid())
	assert.True(t, flagmeta.DurationType.IsValid())
	assert.Equal(t, "Kind(99)", flagmeta.Kind(99).String())
}

func TestMetadataIsImmutable(t *testing.T) {
	t.Parallel()
	base := flagmeta.New("spawn_z_offset", flagmeta.Int(0))
	described := base.WithDescription("vertical spawn offset")

	assert.Equal(t, "", base.Description())
	assert.Equal(t, "vertical spawn offset", described.Description())
	assert.Equal(t, "spawn_z_offset", described.Name())
	assert.Equal(t, flagmeta.Int(0), described.Default())
	assert.Equal(t, flagmeta.IntType, described.Type())
	assert.False(t, base.IsZero())
	assert.True(t, flagmeta.Metadata{}.IsZero())
	assert.Equal(t, flagmeta.Type{}, flagmeta.Metadata{}.Type())
}
