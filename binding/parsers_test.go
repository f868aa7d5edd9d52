package binding_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/flagbind/binding"
	"github.com/apstndb/flagbind/flagmeta"
)

func TestRangeParsers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parser  binding.Parser
		meta    flagmeta.Metadata
		raw     *string
		want    flagmeta.Value
		wantErr string
	}{
		{
			name:   "int in range",
			parser: binding.IntRangeParser(1, 64),
			meta:   flagmeta.New("max_players", flagmeta.Int(16)),
			raw:    lo.ToPtr("64"),
			want:   flagmeta.Int(64),
		},
		{
			name:    "int above range",
			parser:  binding.IntRangeParser(1, 64),
			meta:    flagmeta.New("max_players", flagmeta.Int(16)),
			raw:     lo.ToPtr("65"),
			wantErr: "value 65 is greater than maximum 64",
		},
		{
			name:   "int absent",
			parser: binding.IntRangeParser(1, 64),
			meta:   flagmeta.New("max_players", flagmeta.Int(16)),
			want:   flagmeta.Int(16),
		},
		{
			name:   "duration in range",
			parser: binding.DurationRangeParser(time.Millisecond, time.Minute),
			meta:   flagmeta.New("tick_interval", flagmeta.Duration(50*time.Millisecond)),
			raw:    lo.ToPtr("1s"),
			want:   flagmeta.Duration(time.Second),
		},
		{
			name:    "duration below range",
			parser:  binding.DurationRangeParser(time.Millisecond, time.Minute),
			meta:    flagmeta.New("tick_interval", flagmeta.Duration(50*time.Millisecond)),
			raw:     lo.ToPtr("0s"),
			wantErr: "duration 0s is less than minimum 1ms",
		},
		{
			name:   "string length in range",
			parser: binding.StringLengthParser(0, 5),
			meta:   flagmeta.New("motd", flagmeta.String("")),
			raw:    lo.ToPtr("hello"),
			want:   flagmeta.String("hello"),
		},
		{
			name:    "string too long",
			parser:  binding.StringLengthParser(0, 5),
			meta:    flagmeta.New("motd", flagmeta.String("")),
			raw:     lo.ToPtr("hello!"),
			wantErr: "string length 6 is greater than maximum 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.parser(tt.raw, tt.meta)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomParserValidators(t *testing.T) {
	t.Parallel()
	urlType := flagmeta.CustomType("url")
	meta := flagmeta.New("webhook", flagmeta.NewCustom(urlType, &url.URL{Scheme: "https", Host: "localhost"}))

	httpsOnly := func(u *url.URL) error {
		if u.Scheme != "https" {
			return errors.New("scheme must be https")
		}
		return nil
	}
	p := binding.CustomParser(urlType, url.Parse, httpsOnly)

	v, err := p(lo.ToPtr("https://example.com/hook"), meta)
	require.NoError(t, err)
	u, ok := flagmeta.As[*url.URL](v)
	require.True(t, ok)
	assert.Equal(t, "example.com", u.Host)

	_, err = p(lo.ToPtr("http://example.com/hook"), meta)
	assert.EqualError(t, err, "scheme must be https")

	v, err = p(nil, meta)
	require.NoError(t, err)
	assert.Equal(t, meta.Default(), v)

	assert.Panics(t, func() { binding.CustomParser(flagmeta.IntType, url.Parse) })
}
