package parser_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/apstndb/flagbind/internal/parser"
)

type parseCase[T any] struct {
	name    string
	input   string
	want    T
	wantErr string
}

func runParseCases[T any](t *testing.T, parse func(string) (T, error), tests []parseCase[T]) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Parse(%q) error = %v, want containing %q", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestBoolParser(t *testing.T) {
	t.Parallel()
	runParseCases(t, parser.NewBoolParser().Parse, []parseCase[bool]{
		{name: "true lowercase", input: "true", want: true},
		{name: "TRUE uppercase", input: "TRUE", want: true},
		{name: "FALSE uppercase", input: "FALSE", want: false},
		{name: "with spaces", input: "  true  ", want: true},
		{name: "1", input: "1", want: true},
		{name: "0", input: "0", want: false},
		{name: "invalid", input: "yes", wantErr: "invalid syntax"},
		{name: "empty", input: "", wantErr: "invalid syntax"},
	})
}

func TestIntParser(t *testing.T) {
	t.Parallel()

	t.Run("basic parsing", func(t *testing.T) {
		runParseCases(t, parser.NewIntParser().Parse, []parseCase[int64]{
			{name: "positive", input: "42", want: 42},
			{name: "negative", input: "-150", want: -150},
			{name: "with spaces", input: "  123  ", want: 123},
			{name: "hex is not base 10", input: "0x10", wantErr: "invalid syntax"},
			{name: "overflow", input: "9223372036854775808", wantErr: "out of range"},
			{name: "invalid", input: "abc", wantErr: "invalid syntax"},
			{name: "empty", input: "", wantErr: "invalid syntax"},
		})
	})

	t.Run("with range", func(t *testing.T) {
		runParseCases(t, parser.NewIntRangeParser(1, 100).Parse, []parseCase[int64]{
			{name: "min", input: "1", want: 1},
			{name: "max", input: "100", want: 100},
			{name: "below", input: "0", wantErr: "value 0 is less than minimum 1"},
			{name: "above", input: "101", wantErr: "value 101 is greater than maximum 100"},
			{name: "malformed", input: "x", wantErr: "invalid syntax"},
		})
	})
}

func TestDurationParser(t *testing.T) {
	t.Parallel()
	runParseCases(t, parser.NewDurationRangeParser(0, 24*time.Hour).Parse, []parseCase[time.Duration]{
		{name: "seconds", input: "10s", want: 10 * time.Second},
		{name: "complex", input: "1h30m", want: 90 * time.Minute},
		{name: "with spaces", input: "  100ms  ", want: 100 * time.Millisecond},
		{name: "negative rejected", input: "-1s", wantErr: "duration -1s is less than minimum 0s"},
		{name: "above maximum", input: "25h", wantErr: "duration 25h0m0s is greater than maximum 24h0m0s"},
		{name: "invalid", input: "abc", wantErr: "invalid duration"},
	})
}

func TestStringParser(t *testing.T) {
	t.Parallel()

	runParseCases(t, parser.NewStringParser().Parse, []parseCase[string]{
		{name: "kept as is", input: "  kept as is ", want: "  kept as is "},
		{name: "empty", input: "", want: ""},
	})
	runParseCases(t, parser.NewStringLengthParser(1, 3).Parse, []parseCase[string]{
		{name: "too short", input: "", wantErr: "string length 0 is less than minimum 1"},
		{name: "shortest", input: "a", want: "a"},
		{name: "longest", input: "abc", want: "abc"},
		{name: "too long", input: "abcd", wantErr: "string length 4 is greater than maximum 3"},
	})
}

func TestEnumParser(t *testing.T) {
	t.Parallel()

	type Color int
	const (
		Red Color = iota
		Green
		Blue
	)

	p := parser.NewEnumParser(map[string]Color{
		"RED":   Red,
		"GREEN": Green,
		"BLUE":  Blue,
	})

	runParseCases(t, p.Parse, []parseCase[Color]{
		{name: "exact match", input: "RED", want: Red},
		{name: "lowercase", input: "red", want: Red},
		{name: "mixed case", input: "GrEeN", want: Green},
		{name: "with spaces", input: " BLUE ", want: Blue},
		{name: "with quotes", input: "'BLUE'", wantErr: "must be one of"},
		{name: "invalid", input: "YELLOW", wantErr: `invalid value "YELLOW", must be one of: BLUE, GREEN, RED`},
		{name: "empty", input: "", wantErr: "must be one of"},
	})

	if diff := cmp.Diff([]string{"BLUE", "GREEN", "RED"}, p.ValidNames()); diff != "" {
		t.Errorf("ValidNames() mismatch (-want +got):\n%s", diff)
	}

	t.Run("exact name wins over folded", func(t *testing.T) {
		p := parser.NewEnumParser(map[string]int{"a": 1, "A": 2})
		for input, want := range map[string]int{"a": 1, "A": 2} {
			if got, err := p.Parse(input); err != nil || got != want {
				t.Errorf("Parse(%q) = %d, %v, want %d", input, got, err, want)
			}
		}
	})
}

func TestListParser(t *testing.T) {
	t.Parallel()
	runParseCases(t, parser.NewListParser(",").Parse, []parseCase[[]string]{
		{name: "plain", input: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "trimmed and empty dropped", input: " a , ,b ", want: []string{"a", "b"}},
		{name: "empty", input: "", want: []string{}},
		{name: "single", input: "single", want: []string{"single"}},
	})
}

func TestWithValidation(t *testing.T) {
	t.Parallel()

	var calls []string
	isPositive := func(v int64) error {
		calls = append(calls, "positive")
		if v <= 0 {
			return errors.New("value must be positive")
		}
		return nil
	}
	isEven := func(v int64) error {
		calls = append(calls, "even")
		if v%2 != 0 {
			return errors.New("value must be even")
		}
		return nil
	}

	p := parser.WithValidation[int64](parser.NewIntRangeParser(-100, 100), isPositive, isEven)

	runParseCases(t, p.Parse, []parseCase[int64]{
		{name: "valid even positive", input: "42", want: 42},
		{name: "zero", input: "0", wantErr: "positive"},
		{name: "odd positive", input: "3", wantErr: "even"},
		{name: "inner range still applies", input: "102", wantErr: "greater than maximum 100"},
	})

	calls = nil
	if _, err := p.Parse("-1"); err == nil {
		t.Fatal("Parse(-1) succeeded")
	}
	if diff := cmp.Diff([]string{"positive"}, calls); diff != "" {
		t.Errorf("validators after the first failure ran (-want +got):\n%s", diff)
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()
	p := parser.Func(func(s string) (int, error) { return len(s), nil })
	if got, err := p.Parse("abc"); err != nil || got != 3 {
		t.Errorf("Parse(abc) = %d, %v", got, err)
	}
}
