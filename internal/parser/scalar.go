package parser

import (
	"strconv"
	"strings"
	"time"
)

// NewBoolParser accepts the forms strconv.ParseBool does, ignoring
// surrounding spaces.
func NewBoolParser() *BaseParser[bool] {
	return Func(func(value string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(value))
	})
}

// NewIntParser parses base-10 int64 values, ignoring surrounding spaces.
func NewIntParser() *BaseParser[int64] {
	return Func(func(value string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	})
}

// NewIntRangeParser is NewIntParser restricted to [min, max].
func NewIntRangeParser(min, max int64) *BaseParser[int64] {
	p := NewIntParser()
	p.ValidateFunc = inRange("value", min, max)
	return p
}

// NewDurationParser parses time.ParseDuration syntax, ignoring surrounding
// spaces.
func NewDurationParser() *BaseParser[time.Duration] {
	return Func(func(value string) (time.Duration, error) {
		return time.ParseDuration(strings.TrimSpace(value))
	})
}

// NewDurationRangeParser is NewDurationParser restricted to [min, max].
func NewDurationRangeParser(min, max time.Duration) *BaseParser[time.Duration] {
	p := NewDurationParser()
	p.ValidateFunc = inRange("duration", min, max)
	return p
}

// NewStringParser returns values exactly as delivered.
func NewStringParser() *BaseParser[string] {
	return Func(func(value string) (string, error) {
		return value, nil
	})
}

// NewStringLengthParser is NewStringParser restricted to byte lengths in
// [min, max].
func NewStringLengthParser(min, max int) *BaseParser[string] {
	p := NewStringParser()
	check := inRange("string length", min, max)
	p.ValidateFunc = func(v string) error { return check(len(v)) }
	return p
}

// NewListParser splits on sep into trimmed, non-empty elements. A blank
// input yields an empty, non-nil slice.
func NewListParser(sep string) *BaseParser[[]string] {
	return Func(func(value string) ([]string, error) {
		result := []string{}
		for part := range strings.SplitSeq(value, sep) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result, nil
	})
}
