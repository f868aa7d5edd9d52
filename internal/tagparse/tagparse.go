// Package tagparse parses the `flag:"..."` struct tag mini-language.
//
// A tag is a comma-separated list of key=value pairs. Values may be quoted
// with single or double quotes to embed commas; a backslash escapes the
// quote character inside a quoted value.
//
//	`flag:"name=spawn_z_offset,default=0,desc='Vertical offset, in blocks'"`
package tagparse

import (
	"fmt"
	"strings"
)

// Tag represents the parsed information from a flag struct tag.
type Tag struct {
	Name        string
	Default     string
	HasDefault  bool
	Description string
}

// Parse parses a flag struct tag. An empty tag or "-" yields (nil, nil).
func Parse(tag string) (*Tag, error) {
	if tag == "" || tag == "-" {
		return nil, nil
	}

	result := &Tag{}
	for _, part := range splitTagParts(tag) {
		key, value := splitKeyValue(part)
		switch key {
		case "name":
			result.Name = unquoteValue(value)
		case "default":
			result.Default = unquoteValue(value)
			result.HasDefault = true
		case "desc":
			result.Description = unquoteValue(value)
		default:
			return nil, fmt.Errorf("unknown tag key %q in %q", key, tag)
		}
	}

	if result.Name == "" {
		return nil, fmt.Errorf("missing name in tag %q", tag)
	}
	return result, nil
}

// splitTagParts splits tag into parts, respecting quoted strings.
func splitTagParts(tag string) []string {
	var parts []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)
	prevChar := rune(0)

	for _, r := range tag {
		switch {
		case !inQuote && (r == '\'' || r == '"'):
			inQuote = true
			quoteChar = r
			current.WriteRune(r)
		case inQuote && r == quoteChar && prevChar != '\\':
			inQuote = false
			quoteChar = 0
			current.WriteRune(r)
		case !inQuote && r == ',':
			if current.Len() > 0 {
				parts = append(parts, strings.TrimSpace(current.String()))
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
		prevChar = r
	}

	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}

	return parts
}

func splitKeyValue(part string) (string, string) {
	key, value, _ := strings.Cut(part, "=")
	return strings.TrimSpace(key), value
}

// unquoteValue removes surrounding quotes and unescapes quotes inside them.
func unquoteValue(value string) string {
	if len(value) >= 2 {
		if (value[0] == '\'' && value[len(value)-1] == '\'') ||
			(value[0] == '"' && value[len(value)-1] == '"') {
			replacer := strings.NewReplacer(
				`\'`, "'",
				`\"`, `"`,
				`\\`, `\`,
			)
			return replacer.Replace(value[1 : len(value)-1])
		}
	}
	return value
}
