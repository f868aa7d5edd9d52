package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apstndb/flagbind/binding"
)

// LineError reports a line that could not be parsed or applied.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LineSource reads updates from a line-oriented stream:
//
//	# comment
//	spawn_z_offset=150   present value "150"
//	motd=                present empty value
//	spawn_z_offset       absent value, resets to the default
//
// Blank lines and lines starting with # are skipped.
type LineSource struct {
	Reader io.Reader
	// OnError handles malformed lines and rejected updates. The default logs
	// them and continues.
	OnError ErrorHandler
	Logger  binding.Logger
}

// ParseLine parses one line. It returns ok == false for blank and comment
// lines.
func ParseLine(line string) (name string, raw *string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil, false, nil
	}

	name, value, present := strings.Cut(line, "=")
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", nil, false, errors.New("missing flag name")
	case strings.ContainsFunc(name, isSpace):
		return "", nil, false, fmt.Errorf("flag name %q contains whitespace", name)
	}

	if !present {
		return name, nil, true, nil
	}
	return name, &value, true, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// Run reads lines until EOF or ctx is done. Cancellation is observed between
// lines; a read blocked on the underlying reader is not interrupted.
func (s *LineSource) Run(ctx context.Context, apply binding.UpdateFunc) error {
	scanner := bufio.NewScanner(s.Reader)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil
		}

		text := scanner.Text()
		name, raw, ok, err := ParseLine(text)
		if err == nil && ok {
			err = apply(name, raw)
		}
		if err != nil {
			if err := handleError(s.OnError, s.Logger, &LineError{Line: lineNo, Text: text, Err: err}, "line", lineNo); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
