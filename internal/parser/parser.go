package parser

import (
	"cmp"
	"fmt"
)

// Parser converts a string into a T. Values that parse but violate the
// parser's constraints are rejected as well.
type Parser[T any] interface {
	Parse(value string) (T, error)
}

// Validator is a post-parse constraint.
type Validator[T any] func(value T) error

// BaseParser runs ParseFunc and then, if set, ValidateFunc.
type BaseParser[T any] struct {
	ParseFunc    func(string) (T, error)
	ValidateFunc Validator[T]
}

func (p *BaseParser[T]) Parse(value string) (T, error) {
	var zero T
	v, err := p.ParseFunc(value)
	if err != nil {
		return zero, err
	}
	if p.ValidateFunc != nil {
		if err := p.ValidateFunc(v); err != nil {
			return zero, err
		}
	}
	return v, nil
}

// Func adapts a plain parse function to the Parser interface.
func Func[T any](parse func(string) (T, error)) *BaseParser[T] {
	return &BaseParser[T]{ParseFunc: parse}
}

// WithValidation returns a parser that runs p and then every validator in
// order, stopping at the first failure.
func WithValidation[T any](p Parser[T], validators ...Validator[T]) *BaseParser[T] {
	return &BaseParser[T]{
		ParseFunc: p.Parse,
		ValidateFunc: func(v T) error {
			for _, validate := range validators {
				if err := validate(v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// inRange rejects values outside [min, max]. what names the value in errors.
func inRange[T cmp.Ordered](what string, min, max T) Validator[T] {
	return func(v T) error {
		switch {
		case v < min:
			return fmt.Errorf("%s %v is less than minimum %v", what, v, min)
		case v > max:
			return fmt.Errorf("%s %v is greater than maximum %v", what, v, max)
		}
		return nil
	}
}
