package interp

import (
	"errors"
	"fmt"

	"torshi/pkg/lexer"
)

// Failure kinds surfaced by the interpreter. Callers match with errors.Is;
// the wrapped message carries the source position.
var (
	ErrSyntax     = errors.New("syntax error")
	ErrUndefined  = errors.New("undefined symbol")
	ErrBounds     = errors.New("array index out of bounds")
	ErrArithmetic = errors.New("arithmetic error")
)

// errSyntax records a malformed statement or expression with location
func errSyntax(pos lexer.Position, msg string) error {
	return fmt.Errorf("%w: %s at line %d, column %d", ErrSyntax, msg, pos.Line, pos.Column)
}

// errUndefined records a reference to an unknown variable, array, or function
func errUndefined(pos lexer.Position, what, name string) error {
	return fmt.Errorf("%w: %s %q at line %d, column %d", ErrUndefined, what, name, pos.Line, pos.Column)
}

// errBounds records an array access outside the declared range
func errBounds(pos lexer.Position, name string, index, length int) error {
	return fmt.Errorf("%w: %s[%d] with length %d at line %d, column %d", ErrBounds, name, index, length, pos.Line, pos.Column)
}

// errArithmetic records a division by zero
func errArithmetic(pos lexer.Position, msg string) error {
	return fmt.Errorf("%w: %s at line %d, column %d", ErrArithmetic, msg, pos.Line, pos.Column)
}
