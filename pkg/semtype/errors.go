package semtype

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched (with errors.Is) by every error returned from Parse.
var ErrSyntax = errors.New("semtype: syntax error")

// ParseError reports where and why a type string failed to parse.
type ParseError struct {
	Input  string
	Offset int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid type %q at col %d: %s", e.Input, e.Column, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}
