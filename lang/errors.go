package lang

import (
	"errors"
	"fmt"
)

/*
Sentinel errors used with errors.Is by callers that need to distinguish
error classes without string matching.
*/
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrLexicalError    = errors.New("lexical error")
)

/*
SyntaxError is returned by the JavaEL and FEEL parsers. It never recovers -
a single syntax error aborts the whole compile.
*/
type SyntaxError struct {
	Phase   string // "parse" (JavaEL) or "feel-parse" (FEEL re-parse)
	Line    int
	Column  int
	Token   string
	Detail  string
	wrapped error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v error at line %v, column %v: %v (token %q)",
		e.Phase, e.Line, e.Column, e.Detail, e.Token)
}

func (e *SyntaxError) Unwrap() error {
	return e.wrapped
}

func newSyntaxError(phase string, wrapped error, detail string, t Token) *SyntaxError {
	return &SyntaxError{
		Phase:   phase,
		Line:    t.Line,
		Column:  t.Col,
		Token:   t.String(),
		Detail:  detail,
		wrapped: wrapped,
	}
}
