package parser

import (
	"fmt"

	"xlc/internal/token"
)

// SyntaxError carries the token actually found and the kind the grammar required.
type SyntaxError struct {
	Found    token.Token
	Expected token.Kind
}

func (e *SyntaxError) Message() string {
	if e.Found.IsEOF() {
		return fmt.Sprintf("expected %s, found end of input", e.Expected)
	}
	if e.Expected == token.EOF {
		return fmt.Sprintf("expected end of input after program, found %s %q", e.Found.Kind(), e.Found.Text())
	}
	return fmt.Sprintf("expected %s, found %s %q", e.Expected, e.Found.Kind(), e.Found.Text())
}

func (e *SyntaxError) Error() string {
	if e.Found.IsEOF() {
		return "syntax error: " + e.Message()
	}
	return fmt.Sprintf("syntax error at line %d, column %d: %s",
		e.Found.Span.Line, e.Found.Span.Start, e.Message())
}
