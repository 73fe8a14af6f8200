package lexer

import (
	"fmt"

	"xlc/internal/diag"
	"xlc/internal/source"
)

// Error describes the failure that aborted scanning.
type Error struct {
	Code diag.Code
	Msg  string
	Span source.Span
	Err  error // underlying I/O error, if any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Code.ID(), e.Span.Line, e.Span.Start, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }
