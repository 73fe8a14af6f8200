package token

import (
	"fmt"

	"fortio.org/safecast"

	"xlc/internal/source"
)

// Token is one symbol occurrence together with its position.
// The zero Token is the end-of-stream marker.
type Token struct {
	Sym  *Symbol
	Span source.Span
}

// New builds a token, narrowing the reader's int positions.
func New(sym *Symbol, start, end, line int) Token {
	return Token{Sym: sym, Span: span(start, end, line)}
}

func span(start, end, line int) source.Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("token start column overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("token end column overflow: %w", err))
	}
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		panic(fmt.Errorf("token line overflow: %w", err))
	}
	return source.Span{Line: l, Start: s, End: e}
}

// Kind returns the symbol kind, EOF for the end-of-stream marker.
func (t Token) Kind() Kind { return t.Sym.Kind() }

// Text returns the lexeme.
func (t Token) Text() string { return t.Sym.Text() }

// IsEOF reports whether t is the end-of-stream marker.
func (t Token) IsEOF() bool { return t.Sym == nil || t.Sym.Kind() == EOF }

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind() {
	case IntLit, StringLit, ScientificLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind().IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind() == Identifier }

// String renders the token the way the scanner echo prints it.
func (t Token) String() string {
	if t.IsEOF() {
		return "<EOF>"
	}
	return fmt.Sprintf("%-8s left: %-8d right: %-8d line: %-8d %-8s",
		t.Text(), t.Span.Start, t.Span.End, t.Span.Line, t.Kind())
}
