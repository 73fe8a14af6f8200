package lexer

import (
	"strings"

	"xlc/internal/diag"
	"xlc/internal/token"
)

// scanNumber reads an integer or a scientific literal.
//
//	int         digit+
//	scientific  digit+ '.' digit{1,2} ('e'|'E') ('+'|'-') digit+
//
// "1..5" is the integer 1 followed by Range: the dot is pushed back.
func (lx *Lexer) scanNumber() (token.Token, bool) {
	start, last := lx.ch, lx.ch
	var sb strings.Builder
	lx.digits(&sb, &last)

	if lx.eof || lx.ch.eol || lx.ch.r != '.' {
		if lx.state == stateAborted {
			return token.Token{}, false
		}
		return lx.newToken(lx.syms.Literal(sb.String(), token.IntLit), start, last), true
	}

	dot := lx.ch
	lx.advance()
	if !lx.eof && !lx.ch.eol && lx.ch.r == '.' {
		lx.unread(dot)
		return lx.newToken(lx.syms.Literal(sb.String(), token.IntLit), start, last), true
	}
	sb.WriteRune('.')
	last = dot

	if n := lx.digits(&sb, &last); n < 1 || n > 2 {
		lx.fail(diag.LexBadScientific, lx.spanFrom(start, last),
			"scientific literal %q needs 1 or 2 digits after the decimal point, found %d", sb.String(), n)
		return token.Token{}, false
	}

	if lx.eof || lx.ch.eol || (lx.ch.r != 'e' && lx.ch.r != 'E') {
		lx.fail(diag.LexBadScientific, lx.spanFrom(start, last),
			"scientific literal %q: expected exponent marker 'e' or 'E'%s", sb.String(), lx.found())
		return token.Token{}, false
	}
	sb.WriteRune(lx.ch.r)
	last = lx.ch
	lx.advance()

	if lx.eof || lx.ch.eol || (lx.ch.r != '+' && lx.ch.r != '-') {
		lx.fail(diag.LexBadScientific, lx.spanFrom(start, last),
			"scientific literal %q: expected exponent sign '+' or '-'%s", sb.String(), lx.found())
		return token.Token{}, false
	}
	sb.WriteRune(lx.ch.r)
	last = lx.ch
	lx.advance()

	if n := lx.digits(&sb, &last); n == 0 {
		lx.fail(diag.LexBadScientific, lx.spanFrom(start, last),
			"scientific literal %q: missing exponent digits", sb.String())
		return token.Token{}, false
	}
	if lx.state == stateAborted {
		return token.Token{}, false
	}
	return lx.newToken(lx.syms.Literal(sb.String(), token.ScientificLit), start, last), true
}

// digits consumes a run of decimal digits and returns its length.
func (lx *Lexer) digits(sb *strings.Builder, last *char) int {
	n := 0
	for !lx.eof && !lx.ch.eol && isDigit(lx.ch.r) {
		sb.WriteRune(lx.ch.r)
		*last = lx.ch
		n++
		lx.advance()
	}
	return n
}

// found describes the current lookahead for error messages.
func (lx *Lexer) found() string {
	switch {
	case lx.eof:
		return ", found end of input"
	case lx.ch.eol:
		return ", found end of line"
	default:
		return ", found '" + string(lx.ch.r) + "'"
	}
}
