package lexer

import (
	"xlc/internal/diag"
	"xlc/internal/source"
	"xlc/internal/token"
)

// scanOperator applies maximal munch: the two-character candidate is probed
// with token.Bogus, which never adds entries to the table. "//" starts a
// comment running to the end of the line; comment is true in that case.
func (lx *Lexer) scanOperator() (tok token.Token, ok, comment bool) {
	first := lx.ch
	lx.advance()

	if !lx.eof && !lx.ch.eol {
		pair := string([]rune{first.r, lx.ch.r})
		if sym, found := lx.syms.Intern(pair, token.Bogus); found && sym.Kind().IsPunctOrOp() {
			if sym.Kind() == token.Comment {
				lx.skipLine(first.line)
				return token.Token{}, false, true
			}
			second := lx.ch
			lx.advance()
			return lx.newToken(sym, first, second), true, false
		}
	}
	if lx.state == stateAborted {
		return token.Token{}, false, false
	}

	sym, found := lx.syms.Intern(string(first.r), token.Bogus)
	if !found || !sym.Kind().IsPunctOrOp() {
		lx.fail(diag.LexIllegalChar, lx.spanAt(first), "illegal character %q", first.r)
		return token.Token{}, false, false
	}
	return lx.newToken(sym, first, first), true, false
}

// skipLine drops everything up to the first character of the next line.
func (lx *Lexer) skipLine(line int) {
	for !lx.eof && lx.ch.line == line {
		lx.advance()
	}
}

func (lx *Lexer) spanFrom(start, end char) source.Span {
	if end.line != start.line {
		end = start
	}
	return token.New(nil, start.col, end.col, start.line).Span
}
