package lexer

import (
	"strings"

	"xlc/internal/diag"
	"xlc/internal/token"
)

// scanString reads "..." on a single line. The token text excludes the
// quotes, the span covers them.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.ch
	lx.advance() // opening '"'

	var sb strings.Builder
	for {
		if lx.eof || lx.ch.eol {
			if lx.state == stateAborted {
				return token.Token{}, false
			}
			end := start
			if !lx.eof {
				end = lx.ch
			}
			lx.fail(diag.LexUnterminatedString, lx.spanFrom(start, end),
				"unterminated string literal, missing closing '\"' before end of line")
			return token.Token{}, false
		}
		if lx.ch.r == '"' {
			break
		}
		sb.WriteRune(lx.ch.r)
		lx.advance()
	}

	end := lx.ch
	lx.advance() // closing '"'
	return lx.newToken(lx.syms.Literal(sb.String(), token.StringLit), start, end), true
}
