package lexer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"xlc/internal/token"
)

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// пробелом считается и граница строки (reader отдаёт её как ' ')
func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// scanIdent reads an identifier or reserved word.
func (lx *Lexer) scanIdent() (token.Token, bool) {
	start, last := lx.ch, lx.ch
	var sb strings.Builder
	for !lx.eof && !lx.ch.eol && isIdentPart(lx.ch.r) {
		sb.WriteRune(lx.ch.r)
		last = lx.ch
		lx.advance()
	}
	if lx.state == stateAborted {
		return token.Token{}, false
	}

	// Идентификаторы сравниваются в NFC, чтобы "é" из двух кодпоинтов совпадало с одним.
	text := norm.NFC.String(sb.String())
	sym, _ := lx.syms.Intern(text, token.Identifier)
	return lx.newToken(sym, start, last), true
}
