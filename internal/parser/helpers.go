package parser

import (
	"slices"

	"xlc/internal/token"
	"xlc/internal/trace"
)

// scan pulls the next token; the end of the stream leaves cur as EOF.
func (p *Parser) scan() {
	if !p.cur.IsEOF() {
		p.lastSpan = p.cur.Span
	}
	tok, ok := p.ts.Next()
	if !ok {
		tok = token.Token{}
	}
	p.cur = tok
	if ok && p.tracer.Enabled() {
		p.tracer.Emit(trace.Point(trace.ScopeToken, "scan", tok.String()))
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind() == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.cur.Kind())
}

// expect: съедает токен вида k или возвращает SyntaxError.
func (p *Parser) expect(k token.Kind) error {
	if !p.at(k) {
		return &SyntaxError{Found: p.cur, Expected: k}
	}
	p.scan()
	return nil
}

// take: как expect, но возвращает съеденный токен.
func (p *Parser) take(k token.Kind) (token.Token, error) {
	tok := p.cur
	if err := p.expect(k); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}
