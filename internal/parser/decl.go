package parser

import (
	"xlc/internal/ast"
	"xlc/internal/token"
)

// Program -> 'program' Block
func (p *Parser) rProgram() (*ast.Node, error) {
	start := p.cur
	if err := p.expect(token.KwProgram); err != nil {
		return nil, err
	}
	block, err := p.rBlock()
	if err != nil {
		return nil, err
	}
	t := ast.New(ast.TagProgram).AddKid(block)
	t.Span = start.Span
	return t, nil
}

// Block -> '{' Decl* Stmt* '}'
func (p *Parser) rBlock() (*ast.Node, error) {
	start := p.cur
	if err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	t := ast.New(ast.TagBlock)
	t.Span = start.Span

	for p.startingDecl() {
		d, err := p.rDecl()
		if err != nil {
			return nil, err
		}
		t.AddKid(d)
	}
	for p.startingStatement() {
		s, err := p.rStatement()
		if err != nil {
			return nil, err
		}
		t.AddKid(s)
	}

	if err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Parser) startingDecl() bool {
	return p.cur.Kind().IsType()
}

func (p *Parser) startingStatement() bool {
	return p.cur.IsIdent() || p.atAny(token.KwIf, token.KwWhile, token.KwReturn, token.LeftBrace, token.KwForall)
}

// Decl -> Type Name | Type Name FuncHead Block
func (p *Parser) rDecl() (*ast.Node, error) {
	typ, err := p.rType()
	if err != nil {
		return nil, err
	}
	name, err := p.rName()
	if err != nil {
		return nil, err
	}

	// '(' открывает список формальных параметров, значит это функция
	if !p.at(token.LeftParen) {
		t := ast.New(ast.TagDecl).AddKid(typ).AddKid(name)
		t.Span = typ.Span
		return t, nil
	}

	formals, err := p.rFuncHead()
	if err != nil {
		return nil, err
	}
	body, err := p.rBlock()
	if err != nil {
		return nil, err
	}
	t := ast.New(ast.TagFunctionDecl).AddKid(typ).AddKid(name).AddKid(formals).AddKid(body)
	t.Span = typ.Span
	return t, nil
}

var typeTags = map[token.Kind]ast.Tag{
	token.KwInt:        ast.TagIntType,
	token.KwBoolean:    ast.TagBoolType,
	token.KwString:     ast.TagStringType,
	token.KwScientific: ast.TagScientificType,
}

// Type -> 'int' | 'boolean' | 'string' | 'scientific'
func (p *Parser) rType() (*ast.Node, error) {
	tag, ok := typeTags[p.cur.Kind()]
	if !ok {
		// как в грамматике: последняя альтернатива boolean
		return nil, &SyntaxError{Found: p.cur, Expected: token.KwBoolean}
	}
	t := ast.New(tag)
	t.Span = p.cur.Span
	p.scan()
	return t, nil
}

// FuncHead -> '(' (Decl (',' Decl)*)? ')'
func (p *Parser) rFuncHead() (*ast.Node, error) {
	start := p.cur
	if err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	t := ast.New(ast.TagFormals)
	t.Span = start.Span

	if !p.at(token.RightParen) {
		for {
			d, err := p.rDecl()
			if err != nil {
				return nil, err
			}
			t.AddKid(d)
			if !p.at(token.Comma) {
				break
			}
			p.scan()
		}
	}

	if err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	return t, nil
}
