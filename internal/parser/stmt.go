package parser

import (
	"xlc/internal/ast"
	"xlc/internal/token"
)

// Stmt -> 'if' Expr 'then' Block ('else' Block)?
//
//	| 'while' Expr Block
//	| 'forall' Decl 'in' RangeExpr Block
//	| 'return' Expr
//	| Block
//	| Name '=' Expr
func (p *Parser) rStatement() (*ast.Node, error) {
	switch p.cur.Kind() {
	case token.KwIf:
		return p.rIf()
	case token.KwWhile:
		return p.rWhile()
	case token.KwForall:
		return p.rForAll()
	case token.KwReturn:
		t := p.node(ast.TagReturn)
		p.scan()
		e, err := p.rExpr()
		if err != nil {
			return nil, err
		}
		return t.AddKid(e), nil
	case token.LeftBrace:
		return p.rBlock()
	}
	return p.rAssign()
}

func (p *Parser) rIf() (*ast.Node, error) {
	t := p.node(ast.TagIf)
	p.scan()

	cond, err := p.rExpr()
	if err != nil {
		return nil, err
	}
	t.AddKid(cond)

	if err = p.expect(token.KwThen); err != nil {
		return nil, err
	}
	then, err := p.rBlock()
	if err != nil {
		return nil, err
	}
	t.AddKid(then)

	if p.at(token.KwElse) {
		p.scan()
		els, err := p.rBlock()
		if err != nil {
			return nil, err
		}
		t.AddKid(els)
	}
	return t, nil
}

func (p *Parser) rWhile() (*ast.Node, error) {
	t := p.node(ast.TagWhile)
	p.scan()

	cond, err := p.rExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.rBlock()
	if err != nil {
		return nil, err
	}
	return t.AddKid(cond).AddKid(body), nil
}

func (p *Parser) rForAll() (*ast.Node, error) {
	t := p.node(ast.TagForAll)
	p.scan()

	d, err := p.rDecl()
	if err != nil {
		return nil, err
	}
	if err = p.expect(token.KwIn); err != nil {
		return nil, err
	}
	rng, err := p.rRangeExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.rBlock()
	if err != nil {
		return nil, err
	}
	return t.AddKid(d).AddKid(rng).AddKid(body), nil
}

// Name '=' Expr
func (p *Parser) rAssign() (*ast.Node, error) {
	name, err := p.rName()
	if err != nil {
		return nil, err
	}
	t := ast.New(ast.TagAssign).AddKid(name)
	t.Span = name.Span

	if err = p.expect(token.Assign); err != nil {
		return nil, err
	}
	e, err := p.rExpr()
	if err != nil {
		return nil, err
	}
	return t.AddKid(e), nil
}

// RangeExpr -> '[' IntLit '..' IntLit ']'
func (p *Parser) rRangeExpr() (*ast.Node, error) {
	t := p.node(ast.TagRangeExp)
	if err := p.expect(token.LeftBracket); err != nil {
		return nil, err
	}
	lo, err := p.take(token.IntLit)
	if err != nil {
		return nil, err
	}
	if err = p.expect(token.Range); err != nil {
		return nil, err
	}
	hi, err := p.take(token.IntLit)
	if err != nil {
		return nil, err
	}
	if err = p.expect(token.RightBracket); err != nil {
		return nil, err
	}
	return t.AddKid(ast.NewLeaf(ast.TagIntLit, lo)).AddKid(ast.NewLeaf(ast.TagIntLit, hi)), nil
}

// node creates a symbol-less node positioned at the current token.
func (p *Parser) node(tag ast.Tag) *ast.Node {
	t := ast.New(tag)
	t.Span = p.cur.Span
	return t
}
