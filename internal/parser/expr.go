package parser

import (
	"xlc/internal/ast"
	"xlc/internal/token"
)

var (
	relationalOps  = []token.Kind{token.Equal, token.NotEqual, token.Less, token.LessEqual, token.Greater, token.GreaterEqual}
	addingOps      = []token.Kind{token.Plus, token.Minus, token.Or}
	multiplyingOps = []token.Kind{token.Multiply, token.Divide, token.And}
)

// Expr -> SimpleExpr (RelOp SimpleExpr)?
// Не более одного сравнения: a < b < c здесь не разбирается.
func (p *Parser) rExpr() (*ast.Node, error) {
	left, err := p.rSimpleExpr()
	if err != nil {
		return nil, err
	}
	t := p.operator(ast.TagRelOp, relationalOps)
	if t == nil {
		return left, nil
	}
	right, err := p.rSimpleExpr()
	if err != nil {
		return nil, err
	}
	return t.AddKid(left).AddKid(right), nil
}

// SimpleExpr -> Term (AddOp Term)*
func (p *Parser) rSimpleExpr() (*ast.Node, error) {
	return p.leftAssoc(ast.TagAddOp, addingOps, p.rTerm)
}

// Term -> Factor (MulOp Factor)*
func (p *Parser) rTerm() (*ast.Node, error) {
	return p.leftAssoc(ast.TagMultOp, multiplyingOps, p.rFactor)
}

// leftAssoc folds operand (op operand)* to the left: the tree built so far
// becomes the left kid of the next operator.
func (p *Parser) leftAssoc(tag ast.Tag, ops []token.Kind, operand func() (*ast.Node, error)) (*ast.Node, error) {
	kid, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		t := p.operator(tag, ops)
		if t == nil {
			return kid, nil
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		kid = t.AddKid(kid).AddKid(right)
	}
}

// operator consumes the current token if it is one of ops.
func (p *Parser) operator(tag ast.Tag, ops []token.Kind) *ast.Node {
	if !p.atAny(ops...) {
		return nil
	}
	t := ast.NewLeaf(tag, p.cur)
	p.scan()
	return t
}

var literalTags = map[token.Kind]ast.Tag{
	token.IntLit:        ast.TagIntLit,
	token.StringLit:     ast.TagStringLit,
	token.ScientificLit: ast.TagScientificLit,
}

// Factor -> '(' Expr ')' | IntLit | StringLit | ScientificLit
//
//	| Name | Name '(' (Expr (',' Expr)*)? ')'
func (p *Parser) rFactor() (*ast.Node, error) {
	if p.at(token.LeftParen) {
		p.scan()
		t, err := p.rExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(token.RightParen); err != nil {
			return nil, err
		}
		return t, nil
	}
	if p.cur.IsLiteral() {
		t := ast.NewLeaf(literalTags[p.cur.Kind()], p.cur)
		p.scan()
		return t, nil
	}

	name, err := p.rName()
	if err != nil {
		return nil, err
	}
	// без '(' это просто имя
	if !p.at(token.LeftParen) {
		return name, nil
	}

	p.scan()
	t := ast.New(ast.TagCall).AddKid(name)
	t.Span = name.Span
	if !p.at(token.RightParen) {
		for {
			arg, err := p.rExpr()
			if err != nil {
				return nil, err
			}
			t.AddKid(arg)
			if !p.at(token.Comma) {
				break
			}
			p.scan()
		}
	}
	// спан вызова: от имени до закрывающей скобки
	t.Span = t.Span.Cover(p.cur.Span)
	if err = p.expect(token.RightParen); err != nil {
		return nil, err
	}
	return t, nil
}

// Name -> Identifier
func (p *Parser) rName() (*ast.Node, error) {
	tok, err := p.take(token.Identifier)
	if err != nil {
		return nil, err
	}
	return ast.NewLeaf(ast.TagId, tok), nil
}
