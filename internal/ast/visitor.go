package ast

import "fmt"

// Visitor has one method per tag. Node.Accept picks the method matching
// the node's tag and passes the node itself.
type Visitor interface {
	VisitProgram(n *Node) any
	VisitBlock(n *Node) any
	VisitDecl(n *Node) any
	VisitFunctionDecl(n *Node) any
	VisitFormals(n *Node) any
	VisitIf(n *Node) any
	VisitWhile(n *Node) any
	VisitForAll(n *Node) any
	VisitReturn(n *Node) any
	VisitAssign(n *Node) any
	VisitCall(n *Node) any
	VisitRelOp(n *Node) any
	VisitAddOp(n *Node) any
	VisitMultOp(n *Node) any
	VisitIntLit(n *Node) any
	VisitStringLit(n *Node) any
	VisitScientificLit(n *Node) any
	VisitId(n *Node) any
	VisitIntType(n *Node) any
	VisitBoolType(n *Node) any
	VisitStringType(n *Node) any
	VisitScientificType(n *Node) any
	VisitRangeExp(n *Node) any
}

// Accept dispatches to the visitor method for n.Tag.
func (n *Node) Accept(v Visitor) any {
	switch n.Tag {
	case TagProgram:
		return v.VisitProgram(n)
	case TagBlock:
		return v.VisitBlock(n)
	case TagDecl:
		return v.VisitDecl(n)
	case TagFunctionDecl:
		return v.VisitFunctionDecl(n)
	case TagFormals:
		return v.VisitFormals(n)
	case TagIf:
		return v.VisitIf(n)
	case TagWhile:
		return v.VisitWhile(n)
	case TagForAll:
		return v.VisitForAll(n)
	case TagReturn:
		return v.VisitReturn(n)
	case TagAssign:
		return v.VisitAssign(n)
	case TagCall:
		return v.VisitCall(n)
	case TagRelOp:
		return v.VisitRelOp(n)
	case TagAddOp:
		return v.VisitAddOp(n)
	case TagMultOp:
		return v.VisitMultOp(n)
	case TagIntLit:
		return v.VisitIntLit(n)
	case TagStringLit:
		return v.VisitStringLit(n)
	case TagScientificLit:
		return v.VisitScientificLit(n)
	case TagId:
		return v.VisitId(n)
	case TagIntType:
		return v.VisitIntType(n)
	case TagBoolType:
		return v.VisitBoolType(n)
	case TagStringType:
		return v.VisitStringType(n)
	case TagScientificType:
		return v.VisitScientificType(n)
	case TagRangeExp:
		return v.VisitRangeExp(n)
	default:
		panic(fmt.Sprintf("ast: Accept on %s", n.Tag))
	}
}

// BaseVisitor implements every Visit method as "visit the kids".
// Embed it and override only the tags of interest; set Self to the outer
// visitor so that the descent dispatches back into the overrides:
//
//	v := &printer{}
//	v.Self = v
type BaseVisitor struct {
	Self Visitor
}

func (b BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

// VisitKids visits children in order and returns the first non-nil result.
func (b BaseVisitor) VisitKids(n *Node) any {
	v := b.self()
	for _, k := range n.kids {
		if r := k.Accept(v); r != nil {
			return r
		}
	}
	return nil
}

func (b BaseVisitor) VisitProgram(n *Node) any        { return b.VisitKids(n) }
func (b BaseVisitor) VisitBlock(n *Node) any          { return b.VisitKids(n) }
func (b BaseVisitor) VisitDecl(n *Node) any           { return b.VisitKids(n) }
func (b BaseVisitor) VisitFunctionDecl(n *Node) any   { return b.VisitKids(n) }
func (b BaseVisitor) VisitFormals(n *Node) any        { return b.VisitKids(n) }
func (b BaseVisitor) VisitIf(n *Node) any             { return b.VisitKids(n) }
func (b BaseVisitor) VisitWhile(n *Node) any          { return b.VisitKids(n) }
func (b BaseVisitor) VisitForAll(n *Node) any         { return b.VisitKids(n) }
func (b BaseVisitor) VisitReturn(n *Node) any         { return b.VisitKids(n) }
func (b BaseVisitor) VisitAssign(n *Node) any         { return b.VisitKids(n) }
func (b BaseVisitor) VisitCall(n *Node) any           { return b.VisitKids(n) }
func (b BaseVisitor) VisitRelOp(n *Node) any          { return b.VisitKids(n) }
func (b BaseVisitor) VisitAddOp(n *Node) any          { return b.VisitKids(n) }
func (b BaseVisitor) VisitMultOp(n *Node) any         { return b.VisitKids(n) }
func (b BaseVisitor) VisitIntLit(n *Node) any         { return b.VisitKids(n) }
func (b BaseVisitor) VisitStringLit(n *Node) any      { return b.VisitKids(n) }
func (b BaseVisitor) VisitScientificLit(n *Node) any  { return b.VisitKids(n) }
func (b BaseVisitor) VisitId(n *Node) any             { return b.VisitKids(n) }
func (b BaseVisitor) VisitIntType(n *Node) any        { return b.VisitKids(n) }
func (b BaseVisitor) VisitBoolType(n *Node) any       { return b.VisitKids(n) }
func (b BaseVisitor) VisitStringType(n *Node) any     { return b.VisitKids(n) }
func (b BaseVisitor) VisitScientificType(n *Node) any { return b.VisitKids(n) }
func (b BaseVisitor) VisitRangeExp(n *Node) any       { return b.VisitKids(n) }

// TagFunc adapts a single function to the Visitor protocol: fn sees every
// node before its kids; a non-nil result stops the traversal.
type TagFunc func(n *Node) any

func (f TagFunc) visit(n *Node) any {
	if r := f(n); r != nil {
		return r
	}
	return BaseVisitor{Self: f}.VisitKids(n)
}

func (f TagFunc) VisitProgram(n *Node) any        { return f.visit(n) }
func (f TagFunc) VisitBlock(n *Node) any          { return f.visit(n) }
func (f TagFunc) VisitDecl(n *Node) any           { return f.visit(n) }
func (f TagFunc) VisitFunctionDecl(n *Node) any   { return f.visit(n) }
func (f TagFunc) VisitFormals(n *Node) any        { return f.visit(n) }
func (f TagFunc) VisitIf(n *Node) any             { return f.visit(n) }
func (f TagFunc) VisitWhile(n *Node) any          { return f.visit(n) }
func (f TagFunc) VisitForAll(n *Node) any         { return f.visit(n) }
func (f TagFunc) VisitReturn(n *Node) any         { return f.visit(n) }
func (f TagFunc) VisitAssign(n *Node) any         { return f.visit(n) }
func (f TagFunc) VisitCall(n *Node) any           { return f.visit(n) }
func (f TagFunc) VisitRelOp(n *Node) any          { return f.visit(n) }
func (f TagFunc) VisitAddOp(n *Node) any          { return f.visit(n) }
func (f TagFunc) VisitMultOp(n *Node) any         { return f.visit(n) }
func (f TagFunc) VisitIntLit(n *Node) any         { return f.visit(n) }
func (f TagFunc) VisitStringLit(n *Node) any      { return f.visit(n) }
func (f TagFunc) VisitScientificLit(n *Node) any  { return f.visit(n) }
func (f TagFunc) VisitId(n *Node) any             { return f.visit(n) }
func (f TagFunc) VisitIntType(n *Node) any        { return f.visit(n) }
func (f TagFunc) VisitBoolType(n *Node) any       { return f.visit(n) }
func (f TagFunc) VisitStringType(n *Node) any     { return f.visit(n) }
func (f TagFunc) VisitScientificType(n *Node) any { return f.visit(n) }
func (f TagFunc) VisitRangeExp(n *Node) any       { return f.visit(n) }
