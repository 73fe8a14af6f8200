package ast

import (
	"fmt"

	"xlc/internal/source"
	"xlc/internal/token"
)

// Node is one syntax tree node. Children are ordered and appended only
// through AddKid; a node belongs to at most one parent.
type Node struct {
	Tag  Tag
	Sym  *token.Symbol // operators, literals and identifiers only
	Span source.Span

	kids   []*Node
	parent *Node
}

// New creates a node without a symbol.
func New(tag Tag) *Node {
	return &Node{Tag: tag}
}

// NewLeaf creates a node carrying the symbol and position of tok.
func NewLeaf(tag Tag, tok token.Token) *Node {
	return &Node{Tag: tag, Sym: tok.Sym, Span: tok.Span}
}

// AddKid appends kid and returns the receiver so construction can be chained:
//
//	ast.New(ast.TagDecl).AddKid(typ).AddKid(name)
//
// It panics when kid is nil, already has a parent, or the tag's maximum
// arity would be exceeded: all three are programming errors in the parser.
func (n *Node) AddKid(kid *Node) *Node {
	if kid == nil {
		panic(fmt.Sprintf("ast: nil kid added to %s", n.Tag))
	}
	if kid.parent != nil {
		panic(fmt.Sprintf("ast: %s already belongs to %s", kid.Tag, kid.parent.Tag))
	}
	if kid == n {
		panic(fmt.Sprintf("ast: %s added to itself", n.Tag))
	}
	if _, maxKids := n.Tag.Arity(); maxKids != unbounded && len(n.kids) >= maxKids {
		panic(fmt.Sprintf("ast: %s takes at most %d kids", n.Tag, maxKids))
	}
	kid.parent = n
	n.kids = append(n.kids, kid)
	return n
}

// Kid returns the i-th child, counting from 1, or nil if out of range.
func (n *Node) Kid(i int) *Node {
	if i < 1 || i > len(n.kids) {
		return nil
	}
	return n.kids[i-1]
}

func (n *Node) KidCount() int {
	return len(n.kids)
}

// Kids returns a copy of the children.
func (n *Node) Kids() []*Node {
	out := make([]*Node, len(n.kids))
	copy(out, n.kids)
	return out
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Text returns the symbol text, "" for nodes without a symbol.
func (n *Node) Text() string {
	return n.Sym.Text()
}

// Label is the one-line description used by printers: "Id: x", "AddOp: -", "Block".
func (n *Node) Label() string {
	if n.Tag.HasSymbol() && n.Sym != nil {
		return n.Tag.String() + ": " + n.Sym.Text()
	}
	return n.Tag.String()
}

func (n *Node) String() string {
	return n.Label()
}

// ArityError is returned by CheckArity.
type ArityError struct {
	Node *Node
	Got  int
	Min  int
	Max  int
}

func (e *ArityError) Error() string {
	if e.Max == unbounded {
		return fmt.Sprintf("%s at %s: %d kids, want at least %d", e.Node.Tag, e.Node.Span, e.Got, e.Min)
	}
	return fmt.Sprintf("%s at %s: %d kids, want %d..%d", e.Node.Tag, e.Node.Span, e.Got, e.Min, e.Max)
}

// CheckArity validates child counts of the whole subtree.
// AddKid already enforces maximums; this catches nodes left short.
func (n *Node) CheckArity() error {
	var err error
	Walk(n, func(x *Node) bool {
		if err != nil {
			return false
		}
		lo, hi := x.Tag.Arity()
		if c := len(x.kids); !x.Tag.Valid() || c < lo || (hi != unbounded && c > hi) {
			err = &ArityError{Node: x, Got: c, Min: lo, Max: hi}
			return false
		}
		return true
	})
	return err
}

// Walk calls fn for n and its descendants in pre-order, left to right.
// Children are skipped when fn returns false.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, k := range n.kids {
		Walk(k, fn)
	}
}

// Count returns the number of nodes in the subtree.
func Count(n *Node) int {
	c := 0
	Walk(n, func(*Node) bool { c++; return true })
	return c
}
