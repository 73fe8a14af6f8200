package parser

import (
	"fmt"
	"strings"
	"testing"

	"xlc/internal/ast"
	"xlc/internal/diag"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, src string) (*ast.Node, *diag.Bag, error) {
	t.Helper()
	bag := diag.NewBag(16)
	root, err := Parse(strings.NewReader(src), Options{Reporter: diag.BagReporter{Bag: bag}})
	return root, bag, err
}

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	root, bag, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v (diagnostics: %s)", src, err, diagnosticsSummary(bag))
	}
	if err := root.CheckArity(); err != nil {
		t.Fatalf("parse %q produced malformed tree: %v", src, err)
	}
	return root
}

// tagVisitor compares the pre-order tag sequence of a tree with an
// expected list; the first mismatch is returned as a string.
type tagVisitor struct {
	ast.BaseVisitor
	expected []ast.Tag
	index    int
}

func newTagVisitor(expected ...ast.Tag) *tagVisitor {
	v := &tagVisitor{expected: expected}
	v.Self = v
	return v
}

func (v *tagVisitor) test(n *ast.Node) any {
	if v.index >= len(v.expected) {
		return fmt.Sprintf("unexpected extra node [%s]", n.Tag)
	}
	if want := v.expected[v.index]; want != n.Tag {
		return fmt.Sprintf("node %d: expected [%s] but got [%s]", v.index, want, n.Tag)
	}
	v.index++
	return v.VisitKids(n)
}

func (v *tagVisitor) VisitProgram(n *ast.Node) any        { return v.test(n) }
func (v *tagVisitor) VisitBlock(n *ast.Node) any          { return v.test(n) }
func (v *tagVisitor) VisitDecl(n *ast.Node) any           { return v.test(n) }
func (v *tagVisitor) VisitFunctionDecl(n *ast.Node) any   { return v.test(n) }
func (v *tagVisitor) VisitFormals(n *ast.Node) any        { return v.test(n) }
func (v *tagVisitor) VisitIf(n *ast.Node) any             { return v.test(n) }
func (v *tagVisitor) VisitWhile(n *ast.Node) any          { return v.test(n) }
func (v *tagVisitor) VisitForAll(n *ast.Node) any         { return v.test(n) }
func (v *tagVisitor) VisitReturn(n *ast.Node) any         { return v.test(n) }
func (v *tagVisitor) VisitAssign(n *ast.Node) any         { return v.test(n) }
func (v *tagVisitor) VisitCall(n *ast.Node) any           { return v.test(n) }
func (v *tagVisitor) VisitRelOp(n *ast.Node) any          { return v.test(n) }
func (v *tagVisitor) VisitAddOp(n *ast.Node) any          { return v.test(n) }
func (v *tagVisitor) VisitMultOp(n *ast.Node) any         { return v.test(n) }
func (v *tagVisitor) VisitIntLit(n *ast.Node) any         { return v.test(n) }
func (v *tagVisitor) VisitStringLit(n *ast.Node) any      { return v.test(n) }
func (v *tagVisitor) VisitScientificLit(n *ast.Node) any  { return v.test(n) }
func (v *tagVisitor) VisitId(n *ast.Node) any             { return v.test(n) }
func (v *tagVisitor) VisitIntType(n *ast.Node) any        { return v.test(n) }
func (v *tagVisitor) VisitBoolType(n *ast.Node) any       { return v.test(n) }
func (v *tagVisitor) VisitStringType(n *ast.Node) any     { return v.test(n) }
func (v *tagVisitor) VisitScientificType(n *ast.Node) any { return v.test(n) }
func (v *tagVisitor) VisitRangeExp(n *ast.Node) any       { return v.test(n) }

func expectTags(t *testing.T, root *ast.Node, expected ...ast.Tag) {
	t.Helper()
	v := newTagVisitor(expected...)
	if res := root.Accept(v); res != nil {
		t.Fatalf("%v", res)
	}
	if v.index != len(expected) {
		t.Fatalf("tree has %d nodes, expected %d", v.index, len(expected))
	}
}

// sexpr renders the tree as Tag(kid, kid) with symbol text in leaves.
func sexpr(n *ast.Node) string {
	var b strings.Builder
	b.WriteString(n.Tag.String())
	switch {
	case n.KidCount() > 0:
		b.WriteByte('(')
		for i := 1; i <= n.KidCount(); i++ {
			if i > 1 {
				b.WriteString(", ")
			}
			b.WriteString(sexpr(n.Kid(i)))
		}
		b.WriteByte(')')
	case n.Sym != nil:
		b.WriteString("(" + n.Text() + ")")
	}
	return b.String()
}
