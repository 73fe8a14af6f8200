package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"xlc/internal/ast"
	"xlc/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// jsonBuilder собирает ASTNodeOutput обходом через Visitor.
type jsonBuilder struct {
	ast.BaseVisitor
}

func newJSONBuilder() *jsonBuilder {
	b := &jsonBuilder{}
	b.Self = b
	return b
}

func (b *jsonBuilder) build(n *ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Type: n.Tag.String(), Span: n.Span}
	if n.Sym != nil {
		out.Kind = n.Sym.Kind().String()
		out.Text = n.Sym.Text()
	}
	for _, k := range n.Kids() {
		out.Children = append(out.Children, k.Accept(b).(ASTNodeOutput))
	}
	return out
}

func (b *jsonBuilder) VisitProgram(n *ast.Node) any        { return b.build(n) }
func (b *jsonBuilder) VisitBlock(n *ast.Node) any          { return b.build(n) }
func (b *jsonBuilder) VisitDecl(n *ast.Node) any           { return b.build(n) }
func (b *jsonBuilder) VisitFunctionDecl(n *ast.Node) any   { return b.build(n) }
func (b *jsonBuilder) VisitFormals(n *ast.Node) any        { return b.build(n) }
func (b *jsonBuilder) VisitIf(n *ast.Node) any             { return b.build(n) }
func (b *jsonBuilder) VisitWhile(n *ast.Node) any          { return b.build(n) }
func (b *jsonBuilder) VisitForAll(n *ast.Node) any         { return b.build(n) }
func (b *jsonBuilder) VisitReturn(n *ast.Node) any         { return b.build(n) }
func (b *jsonBuilder) VisitAssign(n *ast.Node) any         { return b.build(n) }
func (b *jsonBuilder) VisitCall(n *ast.Node) any           { return b.build(n) }
func (b *jsonBuilder) VisitRelOp(n *ast.Node) any          { return b.build(n) }
func (b *jsonBuilder) VisitAddOp(n *ast.Node) any          { return b.build(n) }
func (b *jsonBuilder) VisitMultOp(n *ast.Node) any         { return b.build(n) }
func (b *jsonBuilder) VisitIntLit(n *ast.Node) any         { return b.build(n) }
func (b *jsonBuilder) VisitStringLit(n *ast.Node) any      { return b.build(n) }
func (b *jsonBuilder) VisitScientificLit(n *ast.Node) any  { return b.build(n) }
func (b *jsonBuilder) VisitId(n *ast.Node) any             { return b.build(n) }
func (b *jsonBuilder) VisitIntType(n *ast.Node) any        { return b.build(n) }
func (b *jsonBuilder) VisitBoolType(n *ast.Node) any       { return b.build(n) }
func (b *jsonBuilder) VisitStringType(n *ast.Node) any     { return b.build(n) }
func (b *jsonBuilder) VisitScientificType(n *ast.Node) any { return b.build(n) }
func (b *jsonBuilder) VisitRangeExp(n *ast.Node) any       { return b.build(n) }

func FormatASTJSON(w io.Writer, root *ast.Node) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	output := root.Accept(newJSONBuilder()).(ASTNodeOutput)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatASTPretty печатает дерево с ветками ├─ / └─ и позициями узлов.
func FormatASTPretty(w io.Writer, root *ast.Node) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	fmt.Fprintf(w, "%s (span: %s)\n", root.Label(), root.Span)
	formatKidsPretty(w, root, "")
	return nil
}

func formatKidsPretty(w io.Writer, n *ast.Node, prefix string) {
	for i := 1; i <= n.KidCount(); i++ {
		kid := n.Kid(i)
		branch, next := "├─ ", "│  "
		if i == n.KidCount() {
			branch, next = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s (span: %s)\n", prefix, branch, kid.Label(), kid.Span)
		formatKidsPretty(w, kid, prefix+next)
	}
}

// printVisitor печатает по одному узлу на строку с отступом по глубине.
type printVisitor struct {
	ast.BaseVisitor
	w      io.Writer
	indent int
	err    error
}

func (v *printVisitor) print(n *ast.Node) any {
	if v.err != nil {
		return v.err
	}
	_, v.err = fmt.Fprintf(v.w, "%s%s\n", strings.Repeat("  ", v.indent), n.Label())
	v.indent++
	res := v.VisitKids(n)
	v.indent--
	return res
}

func (v *printVisitor) VisitProgram(n *ast.Node) any        { return v.print(n) }
func (v *printVisitor) VisitBlock(n *ast.Node) any          { return v.print(n) }
func (v *printVisitor) VisitDecl(n *ast.Node) any           { return v.print(n) }
func (v *printVisitor) VisitFunctionDecl(n *ast.Node) any   { return v.print(n) }
func (v *printVisitor) VisitFormals(n *ast.Node) any        { return v.print(n) }
func (v *printVisitor) VisitIf(n *ast.Node) any             { return v.print(n) }
func (v *printVisitor) VisitWhile(n *ast.Node) any          { return v.print(n) }
func (v *printVisitor) VisitForAll(n *ast.Node) any         { return v.print(n) }
func (v *printVisitor) VisitReturn(n *ast.Node) any         { return v.print(n) }
func (v *printVisitor) VisitAssign(n *ast.Node) any         { return v.print(n) }
func (v *printVisitor) VisitCall(n *ast.Node) any           { return v.print(n) }
func (v *printVisitor) VisitRelOp(n *ast.Node) any          { return v.print(n) }
func (v *printVisitor) VisitAddOp(n *ast.Node) any          { return v.print(n) }
func (v *printVisitor) VisitMultOp(n *ast.Node) any         { return v.print(n) }
func (v *printVisitor) VisitIntLit(n *ast.Node) any         { return v.print(n) }
func (v *printVisitor) VisitStringLit(n *ast.Node) any      { return v.print(n) }
func (v *printVisitor) VisitScientificLit(n *ast.Node) any  { return v.print(n) }
func (v *printVisitor) VisitId(n *ast.Node) any             { return v.print(n) }
func (v *printVisitor) VisitIntType(n *ast.Node) any        { return v.print(n) }
func (v *printVisitor) VisitBoolType(n *ast.Node) any       { return v.print(n) }
func (v *printVisitor) VisitStringType(n *ast.Node) any     { return v.print(n) }
func (v *printVisitor) VisitScientificType(n *ast.Node) any { return v.print(n) }
func (v *printVisitor) VisitRangeExp(n *ast.Node) any       { return v.print(n) }

// PrintTree writes one node per line, two spaces of indent per level.
func PrintTree(w io.Writer, root *ast.Node) error {
	v := &printVisitor{w: w}
	v.Self = v
	root.Accept(v)
	return v.err
}
