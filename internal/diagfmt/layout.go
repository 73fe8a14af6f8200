package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"xlc/internal/ast"
)

// Pos is the place of one node in the layout grid.
type Pos struct {
	Depth  int
	Offset int
}

// TreeLayout assigns every node a depth and a horizontal offset. Leaves take
// the next free slot on their level, two units apart; a parent is centred
// over its kids, and when that spot is already taken the whole subtree is
// moved right.
type TreeLayout struct {
	Pos      map[*ast.Node]Pos
	MaxDepth int
	next     []int // следующая свободная позиция на каждом уровне
}

// layoutVisitor walks the tree in post-order through the Visitor protocol.
type layoutVisitor struct {
	ast.BaseVisitor
	l     *TreeLayout
	depth int
}

// Layout computes the offset layout of the tree rooted at root.
func Layout(root *ast.Node) *TreeLayout {
	l := &TreeLayout{Pos: make(map[*ast.Node]Pos)}
	v := &layoutVisitor{l: l}
	v.Self = v
	root.Accept(v)
	return l
}

func (l *TreeLayout) slot(depth int) int {
	for len(l.next) <= depth {
		l.next = append(l.next, 0)
	}
	return l.next[depth]
}

func (l *TreeLayout) take(n *ast.Node, depth, offset int) {
	l.slot(depth)
	l.Pos[n] = Pos{Depth: depth, Offset: offset}
	l.next[depth] = offset + 2
	l.MaxDepth = max(l.MaxDepth, depth)
}

// shift moves the subtree of n right by delta.
func (l *TreeLayout) shift(n *ast.Node, delta int) {
	ast.Walk(n, func(x *ast.Node) bool {
		p := l.Pos[x]
		p.Offset += delta
		l.Pos[x] = p
		l.slot(p.Depth)
		l.next[p.Depth] = max(l.next[p.Depth], p.Offset+2)
		return true
	})
}

func (v *layoutVisitor) offset(n *ast.Node) any {
	v.depth++
	v.VisitKids(n)
	v.depth--

	l := v.l
	free := l.slot(v.depth)
	if n.KidCount() == 0 {
		l.take(n, v.depth, free)
		return nil
	}

	sum := 0
	for _, k := range n.Kids() {
		sum += l.Pos[k].Offset
	}
	center := sum / n.KidCount()
	if center < free {
		for _, k := range n.Kids() {
			l.shift(k, free-center)
		}
		center = free
	}
	l.take(n, v.depth, center)
	return nil
}

func (v *layoutVisitor) VisitProgram(n *ast.Node) any        { return v.offset(n) }
func (v *layoutVisitor) VisitBlock(n *ast.Node) any          { return v.offset(n) }
func (v *layoutVisitor) VisitDecl(n *ast.Node) any           { return v.offset(n) }
func (v *layoutVisitor) VisitFunctionDecl(n *ast.Node) any   { return v.offset(n) }
func (v *layoutVisitor) VisitFormals(n *ast.Node) any        { return v.offset(n) }
func (v *layoutVisitor) VisitIf(n *ast.Node) any             { return v.offset(n) }
func (v *layoutVisitor) VisitWhile(n *ast.Node) any          { return v.offset(n) }
func (v *layoutVisitor) VisitForAll(n *ast.Node) any         { return v.offset(n) }
func (v *layoutVisitor) VisitReturn(n *ast.Node) any         { return v.offset(n) }
func (v *layoutVisitor) VisitAssign(n *ast.Node) any         { return v.offset(n) }
func (v *layoutVisitor) VisitCall(n *ast.Node) any           { return v.offset(n) }
func (v *layoutVisitor) VisitRelOp(n *ast.Node) any          { return v.offset(n) }
func (v *layoutVisitor) VisitAddOp(n *ast.Node) any          { return v.offset(n) }
func (v *layoutVisitor) VisitMultOp(n *ast.Node) any         { return v.offset(n) }
func (v *layoutVisitor) VisitIntLit(n *ast.Node) any         { return v.offset(n) }
func (v *layoutVisitor) VisitStringLit(n *ast.Node) any      { return v.offset(n) }
func (v *layoutVisitor) VisitScientificLit(n *ast.Node) any  { return v.offset(n) }
func (v *layoutVisitor) VisitId(n *ast.Node) any             { return v.offset(n) }
func (v *layoutVisitor) VisitIntType(n *ast.Node) any        { return v.offset(n) }
func (v *layoutVisitor) VisitBoolType(n *ast.Node) any       { return v.offset(n) }
func (v *layoutVisitor) VisitStringType(n *ast.Node) any     { return v.offset(n) }
func (v *layoutVisitor) VisitScientificType(n *ast.Node) any { return v.offset(n) }
func (v *layoutVisitor) VisitRangeExp(n *ast.Node) any       { return v.offset(n) }

// Width returns the widest level, in layout units.
func (l *TreeLayout) Width() int {
	w := 0
	for _, n := range l.next {
		w = max(w, n)
	}
	return w
}

// grid: холст из ячеек; широкий символ занимает две ячейки, вторая пустая (0).
type grid [][]rune

func newGrid(rows, cols int) grid {
	g := make(grid, rows)
	for i := range g {
		g[i] = []rune(strings.Repeat(" ", cols))
	}
	return g
}

func (g grid) put(row, col int, s string) {
	for _, r := range s {
		if col >= len(g[row]) {
			return
		}
		g[row][col] = r
		col++
		if runewidth.RuneWidth(r) == 2 && col < len(g[row]) {
			g[row][col] = 0
			col++
		}
	}
}

func (g grid) line(row int) string {
	var b strings.Builder
	for _, r := range g[row] {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// DrawLayout renders a computed layout as text: every level takes a label
// row and a connector row; labels are centred on offset*step columns.
func DrawLayout(w io.Writer, root *ast.Node, l *TreeLayout) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	widest := 1
	for n := range l.Pos {
		widest = max(widest, runewidth.StringWidth(n.Label()))
	}
	step := widest/2 + 1 // две единицы раскладки ≥ ширины метки + пробел
	cols := (l.Width()+1)*step + widest
	g := newGrid((l.MaxDepth+1)*2, cols)

	center := func(n *ast.Node) int { return l.Pos[n].Offset*step + widest/2 }
	ast.Walk(root, func(n *ast.Node) bool {
		p, ok := l.Pos[n]
		if !ok {
			return false
		}
		label := n.Label()
		row := p.Depth * 2
		g.put(row, max(center(n)-runewidth.StringWidth(label)/2, 0), label)

		if n.KidCount() == 0 {
			return true
		}
		pc := center(n)
		for _, k := range n.Kids() {
			kc := center(k)
			mark := '|'
			switch {
			case kc < pc:
				mark = '/'
			case kc > pc:
				mark = '\\'
			}
			g[row+1][(pc+kc)/2] = mark
		}
		return true
	})

	for row := range g {
		if _, err := fmt.Fprintln(w, g.line(row)); err != nil {
			return err
		}
	}
	return nil
}

// FormatASTTree draws the tree top-down with / | \ connectors.
func FormatASTTree(w io.Writer, root *ast.Node) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	return DrawLayout(w, root, Layout(root))
}

// FormatLayoutTable prints one "depth offset label" row per node, pre-order.
func FormatLayoutTable(w io.Writer, root *ast.Node) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	l := Layout(root)
	var err error
	ast.Walk(root, func(n *ast.Node) bool {
		if err != nil {
			return false
		}
		p := l.Pos[n]
		_, err = fmt.Fprintf(w, "%3d %4d  %s%s\n", p.Depth, p.Offset, strings.Repeat("  ", p.Depth), n.Label())
		return true
	})
	return err
}
