// Package testkit holds structural checks shared by tests and fuzzers.
package testkit

import (
	"errors"
	"fmt"

	"xlc/internal/ast"
	"xlc/internal/source"
)

// CheckTree runs every invariant below and joins the failures.
func CheckTree(root *ast.Node) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	return errors.Join(
		root.CheckArity(),
		CheckOwnership(root),
		CheckOrder(root),
	)
}

// CheckOwnership verifies that every node is reachable exactly once and that
// each kid points back at the parent that holds it. The root has no parent.
func CheckOwnership(root *ast.Node) error {
	if root.Parent() != nil {
		return fmt.Errorf("root %s has a parent", root.Label())
	}
	seen := make(map[*ast.Node]bool)
	var err error
	ast.Walk(root, func(n *ast.Node) bool {
		if err != nil {
			return false
		}
		if seen[n] {
			err = fmt.Errorf("%s (%s) reached twice", n.Label(), n.Span)
			return false
		}
		seen[n] = true
		for _, k := range n.Kids() {
			if k.Parent() != n {
				err = fmt.Errorf("%s (%s): parent link does not match holder %s", k.Label(), k.Span, n.Label())
				return false
			}
		}
		return true
	})
	return err
}

// CheckOrder verifies that the kids of every node start in source order:
// the earliest position in kid i's subtree comes before kid i+1's.
// Nodes without a position (token-slice input) are ignored.
func CheckOrder(root *ast.Node) error {
	var err error
	ast.Walk(root, func(n *ast.Node) bool {
		if err != nil {
			return false
		}
		var prev source.LineCol
		havePrev := false
		for i, k := range n.Kids() {
			first, ok := earliest(k)
			if !ok {
				continue
			}
			if havePrev && !before(prev, first) {
				err = fmt.Errorf("%s: kid %d (%s) at %d:%d does not follow its left sibling at %d:%d",
					n.Label(), i+1, k.Label(), first.Line, first.Col, prev.Line, prev.Col)
				return false
			}
			prev, havePrev = first, true
		}
		return true
	})
	return err
}

func earliest(n *ast.Node) (source.LineCol, bool) {
	var best source.LineCol
	found := false
	ast.Walk(n, func(x *ast.Node) bool {
		if x.Span.Empty() {
			return true
		}
		if p := x.Span.Begin(); !found || before(p, best) {
			best, found = p, true
		}
		return true
	})
	return best, found
}

func before(a, b source.LineCol) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Col < b.Col
}
