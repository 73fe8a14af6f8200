package testkit

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"xlc/internal/ast"
	"xlc/internal/driver"
	"xlc/internal/parser"
	"xlc/internal/source"
	"xlc/internal/token"
)

func TestParsedTreesHold(t *testing.T) {
	srcs := []string{
		"program { }",
		"program { int x x = 1 }",
		`program {
			int f(int a, string s) { return (a + 1) * 2 }
			scientific z
			forall int i in [1..10] { z = 1.5e+3 }
			while x != 0 { x = x - f(x, "s") }
			if a < b then { } else { { } }
		}`,
	}
	for _, src := range srcs {
		root, err := parser.Parse(strings.NewReader(src), parser.Options{})
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if err := CheckTree(root); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func leaf(tag ast.Tag, text string, kind token.Kind, col int) *ast.Node {
	return ast.NewLeaf(tag, token.New(token.NewSymbol(text, kind), col, col+len(text)-1, 1))
}

func TestCheckOrderDetectsSwap(t *testing.T) {
	op := ast.NewLeaf(ast.TagAddOp, token.New(token.NewSymbol("+", token.Plus), 2, 2, 1))
	op.AddKid(leaf(ast.TagId, "b", token.Identifier, 4)).AddKid(leaf(ast.TagId, "a", token.Identifier, 0))
	if err := CheckOrder(op); err == nil {
		t.Fatalf("swapped operands not detected")
	}
}

func TestCheckOrderIgnoresUnpositioned(t *testing.T) {
	blk := ast.New(ast.TagBlock)
	blk.AddKid(ast.New(ast.TagBlock)).AddKid(ast.New(ast.TagBlock))
	if err := CheckOrder(blk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckTreeReportsArity(t *testing.T) {
	prog := ast.New(ast.TagProgram)
	prog.Span = source.Span{Line: 1}
	if err := CheckTree(prog); err == nil {
		t.Fatalf("Program without Block accepted")
	}
}

func TestCheckOwnershipRejectsNonRoot(t *testing.T) {
	blk := ast.New(ast.TagBlock)
	kid := ast.New(ast.TagBlock)
	blk.AddKid(kid)
	if err := CheckOwnership(kid); err == nil {
		t.Fatalf("subtree with a parent accepted as root")
	}
	if err := CheckOwnership(blk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTestdataCorpus(t *testing.T) {
	results, err := driver.ParseDir(context.Background(), filepath.Join("..", "..", "testdata"), driver.Options{Jobs: 2})
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("empty testdata")
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		if err := CheckTree(r.Tree); err != nil {
			t.Fatalf("%s: %v", r.Path, err)
		}
	}
}
