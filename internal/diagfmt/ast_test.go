package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"xlc/internal/ast"
	"xlc/internal/parser"
	"xlc/internal/token"
)

func parse(t *testing.T, src string) *ast.Node {
	t.Helper()
	root, err := parser.Parse(strings.NewReader(src), parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return root
}

func TestPrintTree(t *testing.T) {
	root := parse(t, "program { int x x = a - 1 }")
	var buf bytes.Buffer
	if err := PrintTree(&buf, root); err != nil {
		t.Fatalf("PrintTree: %v", err)
	}
	want := strings.Join([]string{
		"Program",
		"  Block",
		"    Decl",
		"      IntType",
		"      Id: x",
		"    Assign",
		"      Id: x",
		"      AddOp: -",
		"        Id: a",
		"        IntLit: 1",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatASTPretty(t *testing.T) {
	root := parse(t, "program { x = 1 }")
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, root); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	want := "Program (span: 1:0-6)\n" +
		"└─ Block (span: 1:8-8)\n" +
		"   └─ Assign (span: 1:10-10)\n" +
		"      ├─ Id: x (span: 1:10-10)\n" +
		"      └─ IntLit: 1 (span: 1:14-14)\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatASTJSON(t *testing.T) {
	root := parse(t, `program { s = "hi" }`)
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, root); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}
	var out ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	lit := out.Children[0].Children[0].Children[1]
	if lit.Type != "StringLit" || lit.Text != "hi" || lit.Kind != token.StringLit.String() {
		t.Fatalf("unexpected literal node %+v", lit)
	}
}

func TestFormatASTTree(t *testing.T) {
	root := parse(t, "program { x = a + b }")
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, root); err != nil {
		t.Fatalf("FormatASTTree: %v", err)
	}
	out := buf.String()
	for _, label := range []string{"Program", "Block", "Assign", "Id: x", "AddOp: +", "Id: a", "Id: b"} {
		if !strings.Contains(out, label) {
			t.Fatalf("label %q missing from\n%s", label, out)
		}
	}
	if !strings.Contains(out, "/") || !strings.Contains(out, "\\") {
		t.Fatalf("connectors missing:\n%s", out)
	}
}

func TestLayoutInvariants(t *testing.T) {
	root := parse(t, `program {
		int f(int a, int b) { return a * b + 1 }
		if x < 2 then { y = f(1, 2) } else { y = 0 }
	}`)
	l := Layout(root)

	if len(l.Pos) != ast.Count(root) {
		t.Fatalf("layout covers %d of %d nodes", len(l.Pos), ast.Count(root))
	}

	perDepth := map[int]map[int]bool{}
	ast.Walk(root, func(n *ast.Node) bool {
		p := l.Pos[n]
		if perDepth[p.Depth] == nil {
			perDepth[p.Depth] = map[int]bool{}
		}
		if perDepth[p.Depth][p.Offset] {
			t.Fatalf("two nodes share depth %d offset %d", p.Depth, p.Offset)
		}
		perDepth[p.Depth][p.Offset] = true

		if n.KidCount() > 0 {
			lo, hi := l.Pos[n.Kid(1)].Offset, l.Pos[n.Kid(n.KidCount())].Offset
			if p.Offset < lo || p.Offset > hi {
				t.Fatalf("%s at %d not over its kids [%d, %d]", n.Label(), p.Offset, lo, hi)
			}
			for _, k := range n.Kids() {
				if l.Pos[k].Depth != p.Depth+1 {
					t.Fatalf("kid depth mismatch")
				}
			}
		}
		return true
	})

	var buf bytes.Buffer
	if err := DrawLayout(&buf, root, l); err != nil {
		t.Fatalf("DrawLayout: %v", err)
	}
	if !strings.HasPrefix(strings.TrimLeft(buf.String(), " "), "Program") {
		t.Fatalf("root must be drawn first:\n%s", buf.String())
	}
}

func TestLayoutSingleLeafChain(t *testing.T) {
	root := parse(t, "program { }")
	l := Layout(root)
	if l.MaxDepth != 1 || l.Pos[root].Offset != 0 || l.Pos[root.Kid(1)].Offset != 0 {
		t.Fatalf("unexpected layout %+v", l.Pos)
	}
}

func TestFormatLayoutTable(t *testing.T) {
	root := parse(t, "program { x = 1 }")
	var buf bytes.Buffer
	if err := FormatLayoutTable(&buf, root); err != nil {
		t.Fatalf("FormatLayoutTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != ast.Count(root) {
		t.Fatalf("want %d rows, got:\n%s", ast.Count(root), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  0 ") || !strings.HasSuffix(lines[0], "Program") {
		t.Fatalf("first row = %q", lines[0])
	}
}
