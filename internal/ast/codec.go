package ast

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"xlc/internal/source"
	"xlc/internal/symtab"
	"xlc/internal/token"
)

// codecVersion must be bumped whenever wireNode changes.
const codecVersion uint16 = 1

type wireTree struct {
	Version uint16   `msgpack:"v"`
	Root    wireNode `msgpack:"r"`
}

type wireNode struct {
	Tag   Tag        `msgpack:"t"`
	Kind  token.Kind `msgpack:"k,omitempty"`
	Text  string     `msgpack:"x,omitempty"`
	Line  uint32     `msgpack:"l,omitempty"`
	Start uint32     `msgpack:"s,omitempty"`
	End   uint32     `msgpack:"e,omitempty"`
	Kids  []wireNode `msgpack:"c,omitempty"`
}

// Marshal encodes the tree rooted at n.
func Marshal(n *Node) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("ast: marshal nil tree")
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(wireTree{Version: codecVersion, Root: toWire(n)}); err != nil {
		return nil, fmt.Errorf("ast: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func toWire(n *Node) wireNode {
	w := wireNode{
		Tag:   n.Tag,
		Line:  n.Span.Line,
		Start: n.Span.Start,
		End:   n.Span.End,
	}
	if n.Sym != nil {
		w.Kind = n.Sym.Kind()
		w.Text = n.Sym.Text()
	}
	if len(n.kids) > 0 {
		w.Kids = make([]wireNode, len(n.kids))
		for i, k := range n.kids {
			w.Kids[i] = toWire(k)
		}
	}
	return w
}

// Unmarshal decodes a tree produced by Marshal. Reserved spellings and
// identifiers are re-interned in tab so pointer identity holds again.
func Unmarshal(data []byte, tab *symtab.Table) (*Node, error) {
	if tab == nil {
		tab = symtab.Default()
	}
	var wt wireTree
	if err := msgpack.Unmarshal(data, &wt); err != nil {
		return nil, fmt.Errorf("ast: decode: %w", err)
	}
	if wt.Version != codecVersion {
		return nil, fmt.Errorf("ast: codec version %d, want %d", wt.Version, codecVersion)
	}
	return fromWire(&wt.Root, tab)
}

func fromWire(w *wireNode, tab *symtab.Table) (n *Node, err error) {
	if !w.Tag.Valid() {
		return nil, fmt.Errorf("ast: bad tag %d", w.Tag)
	}
	n = New(w.Tag)
	n.Span = source.Span{Line: w.Line, Start: w.Start, End: w.End}
	if w.Kind != token.Bogus || w.Text != "" {
		n.Sym = restoreSymbol(w.Text, w.Kind, tab)
	}

	// AddKid паникует при лишних детях; превращаем в ошибку
	defer func() {
		if r := recover(); r != nil {
			n, err = nil, fmt.Errorf("ast: %v", r)
		}
	}()
	for i := range w.Kids {
		kid, kerr := fromWire(&w.Kids[i], tab)
		if kerr != nil {
			return nil, kerr
		}
		n.AddKid(kid)
	}
	return n, nil
}

func restoreSymbol(text string, kind token.Kind, tab *symtab.Table) *token.Symbol {
	switch kind {
	case token.IntLit, token.StringLit, token.ScientificLit:
		return tab.Literal(text, kind)
	}
	if sym, ok := tab.Intern(text, kind); ok {
		return sym
	}
	return token.NewSymbol(text, kind)
}
