package fuzztests

import (
	"bytes"
	"testing"

	"xlc/internal/diag"
	"xlc/internal/lexer"
	"xlc/internal/source"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)

		bag := diag.NewBag(64)
		rd := source.NewReader(bytes.NewReader(input), source.ReaderOptions{})
		lx := lexer.New(rd, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		for _, tok := range lexer.Collect(lx) {
			if tok.Span.Empty() || tok.Span.End < tok.Span.Start {
				t.Fatalf("bad span %v for %s", tok.Span, tok.Kind())
			}
		}
		if !rd.Closed() {
			t.Fatalf("reader left open")
		}
		if lx.Aborted() != (lx.Err() != nil) {
			t.Fatalf("aborted=%v but err=%v", lx.Aborted(), lx.Err())
		}
		if lx.Aborted() && !bag.HasErrors() {
			t.Fatalf("abort without a diagnostic")
		}
	})
}
