package diagfmt

import (
	"bytes"
	"testing"

	"xlc/internal/diag"
	"xlc/internal/source"
)

func TestFormatShort(t *testing.T) {
	diags := []diag.Diagnostic{
		{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  "found Int\nexpected Assign",
			Primary:  source.Span{Line: 2, Start: 4, End: 4},
			Notes: []diag.Note{
				{Span: source.Span{Line: 1, Start: 0, End: 6}, Msg: "program starts here"},
			},
		},
		{
			Severity: diag.SevError,
			Code:     diag.LexIllegalChar,
			Message:  "illegal character '@'",
			Primary:  source.Span{Line: 1, Start: 9, End: 9},
		},
	}

	expected := "note SYN2001 testdata/a.x:1:1 program starts here\n" +
		"error LEX1001 testdata/a.x:1:10 illegal character '@'\n" +
		"error SYN2001 testdata/a.x:2:5 found Int expected Assign"

	if got := FormatShort("./testdata/a.x", diags, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestShortSkipsEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	if err := Short(&buf, "a.x", diag.NewBag(4), true); err != nil || buf.Len() != 0 {
		t.Fatalf("empty bag wrote %q (%v)", buf.String(), err)
	}
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.LexIllegalChar, source.Span{Line: 1, Start: 2, End: 2}, "bad\n  char"))
	if err := Short(&buf, "a.x", bag, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "error LEX1001 a.x:1:3 bad char\n" {
		t.Fatalf("got %q", got)
	}
}
