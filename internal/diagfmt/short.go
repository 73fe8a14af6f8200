package diagfmt

import (
	"cmp"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"xlc/internal/diag"
)

// shortLine: одна строка короткого формата; заметки идут отдельными строками.
type shortLine struct {
	sev  string
	code string
	line uint32
	col  uint32 // 1-based
	msg  string
}

// FormatShort renders diagnostics one per line,
// "error SYN2001 path:line:col message", ordered by position then code.
// The result is stable across platforms and suits golden files.
func FormatShort(path string, diags []diag.Diagnostic, withNotes bool) string {
	path = filepath.ToSlash(path)
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	var rows []shortLine
	for _, d := range diags {
		rows = append(rows, shortLine{d.Severity.Label(), d.Code.ID(), d.Primary.Line, d.Primary.Start + 1, oneLine(d.Message)})
		if !withNotes {
			continue
		}
		for _, n := range d.Notes {
			rows = append(rows, shortLine{"note", d.Code.ID(), n.Span.Line, n.Span.Start + 1, oneLine(n.Msg)})
		}
	}
	slices.SortStableFunc(rows, func(a, b shortLine) int {
		return cmp.Or(cmp.Compare(a.line, b.line), cmp.Compare(a.col, b.col), strings.Compare(a.code, b.code))
	})

	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = fmt.Sprintf("%s %s %s:%d:%d %s", r.sev, r.code, path, r.line, r.col, r.msg)
	}
	return strings.Join(out, "\n")
}

// Short writes FormatShort of the bag followed by a newline.
func Short(w io.Writer, path string, bag *diag.Bag, withNotes bool) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, FormatShort(path, bag.Items(), withNotes))
	return err
}

// oneLine collapses all whitespace runs, newlines included, to one space.
func oneLine(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
