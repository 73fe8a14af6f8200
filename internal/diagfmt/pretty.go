package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"xlc/internal/diag"
	"xlc/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
// file may be nil, then no source context is shown.
func Pretty(w io.Writer, path string, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprintf("%s:%d:%d", path, d.Primary.Line, d.Primary.Start+1),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		)
		writeContext(w, file, d.Primary, opts.Context, p)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n",
				p.note.Sprint("note"),
				p.path.Sprintf("%s:%d:%d", path, n.Span.Line, n.Span.Start+1),
				n.Msg,
			)
			writeContext(w, file, n.Span, 0, p)
		}
	}
}

func writeContext(w io.Writer, file *source.File, sp source.Span, context int8, p palette) {
	if file == nil || sp.Empty() {
		return
	}
	first := uint32(1)
	if ctx := uint32(max(context, 0)); sp.Line > ctx {
		first = sp.Line - ctx
	}
	gutter := len(fmt.Sprint(sp.Line))
	if int(sp.Line) > file.LineCount() {
		return
	}
	for ln := first; ln <= sp.Line; ln++ {
		fmt.Fprintf(w, " %*d | %s\n", gutter, ln, file.GetLine(ln))
	}

	text := file.GetLine(sp.Line)
	fmt.Fprintf(w, " %s | %s\n", strings.Repeat(" ", gutter), p.caret.Sprint(underline(text, sp)))
}

// underline строит строку "   ^~~~" под колонками span; ширина символов
// учитывается, чтобы каретка стояла под широкими (CJK) символами верно.
func underline(line string, sp source.Span) string {
	runes := []rune(line)
	var b strings.Builder
	for i := 0; i < int(sp.Start); i++ {
		if i >= len(runes) {
			b.WriteByte(' ')
			continue
		}
		if runes[i] == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(runes[i])))
	}
	width := 0
	for i := int(sp.Start); i <= int(sp.End) && i < len(runes); i++ {
		width += max(runewidth.RuneWidth(runes[i]), 1)
	}
	b.WriteByte('^')
	if width > 1 {
		b.WriteString(strings.Repeat("~", width-1))
	}
	return b.String()
}

type palette struct {
	path, code, note, caret *color.Color
	err, warn, info         *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:  color.New(color.Bold),
		code:  color.New(color.FgCyan),
		note:  color.New(color.FgBlue, color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.path, p.code, p.note, p.caret, p.err, p.warn, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}
