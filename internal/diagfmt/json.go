package diagfmt

import (
	"encoding/json"
	"io"

	"xlc/internal/diag"
	"xlc/internal/source"
)

// Location в JSON: строка с 1, колонки с 1, как в pretty.
type Location struct {
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
	EndCol uint32 `json:"end_col"`
}

type NoteEntry struct {
	Message string   `json:"message"`
	At      Location `json:"at"`
}

type DiagnosticEntry struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	At       Location    `json:"at"`
	Notes    []NoteEntry `json:"notes,omitempty"`
}

// DiagnosticsReport: JSON-модель bag одного файла. Count и Dropped
// считают всё, что видел bag, даже если Diagnostics обрезан по Max.
type DiagnosticsReport struct {
	File        string            `json:"file"`
	Count       int               `json:"count"`
	Dropped     int               `json:"dropped,omitempty"`
	Diagnostics []DiagnosticEntry `json:"diagnostics"`
}

func locate(sp source.Span) Location {
	return Location{Line: sp.Line, Col: sp.Start + 1, EndCol: sp.End + 1}
}

func BuildDiagnosticsReport(path string, bag *diag.Bag, opts JSONOpts) DiagnosticsReport {
	rep := DiagnosticsReport{File: path, Diagnostics: []DiagnosticEntry{}}
	if bag == nil {
		return rep
	}
	rep.Count, rep.Dropped = bag.Len(), bag.Dropped()
	for i, d := range bag.Items() {
		if opts.Max > 0 && i == opts.Max {
			break
		}
		e := DiagnosticEntry{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			At:       locate(d.Primary),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				e.Notes = append(e.Notes, NoteEntry{Message: n.Msg, At: locate(n.Span)})
			}
		}
		rep.Diagnostics = append(rep.Diagnostics, e)
	}
	return rep
}

// JSON writes the report of one file as indented JSON.
func JSON(w io.Writer, path string, bag *diag.Bag, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsReport(path, bag, opts))
}
