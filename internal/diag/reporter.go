package diag

import "xlc/internal/source"

// Reporter получает диагностики от лексера и парсера.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// BagReporter пишет в *Bag; с nil Bag молча отбрасывает.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// Dedup forwards each distinct (code, severity, span, message) once.
// Not safe for concurrent use; one per file.
type Dedup struct {
	next Reporter
	seen map[dedupKey]struct{}
}

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

func NewDedup(next Reporter) *Dedup {
	return &Dedup{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *Dedup) Report(d Diagnostic) {
	k := d.key()
	if _, dup := r.seen[k]; dup {
		return
	}
	r.seen[k] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}

// ReportBuilder collects notes and sends the diagnostic once.
//
//	diag.ReportError(r, code, sp, msg).WithNote(other, "here").Emit()
type ReportBuilder struct {
	r    Reporter
	d    Diagnostic
	sent bool
}

func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{r: r, d: NewError(code, primary, msg)}
}

func ReportInfo(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{r: r, d: New(SevInfo, code, primary, msg)}
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	b.d = b.d.WithNote(sp, msg)
	return b
}

// Emit is a no-op after the first call and for a nil Reporter.
func (b *ReportBuilder) Emit() {
	if b.sent {
		return
	}
	b.sent = true
	if b.r != nil {
		b.r.Report(b.d)
	}
}

func (b *ReportBuilder) Diagnostic() Diagnostic { return b.d }
