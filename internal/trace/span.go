package trace

import (
	"strconv"
	"sync/atomic"
	"time"
)

// счётчики общие для всех трейсеров процесса, чтобы Seq и SpanID
// не пересекались при нескольких сессиях
var counters struct {
	seq  atomic.Uint64
	span atomic.Uint64
}

// NextSeq is monotonic across the process.
func NextSeq() uint64 { return counters.seq.Add(1) }

func NextSpanID() uint64 { return counters.span.Add(1) }

// Span пара begin/end. Нулевой или nil *Span безопасен: все методы no-op.
type Span struct {
	t       Tracer
	ev      Event // шаблон: id, parent, scope, name
	started time.Time
	extra   map[string]string
}

// Begin emits the begin event unless the tracer filters scope out.
// parent is 0 for a root span.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{}
	}
	s := &Span{
		t:       t,
		started: time.Now(),
		ev: Event{
			Scope:    scope,
			SpanID:   NextSpanID(),
			ParentID: parent,
			Name:     name,
		},
	}
	begin := s.ev
	begin.Time, begin.Kind = s.started, KindSpanBegin
	t.Emit(begin)
	return s
}

func (s *Span) live() bool { return s != nil && s.t != nil }

// End emits the end event carrying detail, the collected extras and
// the elapsed time under "elapsed".
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	dur := time.Since(s.started)
	end := s.ev
	end.Time, end.Kind, end.Detail = time.Now(), KindSpanEnd, detail
	end.Extra = s.extra
	if end.Extra == nil {
		end.Extra = make(map[string]string, 1)
	}
	end.Extra["elapsed"] = strconv.FormatInt(dur.Microseconds(), 10) + "us"
	s.t.Emit(end)
	return dur
}

func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ev.SpanID
}
