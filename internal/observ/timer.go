package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase: одна замеренная фаза конвейера.
type Phase struct {
	Name string
	Took time.Duration
	Note string
}

// Timer замеряет фазы одного прогона (load, cache, parse).
// nil *Timer допустим и ничего не пишет; так --timings не требует ветвлений.
type Timer struct {
	now    func() time.Time
	phases []Phase
}

func NewTimer() *Timer { return &Timer{now: time.Now} }

// Start opens a phase and returns the func that closes it with a note.
// Only the first call of the returned func counts.
func (t *Timer) Start(name string) (stop func(note string)) {
	if t == nil {
		return func(string) {}
	}
	i := len(t.phases)
	t.phases = append(t.phases, Phase{Name: name})
	began := t.now()
	closed := false
	return func(note string) {
		if closed {
			return
		}
		closed = true
		t.phases[i].Took = t.now().Sub(began)
		t.phases[i].Note = note
	}
}

func (t *Timer) Phases() []Phase {
	if t == nil {
		return nil
	}
	return append([]Phase(nil), t.phases...)
}

type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report: сериализуемый итог таймера, длительности в миллисекундах.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	var r Report
	if t == nil {
		return r
	}
	var total time.Duration
	for _, p := range t.phases {
		total += p.Took
		r.Phases = append(r.Phases, PhaseReport{Name: p.Name, DurationMS: ms(p.Took), Note: p.Note})
	}
	r.TotalMS = ms(total)
	return r
}

// String: "load 0.10ms, cache 0.02ms (miss), total 0.12ms".
func (r Report) String() string {
	var b strings.Builder
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "%s %.2fms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(&b, " (%s)", p.Note)
		}
		b.WriteString(", ")
	}
	fmt.Fprintf(&b, "total %.2fms", r.TotalMS)
	return b.String()
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
