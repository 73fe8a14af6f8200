package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory. Tests use it to
// assert on what the reader, lexer and parser emitted.
type RingTracer struct {
	mu      sync.Mutex
	buf     []Event
	total   uint64 // сколько событий принято за всё время
	level   Level
	session string
}

// NewRingTracer creates a tracer holding at most capacity events
// (4096 when capacity <= 0).
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{
		buf:     make([]Event, capacity),
		level:   level,
		session: newSession(),
	}
}

func (t *RingTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ev.Seq = NextSeq()
	ev.Session = t.session

	t.mu.Lock()
	t.buf[t.total%uint64(len(t.buf))] = ev
	t.total++
	t.mu.Unlock()
}

// Snapshot returns the retained events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	size := uint64(len(t.buf))
	n := min(t.total, size)
	out := make([]Event, 0, n)
	for i := t.total - n; i < t.total; i++ {
		out = append(out, t.buf[i%size])
	}
	return out
}

// Dropped reports how many events were overwritten.
func (t *RingTracer) Dropped() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total - min(t.total, uint64(len(t.buf)))
}

// Dump writes the retained events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error    { return nil }
func (t *RingTracer) Close() error    { return nil }
func (t *RingTracer) Level() Level    { return t.level }
func (t *RingTracer) Enabled() bool   { return t.level > LevelOff }
func (t *RingTracer) Session() string { return t.session }
