package trace

import (
	"bufio"
	"io"
	"sync"
)

// StreamTracer форматирует события и пишет их в буферизованный writer.
// Ошибка записи не прерывает разбор: первая запоминается и
// возвращается из Flush/Close, дальнейшие события отбрасываются.
type StreamTracer struct {
	mu      sync.Mutex
	bw      *bufio.Writer
	closer  io.Closer // только для файлов, открытых в New
	err     error
	level   Level
	format  Format
	session string
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	t := &StreamTracer{
		bw:      bufio.NewWriter(w),
		level:   level,
		format:  format,
		session: newSession(),
	}
	if format == FormatText {
		t.write([]byte("# trace session " + t.session + "\n"))
	}
	return t
}

func (t *StreamTracer) write(p []byte) {
	if t.err != nil {
		return
	}
	_, t.err = t.bw.Write(p)
}

func (t *StreamTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ev.Seq = NextSeq()
	ev.Session = t.session
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	t.write(data)
	t.mu.Unlock()
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err == nil {
		t.err = t.bw.Flush()
	}
	return t.err
}

// Close flushes and closes the output if New opened it.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err == nil {
		t.err = t.bw.Flush()
	}
	err := t.err
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
		t.closer = nil
	}
	return err
}

func (t *StreamTracer) Level() Level    { return t.level }
func (t *StreamTracer) Enabled() bool   { return t.level > LevelOff }
func (t *StreamTracer) Session() string { return t.session }
