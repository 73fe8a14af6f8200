package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Tracer принимает события; реализации обязаны быть goroutine-safe,
// ParseDir пишет в один Tracer из нескольких горутин.
type Tracer interface {
	Emit(ev Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool // Level() > LevelOff
	Session() string
}

// Config selects where a stream tracer writes.
// Output wins over OutputPath; "" and "-" mean stderr.
// A path ending in .ndjson forces FormatNDJSON.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer
	OutputPath string
}

// New returns Nop for LevelOff and a StreamTracer otherwise.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if strings.HasSuffix(cfg.OutputPath, ".ndjson") {
		cfg.Format = FormatNDJSON
	}
	switch {
	case cfg.Output != nil:
		return NewStreamTracer(cfg.Output, cfg.Level, cfg.Format), nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return NewStreamTracer(os.Stderr, cfg.Level, cfg.Format), nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("trace: open output: %w", err)
	}
	st := NewStreamTracer(f, cfg.Level, cfg.Format)
	st.closer = f
	return st, nil
}

func newSession() string { return uuid.NewString() }

type nopTracer struct{}

func (nopTracer) Emit(Event)      {}
func (nopTracer) Flush() error    { return nil }
func (nopTracer) Close() error    { return nil }
func (nopTracer) Level() Level    { return LevelOff }
func (nopTracer) Enabled() bool   { return false }
func (nopTracer) Session() string { return "" }

// Nop discards everything; FromContext returns it for a bare context.
var Nop Tracer = nopTracer{}
