package source

import (
	"errors"
	"io"
	"strings"
	"testing"

	"xlc/internal/trace"
)

type trackingCloser struct {
	io.Reader
	closes int
}

func (c *trackingCloser) Close() error {
	c.closes++
	return nil
}

type readStep struct {
	ch   rune
	line int
	col  int
	eol  bool
}

func TestReaderLineBoundaryIsSpace(t *testing.T) {
	r := NewReader(strings.NewReader("ab\n\nc"), ReaderOptions{})
	want := []readStep{
		{'a', 1, 0, false},
		{'b', 1, 1, false},
		{' ', 1, 2, true},
		{' ', 2, 0, true}, // пустая строка: один пробел
		{'c', 3, 0, false},
		{' ', 3, 1, true},
	}
	for i, w := range want {
		ch, err := r.Read()
		if err != nil {
			t.Fatalf("step %d: unexpected error %v", i, err)
		}
		if ch != w.ch || r.Line() != w.line || r.Column() != w.col || r.AtLineEnd() != w.eol {
			t.Fatalf("step %d: got (%q, %d:%d, eol=%v), want (%q, %d:%d, eol=%v)",
				i, ch, r.Line(), r.Column(), r.AtLineEnd(), w.ch, w.line, w.col, w.eol)
		}
	}
	for range 2 {
		if _, err := r.Read(); !errors.Is(err, io.EOF) {
			t.Fatalf("expected io.EOF after the last line, got %v", err)
		}
	}
}

func TestReaderCloseOnce(t *testing.T) {
	src := &trackingCloser{Reader: strings.NewReader("x")}
	r := NewReader(src, ReaderOptions{})
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if src.closes != 1 {
		t.Fatalf("underlying stream closed %d times, want 1", src.closes)
	}
	if _, err := r.Read(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Read after Close = %v, want ErrClosed", err)
	}
}

func TestReaderListingAndTrace(t *testing.T) {
	ring := trace.NewRingTracer(16, trace.LevelDetail)
	r := NewReader(strings.NewReader("program {\n}\n"), ReaderOptions{Tracer: ring})
	for {
		if _, err := r.Read(); err != nil {
			break
		}
	}
	want := "    1: program {\n    2: }\n"
	if got := r.Listing(); got != want {
		t.Fatalf("listing mismatch:\n got %q\nwant %q", got, want)
	}

	events := ring.Snapshot()
	if len(events) != 2 {
		t.Fatalf("expected 2 readline events, got %d", len(events))
	}
	if events[0].Name != "readline" || events[0].Detail != "program {" {
		t.Fatalf("unexpected first event %+v", events[0])
	}
}
