package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"xlc/internal/driver"
)

func newTestModel(files ...string) *progressModel {
	return NewProgressModel("parse", files, make(chan driver.Event)).(*progressModel)
}

func TestApplyEventTracksStatus(t *testing.T) {
	m := newTestModel("a.x", "b.x")

	m.applyEvent(driver.Event{File: "a.x", Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := itemLabel(m.items[0]); got != "parsing" {
		t.Fatalf("label = %q", got)
	}
	if p := m.percent(); p != 0.25 {
		t.Fatalf("percent = %v, want 0.25", p)
	}

	m.applyEvent(driver.Event{File: "a.x", Stage: driver.StageParse, Status: driver.StatusDone, Elapsed: 2 * time.Millisecond})
	m.applyEvent(driver.Event{File: "b.x", Stage: driver.StageParse, Status: driver.StatusError, Err: errors.New("boom")})
	m.applyEvent(driver.Event{File: "unknown.x", Status: driver.StatusDone})

	if p := m.percent(); p != 1 {
		t.Fatalf("percent = %v, want 1", p)
	}
	finished, failed := m.counts()
	if finished != 2 || failed != 1 {
		t.Fatalf("counts = %d, %d", finished, failed)
	}

	view := m.View()
	for _, want := range []string{"a.x", "b.x", "boom", "2/2 parsed, 1 failed", "2.0ms"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestDoneQuits(t *testing.T) {
	m := newTestModel("a.x")
	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatalf("doneMsg must finish the model")
	}
	if !strings.HasPrefix(strings.TrimSpace(stripANSI(m.View())), "done: parse") {
		t.Fatalf("unexpected header:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 6); got != "abc..." {
		t.Fatalf("got %q", got)
	}
	if got := truncate("界界界界", 5); got != "界..." {
		t.Fatalf("wide runes: got %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			in = true
		case in && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestWorkerFinishesAfterViewExits(t *testing.T) {
	events := make(chan driver.Event, 1)
	done := make(chan struct{})
	boom := errors.New("boom")
	outcome := startWork(func(sink driver.ProgressSink) error {
		for range 1000 {
			sink.OnEvent(driver.Event{File: "a.x", Stage: driver.StageParse, Status: driver.StatusQueued})
		}
		return boom
	}, events, done)

	// никто не читает events, как после досрочного выхода из view
	close(done)
	select {
	case err := <-outcome:
		if !errors.Is(err, boom) {
			t.Fatalf("outcome = %v, want boom", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("worker blocked on a full event channel")
	}
}
