package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"xlc/internal/driver"
)

// Run shows the progress view while work runs in the background.
// work receives the sink to report into; the view closes when work returns.
func Run(out io.Writer, title string, files []string, work func(driver.ProgressSink) error) error {
	events := make(chan driver.Event, 256)
	done := make(chan struct{})
	outcome := startWork(work, events, done)

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	// view закрыт: дальше события никто не читает
	close(done)
	err := <-outcome
	if uiErr != nil {
		return uiErr
	}
	return err
}

// startWork runs work against a sink feeding events and closes events
// when work returns. After done is closed the sink stops blocking.
func startWork(work func(driver.ProgressSink) error, events chan driver.Event, done <-chan struct{}) <-chan error {
	outcome := make(chan error, 1)
	go func() {
		err := work(driver.ChannelSink{Ch: events, Done: done})
		close(events)
		outcome <- err
	}()
	return outcome
}
