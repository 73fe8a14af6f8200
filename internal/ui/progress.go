package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"xlc/internal/driver"
)

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool
}

type fileItem struct {
	path    string
	status  driver.Status
	stage   driver.Stage
	elapsed time.Duration
	err     error
}

func (it fileItem) finished() bool {
	return it.status == driver.StatusDone || it.status == driver.StatusError
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-file parse progress.
// The model quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items[i] = fileItem{path: file, status: driver.StatusQueued}
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	// цвет статуса; queued и неизвестные серые
	statusColors = map[driver.Status]lipgloss.Color{
		driver.StatusDone:    "2",
		driver.StatusError:   "1",
		driver.StatusWorking: "6",
	}
)

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	header := m.spinner.View() + " " + m.title
	if m.done {
		header = "done: " + m.title
	}
	lines := []string{titleStyle.Render(header), ""}

	// "  <status:10> <elapsed:9> name"
	nameWidth := max(m.width-24, 20)
	for _, it := range m.items {
		lines = append(lines, fmt.Sprintf("  %s %9s %s",
			styleStatus(it.status).Render(fmt.Sprintf("%10s", itemLabel(it))),
			elapsedLabel(it),
			truncate(it.path, nameWidth)))
		if it.err != nil {
			lines = append(lines, "    "+errStyle.Render(truncate(it.err.Error(), nameWidth+18)))
		}
	}

	finished, failed := m.counts()
	summary := fmt.Sprintf("  %d/%d parsed", finished, len(m.items))
	if failed > 0 {
		summary += fmt.Sprintf(", %d failed", failed)
	}
	bar := m.prog.View()
	if m.done {
		bar = m.prog.ViewAs(1.0)
	}
	lines = append(lines, "", summary, bar)
	return strings.Join(lines, "\n") + "\n"
}

func elapsedLabel(it fileItem) string {
	if !it.finished() {
		return ""
	}
	return fmt.Sprintf("%7.1fms", float64(it.elapsed)/float64(time.Millisecond))
}

func (m *progressModel) counts() (finished, failed int) {
	for _, it := range m.items {
		switch it.status {
		case driver.StatusError:
			failed++
			finished++
		case driver.StatusDone:
			finished++
		}
	}
	return finished, failed
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	it := &m.items[idx]
	it.status, it.stage = ev.Status, ev.Stage
	if it.finished() {
		it.elapsed, it.err = ev.Elapsed, ev.Err
	}
	return m.prog.SetPercent(m.percent())
}

// stageWeight: доля файла, засчитываемая за начатую стадию.
var stageWeight = map[driver.Stage]float64{
	driver.StageLoad:  0.1,
	driver.StageCache: 0.3,
	driver.StageParse: 0.5,
}

var stageLabel = map[driver.Stage]string{
	driver.StageLoad:  "loading",
	driver.StageCache: "cache",
	driver.StageParse: "parsing",
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range m.items {
		switch {
		case it.finished():
			sum++
		case it.status == driver.StatusWorking:
			sum += stageWeight[it.stage]
		}
	}
	return sum / float64(len(m.items))
}

func itemLabel(it fileItem) string {
	if it.status != driver.StatusWorking {
		return string(it.status)
	}
	if l, ok := stageLabel[it.stage]; ok {
		return l
	}
	return "parsing"
}

func styleStatus(status driver.Status) lipgloss.Style {
	c, ok := statusColors[status]
	if !ok {
		c = "7"
	}
	return lipgloss.NewStyle().Foreground(c)
}

// truncate cuts value to width display cells, marking the cut with "...".
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= 3 {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}
