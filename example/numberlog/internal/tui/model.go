// Package tui is an interactive view of the number change log.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	messenger "github.com/jonoton/go-messenger"
	"github.com/jonoton/go-messenger/example/numberlog/internal/viewmodel"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1"))
	logStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

// follower keeps the log scrolled to the newest line, the way the log view
// of the desktop demo scrolled to the bottom on every appended line.
// It holds the log so it is never packed into a shared tiny block.
type follower struct {
	log            *viewmodel.ChangeLog
	scrollToBottom bool
}

func (f *follower) logAppended() {
	f.scrollToBottom = true
}

// bottom is the offset showing the last height lines.
func (f *follower) bottom(height int) int {
	return max(f.log.Len()-height, 0)
}

// Model is the bubbletea model.
type Model struct {
	log      *viewmodel.ChangeLog
	status   *viewmodel.Status
	follow   *follower
	height   int
	offset   int
	err      error
	quitting bool
}

// New creates a model showing log and status. The model subscribes to
// MsgLogAppended through m.
func New(m *messenger.Messenger, log *viewmodel.ChangeLog, status *viewmodel.Status) (Model, error) {
	f := &follower{log: log}
	if _, err := messenger.RegisterTarget(m, viewmodel.MsgLogAppended, f, (*follower).logAppended); err != nil {
		return Model{}, err
	}
	return Model{log: log, status: status, follow: f, height: 10}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-6, 1)
	case tea.KeyMsg:
		n := m.log.Number()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "+", "k", "up":
			m.err = n.Increment()
		case "-", "j", "down":
			m.err = n.Decrement()
		case "pgup":
			m.offset = max(m.offset-m.height, 0)
		case "pgdown":
			m.offset = min(m.offset+m.height, m.maxOffset())
		}
	}

	if m.follow.scrollToBottom {
		m.follow.scrollToBottom = false
		m.offset = m.maxOffset()
	}
	return m, nil
}

func (m Model) maxOffset() int {
	return m.follow.bottom(m.height)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Number change log"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Value: %s\n\n", valueStyle.Render(fmt.Sprint(m.log.Number().Value()))))

	lines := m.log.Lines()
	end := min(m.offset+m.height, len(lines))
	for _, line := range lines[m.offset:end] {
		b.WriteString(logStyle.Render(strings.ReplaceAll(line, "\t", "    ")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.status.String() + "  ·  +/- change  q quit"))
	return b.String()
}
