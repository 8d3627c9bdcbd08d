package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nurgissab/cram/internal/analytics"
	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/models"
)

// TimerModel is the live view of a running study session.
type TimerModel struct {
	width  int
	height int

	store   *db.Store
	ownerID uint
	session *models.Session
	label   string // what is being studied, for display only

	elapsed time.Duration

	stopped *models.Session // set when the user stopped the session
	leaving bool            // true when the user left it running
	err     error
}

// timerTickMsg is sent every second to refresh the elapsed display.
type timerTickMsg struct{}

// NewTimerModel creates the timer view for a running session.
func NewTimerModel(store *db.Store, ownerID uint, session *models.Session, label string) TimerModel {
	return TimerModel{
		store:   store,
		ownerID: ownerID,
		session: session,
		label:   label,
		elapsed: time.Since(session.StartedAt),
	}
}

func (m TimerModel) Init() tea.Cmd {
	return timerTick()
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerTickMsg:
		m.elapsed = time.Since(m.session.StartedAt)
		return m, timerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "enter":
			stopped, err := analytics.StopSession(m.store, m.ownerID, m.session.ID, time.Now().UTC())
			if err != nil {
				m.err = err
			} else {
				m.stopped = stopped
			}
			return m, tea.Quit

		case "q", "esc", "ctrl+c":
			m.leaving = true
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	timerCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccentMain)).
			Padding(1, 4)

	timerLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	timerClockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true)

	timerHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))
)

func (m TimerModel) View() string {
	if m.stopped != nil || m.leaving || m.err != nil {
		return ""
	}

	card := timerCardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		timerLabelStyle.Render("Studying: "+m.label),
		"",
		timerClockStyle.Render(formatElapsed(m.elapsed)),
		"",
		timerHelpStyle.Render("s stop session • esc leave running"),
	))

	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
