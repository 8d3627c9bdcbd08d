package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/models"
	"github.com/nurgissab/cram/internal/parser"
)

const (
	fieldTitle = iota
	fieldDue
	fieldPriority
	fieldNotes
	fieldCount
)

var addFieldLabels = [fieldCount]string{"Title", "Due date", "Priority", "Notes"}

// AddTaskModel is the interactive form for creating a task under a topic.
type AddTaskModel struct {
	store   *db.Store
	ownerID uint
	topic   *models.Topic

	inputs  [fieldCount]textinput.Model
	focused int

	created    *models.Task
	cancelled  bool
	fieldError string
	err        error
}

// NewAddTaskModel creates the add-task form.
func NewAddTaskModel(store *db.Store, ownerID uint, topic *models.Topic) AddTaskModel {
	m := AddTaskModel{
		store:   store,
		ownerID: ownerID,
		topic:   topic,
	}

	placeholders := [fieldCount]string{
		"Past paper Q1-Q3",
		"yyyy-mm-dd, tomorrow, 3 days",
		"1-3 or low/medium/high (default medium)",
		"optional notes",
	}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 160
		input.Width = 48
		m.inputs[i] = input
	}
	m.inputs[fieldTitle].Focus()
	return m
}

func (m AddTaskModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AddTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case "enter":
			if m.focused < fieldCount-1 {
				m.setFocus(m.focused + 1)
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *AddTaskModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
}

func (m AddTaskModel) submit() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		m.fieldError = "title is required"
		m.setFocus(fieldTitle)
		return m, nil
	}

	today := time.Now().UTC()
	due, err := parser.ParseDueDate(strings.TrimSpace(m.inputs[fieldDue].Value()), today)
	if err != nil {
		m.fieldError = err.Error()
		m.setFocus(fieldDue)
		return m, nil
	}

	task, err := m.store.CreateTask(db.CreateTaskRequest{
		OwnerID:  m.ownerID,
		TopicID:  m.topic.ID,
		Title:    title,
		DueDate:  due,
		Priority: parser.ParsePriority(strings.TrimSpace(m.inputs[fieldPriority].Value())),
		Notes:    strings.TrimSpace(m.inputs[fieldNotes].Value()),
	})
	if err != nil {
		m.err = err
	} else {
		m.created = task
	}
	return m, tea.Quit
}

var (
	addTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true)

	addLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Width(12)

	addFocusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAccentBright)).
				Width(12)

	addErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	addHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))
)

func (m AddTaskModel) View() string {
	if m.created != nil || m.cancelled || m.err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(addTitleStyle.Render("New task in "+m.topic.Title) + "\n\n")
	for i := range m.inputs {
		label := addLabelStyle
		if i == m.focused {
			label = addFocusedLabelStyle
		}
		b.WriteString(label.Render(addFieldLabels[i]) + " " + m.inputs[i].View() + "\n")
	}
	if m.fieldError != "" {
		b.WriteString("\n" + addErrorStyle.Render(m.fieldError))
	}
	b.WriteString("\n" + addHelpStyle.Render("tab next field • enter save • esc cancel"))
	return b.String()
}
