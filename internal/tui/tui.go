package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/models"
)

// RunTimerTUI shows the live timer for a running session and reports the
// outcome after the program exits.
func RunTimerTUI(store *db.Store, ownerID uint, session *models.Session, label string) error {
	p := tea.NewProgram(NewTimerModel(store, ownerID, session, label), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(TimerModel); ok {
		switch {
		case m.err != nil:
			fmt.Printf("Error: %v\n", m.err)
		case m.stopped != nil:
			fmt.Printf("⏹  Session #%d stopped: %d min recorded\n", m.stopped.ID, m.stopped.Minutes)
		case m.leaving:
			fmt.Printf("Session #%d left running. Stop it with 'cram stop'\n", session.ID)
		}
	}
	return nil
}

// RunAddTaskTUI shows the interactive add-task form for a topic.
func RunAddTaskTUI(store *db.Store, ownerID uint, topic *models.Topic) error {
	p := tea.NewProgram(NewAddTaskModel(store, ownerID, topic))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddTaskModel); ok {
		switch {
		case m.cancelled:
			fmt.Println("❌ Task creation cancelled.")
		case m.err != nil:
			fmt.Printf("Error: %v\n", m.err)
		case m.created != nil:
			fmt.Printf("✅ New task %q added - ID: %d\n", m.created.Title, m.created.ID)
		}
	}
	return nil
}
