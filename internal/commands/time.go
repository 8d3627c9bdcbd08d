package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nurgissab/cram/internal/analytics"
	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/models"
	"github.com/nurgissab/cram/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a study session",
	Long: `Start a study session, optionally tied to a topic and/or task.
Opens a live timer by default; use --no-ui for a plain start.

Examples:
  cram start --topic 3          # Study topic 3 with the live timer
  cram start --task 12 --no-ui  # Start on task 12 without UI
  cram start                    # Free session, no topic or task`,
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		req := db.StartSessionRequest{
			OwnerID:   owner.ID,
			StartedAt: time.Now().UTC(),
		}
		if topicID, _ := cmd.Flags().GetUint("topic"); topicID != 0 {
			req.TopicID = &topicID
		}
		if taskID, _ := cmd.Flags().GetUint("task"); taskID != 0 {
			req.TaskID = &taskID
		}
		req.Notes, _ = cmd.Flags().GetString("note")

		session, err := store.StartSession(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		label := sessionLabel(store, owner.ID, session)
		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			fmt.Printf("⏱  Session #%d started: %s\n", session.ID, label)
			fmt.Printf("Started at: %s\n", session.StartedAt.Local().Format("15:04:05"))
			return
		}
		if err := tui.RunTimerTUI(store, owner.ID, session, label); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop [session-id]",
	Short: "Stop a study session",
	Long:  "Stop the given session, or the running one when no ID is passed.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		var sessionID uint
		if len(args) == 1 {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				fmt.Printf("Error: invalid session ID '%s'\n", args[0])
				return
			}
			sessionID = uint(id)
		} else {
			active, err := store.ActiveSession(owner.ID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if active == nil {
				fmt.Println("No active session found")
				return
			}
			sessionID = active.ID
		}

		session, err := analytics.StopSession(store, owner.ID, sessionID, time.Now().UTC())
		if errors.Is(err, analytics.ErrAlreadyStopped) {
			fmt.Printf("Session #%d is already stopped\n", sessionID)
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("⏹  Session #%d stopped: %d min recorded\n", session.ID, session.Minutes)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running session, if any",
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		session, err := store.ActiveSession(owner.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No active session")
			return
		}

		fmt.Printf("⏱  Session #%d: %s\n", session.ID, sessionLabel(store, owner.ID, session))
		fmt.Printf("Started at: %s\n", session.StartedAt.Local().Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", formatDuration(time.Since(session.StartedAt)))
	},
}

// sessionLabel describes what a session is about, for display.
func sessionLabel(store *db.Store, ownerID uint, session *models.Session) string {
	if session.TaskID != nil {
		if task, err := store.TaskByID(ownerID, *session.TaskID); err == nil {
			return fmt.Sprintf("task #%d: %s", task.ID, task.Title)
		}
	}
	if session.TopicID != nil {
		if topic, err := store.TopicByID(ownerID, *session.TopicID); err == nil {
			return fmt.Sprintf("topic #%d: %s", topic.ID, topic.Title)
		}
	}
	return "free session"
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}

func init() {
	startCmd.Flags().UintP("topic", "t", 0, "topic being studied")
	startCmd.Flags().Uint("task", 0, "task being worked on")
	startCmd.Flags().String("note", "", "session note")
	startCmd.Flags().Bool("no-ui", false, "start without the live timer")
}
