package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nurgissab/cram/internal/analytics"
	"github.com/nurgissab/cram/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText))

	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	doingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
)

func statusLabel(s models.Status) string {
	switch s {
	case models.StatusDone:
		return doneStyle.Render(string(s))
	case models.StatusDoing:
		return doingStyle.Render(string(s))
	}
	return string(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// RenderTaskTable renders tasks as a plain table.
func RenderTaskTable(tasks []models.Task, topics map[uint]models.Topic) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-6s %-40s %-20s %-8s %s",
		"ID", "STATUS", "TITLE", "TOPIC", "PRIORITY", "DUE")) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("-", 92)) + "\n")

	for _, task := range tasks {
		topicTitle := ""
		if topic, ok := topics[task.TopicID]; ok {
			topicTitle = topic.Title
		}
		due := ""
		if task.DueDate != nil {
			due = task.DueDate.Format(time.DateOnly)
		}
		b.WriteString(fmt.Sprintf("%-4d %-6s %-40s %-20s %-8d %s\n",
			task.ID,
			statusLabel(task.Status),
			truncate(task.Title, 38),
			truncate(topicTitle, 18),
			task.Priority,
			due))
	}
	return b.String()
}

// RenderBlueprint renders the ranked task list with scores.
func RenderBlueprint(ranked []analytics.RankedTask) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("Blueprint") + "\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-3s %-9s %-4s %-40s %-8s %s",
		"#", "SCORE", "ID", "TITLE", "PRIORITY", "DUE")) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("-", 78)) + "\n")

	for i, task := range ranked {
		due := mutedStyle.Render("-")
		if task.DueDate != nil {
			due = task.DueDate.Format(time.DateOnly)
		}
		b.WriteString(fmt.Sprintf("%-3d %-9.4f %-4d %-40s %-8d %s\n",
			i+1,
			task.Score,
			task.ID,
			truncate(task.Title, 38),
			task.Priority,
			due))
	}
	if len(ranked) == 0 {
		b.WriteString(mutedStyle.Render("No open tasks.") + "\n")
	}
	return b.String()
}

// RenderSummary renders the dashboard snapshot: streak, window totals, a
// per-day activity chart, and the due-soon list.
func RenderSummary(summary *analytics.Summary, today time.Time) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("Study summary") + "\n\n")
	b.WriteString(fmt.Sprintf("Streak: %s   Last %d days: %s\n\n",
		accentStyle.Render(fmt.Sprintf("%d day(s)", summary.Streak)),
		summary.WindowDays,
		accentStyle.Render(fmt.Sprintf("%d min", summary.WindowMinutes))))

	maxMinutes := 0
	for _, day := range summary.RecentActivity {
		if day.Minutes > maxMinutes {
			maxMinutes = day.Minutes
		}
	}
	for _, day := range summary.RecentActivity {
		width := 0
		if maxMinutes > 0 {
			width = day.Minutes * 40 / maxMinutes
		}
		bar := barStyle.Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("%s %s %d\n", mutedStyle.Render(day.Date), bar, day.Minutes))
	}

	b.WriteString("\n" + headerStyle.Render("Due soon") + "\n")
	if len(summary.DueSoon) == 0 {
		b.WriteString(mutedStyle.Render("Nothing with a deadline.") + "\n")
		return b.String()
	}
	for _, task := range summary.DueSoon {
		due := task.DueDate.Format(time.DateOnly)
		if task.DueDate.Before(analytics.DateOf(today)) {
			due = overdueStyle.Render(due + " (overdue)")
		}
		b.WriteString(fmt.Sprintf("  #%-4d %-40s %s\n", task.ID, truncate(task.Title, 38), due))
	}
	return b.String()
}
