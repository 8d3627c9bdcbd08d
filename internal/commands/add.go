package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/parser"
	"github.com/nurgissab/cram/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a subject, topic, or task",
}

var addSubjectCmd = &cobra.Command{
	Use:   "subject [name]",
	Short: "Add a subject (e.g. Mathematics)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		color, _ := cmd.Flags().GetString("color")
		subject, err := store.CreateSubject(owner.ID, args[0], color)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Added subject %q - ID: %d\n", subject.Name, subject.ID)
	},
}

var addTopicCmd = &cobra.Command{
	Use:   "topic [title]",
	Short: "Add a topic under a subject",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		subjectName, _ := cmd.Flags().GetString("subject")
		if subjectName == "" {
			fmt.Println("Error: --subject is required")
			return
		}
		subject, err := store.SubjectByName(owner.ID, subjectName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		struggle, _ := cmd.Flags().GetInt("struggle")
		topic, err := store.CreateTopic(owner.ID, subject.ID, args[0], struggle)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Added topic %q under %s - ID: %d\n", topic.Title, subject.Name, topic.ID)
	},
}

var addTaskCmd = &cobra.Command{
	Use:   "task [title...]",
	Short: "Add a task under a topic",
	Long: `Add a task under a topic. The title supports inline syntax:

  cram add task --topic 3 "Past paper Q1-Q3 !high due:tomorrow"

!1..!3 or !low/!medium/!high sets priority; due: accepts yyyy-mm-dd,
dd/mm/yyyy, today, tomorrow, "3 days", or "2 weeks". Without a title an
interactive form opens.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		topicID, _ := cmd.Flags().GetUint("topic")
		if topicID == 0 {
			fmt.Println("Error: --topic is required")
			return
		}
		topic, err := store.TopicByID(owner.ID, topicID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// No title: open the interactive form.
		if len(args) == 0 {
			if err := tui.RunAddTaskTUI(store, owner.ID, topic); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		today := time.Now().UTC()
		parsed := parser.ParseTaskLine(strings.Join(args, " "), today)
		for _, e := range parsed.Errors {
			fmt.Printf("Warning: %s\n", e)
		}
		if parsed.Title == "" {
			fmt.Println("Error: task title is empty")
			return
		}

		req := db.CreateTaskRequest{
			OwnerID:  owner.ID,
			TopicID:  topic.ID,
			Title:    parsed.Title,
			DueDate:  parsed.DueDate,
			Priority: parsed.Priority,
		}
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			req.DueDate, err = parser.ParseDueDate(due, today)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}
		if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
			req.Priority = parser.ParsePriority(priority)
		}
		req.Notes, _ = cmd.Flags().GetString("notes")

		task, err := store.CreateTask(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Added task %q under %s - ID: %d\n", task.Title, topic.Title, task.ID)
		if task.DueDate != nil {
			fmt.Printf("Due: %s\n", task.DueDate.Format(time.DateOnly))
		}
	},
}

var setStruggleCmd = &cobra.Command{
	Use:   "struggle [topic-id] [level]",
	Short: "Set a topic's struggle level (0-3)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		topicID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid topic ID '%s'\n", args[0])
			return
		}
		level, err := strconv.Atoi(args[1])
		if err != nil || level < 0 || level > 3 {
			fmt.Printf("Error: struggle level must be 0-3\n")
			return
		}

		topic, err := store.SetTopicStruggle(owner.ID, uint(topicID), level)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Topic %q struggle level set to %d\n", topic.Title, topic.StruggleLevel)
	},
}

func init() {
	addSubjectCmd.Flags().String("color", "", "hex color tag (e.g. #1E90FF)")

	addTopicCmd.Flags().StringP("subject", "s", "", "subject name the topic belongs to")
	addTopicCmd.Flags().Int("struggle", 0, "difficulty signal 0-3")

	addTaskCmd.Flags().UintP("topic", "t", 0, "topic ID the task belongs to")
	addTaskCmd.Flags().String("due", "", "due date")
	addTaskCmd.Flags().StringP("priority", "p", "", "priority: low/medium/high or 1-3")
	addTaskCmd.Flags().String("notes", "", "free-form notes")

	addCmd.AddCommand(addSubjectCmd)
	addCmd.AddCommand(addTopicCmd)
	addCmd.AddCommand(addTaskCmd)
	rootCmd.AddCommand(setStruggleCmd)
}
