package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/models"
	"github.com/nurgissab/cram/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List open tasks with optional filters for status, topic, and title text",
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		filter := db.TaskFilter{Statuses: models.OpenStatuses}
		if all, _ := cmd.Flags().GetBool("all"); all {
			filter.Statuses = nil
		}
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			s := models.Status(strings.ToUpper(status))
			if !s.Valid() {
				fmt.Printf("Error: invalid status '%s' (use todo, doing, or done)\n", status)
				return
			}
			filter.Statuses = []models.Status{s}
		}
		filter.TopicID, _ = cmd.Flags().GetUint("topic")
		filter.Match, _ = cmd.Flags().GetString("match")

		tasks, err := store.Tasks(owner.ID, filter)
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'cram add task' to create one.")
			return
		}

		topicIDs := make([]uint, 0, len(tasks))
		for _, task := range tasks {
			topicIDs = append(topicIDs, task.TopicID)
		}
		topics, err := store.TopicsByIDs(owner.ID, topicIDs)
		if err != nil {
			fmt.Printf("Error fetching topics: %v\n", err)
			return
		}

		fmt.Print(tui.RenderTaskTable(tasks, topics))
	},
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "filter by status: todo, doing, done")
	listCmd.Flags().UintP("topic", "t", 0, "filter by topic ID")
	listCmd.Flags().StringP("match", "m", "", "filter by title text")
	listCmd.Flags().BoolP("all", "a", false, "include completed tasks")
}
