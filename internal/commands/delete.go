package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm",
	Aliases: []string{"delete"},
	Short:   "Delete a subject, topic, or task",
	Long: `Delete a record. Deleting a subject removes its topics and tasks;
deleting a topic removes its tasks. Study sessions that referenced the
deleted records are kept, with the reference cleared, so historical
minutes and streaks are unaffected.`,
}

func deleteByID(kind string, del func(uint) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid %s ID '%s'\n", kind, args[0])
			return
		}
		if err := del(uint(id)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑  Deleted %s #%d\n", kind, id)
	}
}

var deleteSubjectCmd = &cobra.Command{
	Use:   "subject [id]",
	Short: "Delete a subject and everything under it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()
		deleteByID("subject", func(id uint) error { return store.DeleteSubject(owner.ID, id) })(cmd, args)
	},
}

var deleteTopicCmd = &cobra.Command{
	Use:   "topic [id]",
	Short: "Delete a topic and its tasks",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()
		deleteByID("topic", func(id uint) error { return store.DeleteTopic(owner.ID, id) })(cmd, args)
	},
}

var deleteTaskCmd = &cobra.Command{
	Use:   "task [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()
		deleteByID("task", func(id uint) error { return store.DeleteTask(owner.ID, id) })(cmd, args)
	},
}

func init() {
	deleteCmd.AddCommand(deleteSubjectCmd)
	deleteCmd.AddCommand(deleteTopicCmd)
	deleteCmd.AddCommand(deleteTaskCmd)
}
