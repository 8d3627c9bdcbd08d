package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent study sessions",
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		sessions, err := store.Sessions(owner.ID, limit)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet. Use 'cram start' to begin.")
			return
		}

		for i := range sessions {
			session := &sessions[i]
			state := fmt.Sprintf("%d min", session.Minutes)
			if session.Running() {
				state = "running"
			}
			fmt.Printf("#%-4d %s  %-8s %s\n",
				session.ID,
				session.StartedAt.Local().Format("2006-01-02 15:04"),
				state,
				sessionLabel(store, owner.ID, session))
		}
	},
}

func init() {
	logCmd.Flags().IntP("limit", "l", 20, "number of sessions to show (0 = all)")
	rootCmd.AddCommand(logCmd)
}
