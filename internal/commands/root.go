package commands

import (
	"github.com/spf13/cobra"

	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/models"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var ownerName string

var rootCmd = &cobra.Command{
	Use:   "cram",
	Short: "A CLI study planner and session timer",
	Long: `cram is a command-line study planner. Organize subjects, topics, and
tasks, time your study sessions, and let the blueprint rank what to work
on next.`,
}

// openStore opens the database and resolves the owner account every
// record is scoped to.
func openStore() (*db.Store, *models.Owner, error) {
	store, err := db.OpenDefault()
	if err != nil {
		return nil, nil, err
	}
	owner, err := store.FindOrCreateOwner(ownerName)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, owner, nil
}

// SetVersion sets the version information.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ownerName, "owner", "local", "owner account for all records")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(blueprintCmd)
}
