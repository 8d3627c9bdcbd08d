package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nurgissab/cram/internal/analytics"
	"github.com/nurgissab/cram/internal/tui"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show streak, study minutes, and upcoming deadlines",
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		window, _ := cmd.Flags().GetInt("window")
		today := time.Now().UTC()
		summary, err := analytics.Summarize(store, owner.ID, window, today)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Print(tui.RenderSummary(summary, today))
	},
}

var blueprintCmd = &cobra.Command{
	Use:     "blueprint",
	Aliases: []string{"rank"},
	Short:   "Rank open tasks by what to work on next",
	Long: `Rank open tasks by an explainable composite score:

  score = 0.45*priority + 0.30*struggle + 0.15*recency + 0.10*urgency

Important, difficult, neglected, and urgent work floats to the top; tasks
without a deadline still compete on the other three axes.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, owner, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		ranked, err := analytics.Blueprint(store, owner.ID, limit, time.Now().UTC())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Print(tui.RenderBlueprint(ranked))
	},
}

func init() {
	summaryCmd.Flags().IntP("window", "w", 7, "trailing window in days (1-30)")
	blueprintCmd.Flags().IntP("limit", "l", 5, "number of tasks to rank (1-20)")
}
