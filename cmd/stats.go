package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Max-Nicolai/MindPath/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent assessment history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.AssessmentRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No assessments recorded yet.")
			return nil
		}

		fmt.Printf("%-12s  %-5s  %-9s  %-10s  %s\n", "Date", "Code", "Mode", "Answered", "Duration")
		for _, rec := range records {
			fmt.Printf("%-12s  %-5s  %-9s  %6d/%-3d  %s\n",
				rec.CreatedAt.Format("2006-01-02"),
				rec.Result.Code,
				rec.Mode,
				rec.Answered,
				rec.Questions,
				rec.Duration.Round(time.Second),
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Maximum number of assessments to show")
}
