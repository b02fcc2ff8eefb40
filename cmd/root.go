package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Max-Nicolai/MindPath/internal/app"
	"github.com/Max-Nicolai/MindPath/internal/assessment"
	"github.com/Max-Nicolai/MindPath/internal/jobs"
	"github.com/Max-Nicolai/MindPath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mindpath",
	Short: "RIASEC career assessment in your terminal",
	Long:  "MindPath — terminal career assessment that derives your Holland Code from a short interest inventory and shows matching paths.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDPATH_DB env var)")
	rootCmd.Flags().Int("job-limit", 4, "Number of job postings to fetch for the results page")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINDPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	jobLimit, _ := cmd.Flags().GetInt("job-limit")
	opts := app.Options{
		Controller:  assessment.NewController(assessment.DefaultConfig()),
		Assessments: st.AssessmentRepo(),
		Feedback:    st.FeedbackSink(),
		JobsLimit:   jobLimit,
	}

	if os.Getenv("THEIRSTACK_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "THEIRSTACK_API_KEY not set; the results page will show an empty job list.")
	}
	opts.Jobs = jobs.NewTheirStack()

	return app.Run(opts)
}
