package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathcoach",
	Short: "Step-by-step math solutions with drawings and narration",
	Long: `mathcoach solves primary school math problems with Gemini, then draws an
illustration and narrates the explanation in Arabic or English.`,
	SilenceUsage: true,
}

// ExecuteContext runs the root command with ctx, which commands use for
// every model call.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite request log (overrides MATHCOACH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("lang", "ar", "Explanation language: ar or en")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Development logging and a metrics summary on exit")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(illustrateCmd)
	rootCmd.AddCommand(narrateCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
