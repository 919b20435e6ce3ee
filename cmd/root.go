package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "debshub-diag",
	Short: "Diagnostic scoring and text-alignment engine",
	Long: "debshub-diag grades diagnostic test attempts, classifies questions into\n" +
		"skills, places students into tiers, and aligns oral-reading transcripts\n" +
		"against reference passages. Run it as an HTTP service or use the grade\n" +
		"and align commands on JSON files directly.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DIAG_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(alignCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DIAG_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
