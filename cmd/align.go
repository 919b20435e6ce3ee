package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/align"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/tier"
)

var alignCmd = &cobra.Command{
	Use:   "align <passage.txt> <transcript.txt>",
	Short: "Align an oral-reading transcript against its passage",
	Long: "Align compares a reference passage with a reading transcript, reports\n" +
		"omissions, substitutions, and insertions, and prints the suggested\n" +
		"error count with the resulting fluency tier.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		passage, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read passage: %w", err)
		}
		transcript, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}

		result := align.Align(string(passage), string(transcript))

		var comprehension *float64
		if cmd.Flags().Changed("comprehension") {
			pct, _ := cmd.Flags().GetFloat64("comprehension")
			comprehension = &pct
		}
		oralTier := tier.ForOralReading(result.SuggestedErrorCount, comprehension)

		out := map[string]any{
			"alignment": result,
			"tier":      oralTier.Label(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	alignCmd.Flags().Float64("comprehension", 0, "Comprehension percentage (0-100) to fold into the tier")
}
