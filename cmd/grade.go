package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/grading"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/testdef"
)

// fileResponse mirrors the HTTP wire shape: isCorrect is true, false, or
// null (pending manual review).
type fileResponse struct {
	QuestionID string `json:"questionId"`
	AnswerText string `json:"answerText"`
	IsCorrect  *bool  `json:"isCorrect"`
}

var gradeCmd = &cobra.Command{
	Use:   "grade <definition.json> <responses.json>",
	Short: "Grade a test attempt from JSON files",
	Long: "Grade reads a test definition (flat, sectioned, or nested shape) and a\n" +
		"response list, then prints the aggregated result as JSON. With --final\n" +
		"it refuses unless every response carries a grade.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		definition, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read definition: %w", err)
		}
		rawResponses, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read responses: %w", err)
		}

		var fileResponses []fileResponse
		if err := json.Unmarshal(rawResponses, &fileResponses); err != nil {
			return fmt.Errorf("parse responses: %w", err)
		}

		questions := testdef.Normalize(definition)
		responses := make([]grading.Response, 0, len(fileResponses))
		for _, r := range fileResponses {
			responses = append(responses, grading.Response{
				QuestionID: r.QuestionID,
				AnswerText: r.AnswerText,
				Result:     grading.CorrectnessFromPtr(r.IsCorrect),
			})
		}

		final, _ := cmd.Flags().GetBool("final")
		subject, _ := cmd.Flags().GetString("subject")

		var out any
		if final {
			result, err := grading.Finalize(questions, responses)
			if err != nil {
				return err
			}
			out = result
		} else {
			sum := grading.Aggregate(questions, responses)
			body := map[string]any{
				"score":         grading.Score(sum.CorrectCount, sum.TotalGradable),
				"correctCount":  sum.CorrectCount,
				"totalGradable": sum.TotalGradable,
				"pendingCount":  sum.PendingCount,
				"skillAnalysis": sum.Analysis,
			}
			if subject == "ela" {
				body["sections"] = grading.AggregateELASections(questions, responses)
			}
			out = body
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	gradeCmd.Flags().Bool("final", false, "Finalize: fail if any response is pending review")
	gradeCmd.Flags().String("subject", "math", "Subject of the attempt (math or ela)")
}
