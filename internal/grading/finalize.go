package grading

import (
	"fmt"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/testdef"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/tier"
)

// NotReadyError reports that finalization was refused because responses are
// still awaiting manual review.
type NotReadyError struct {
	PendingCount int
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("attempt not ready to finalize: %d response(s) pending manual review", e.PendingCount)
}

// Finalize aggregates an attempt and, when every response carries a grade,
// produces the authoritative result with its tier placement. While any
// response is pending it returns a NotReadyError carrying the count; no
// partial result is produced.
func Finalize(questions []testdef.Question, responses []Response) (*Result, error) {
	sum := Aggregate(questions, responses)
	if sum.PendingCount > 0 {
		return nil, &NotReadyError{PendingCount: sum.PendingCount}
	}

	score := Score(sum.CorrectCount, sum.TotalGradable)
	return &Result{
		Score:         score,
		CorrectCount:  sum.CorrectCount,
		TotalGradable: sum.TotalGradable,
		Tier:          tier.ForWrittenScore(score).Label(),
		SkillAnalysis: sum.Analysis,
	}, nil
}
