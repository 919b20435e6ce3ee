// Package grading tallies per-skill and overall correctness for a graded
// attempt and buckets skills into mastery bands. Every operation recomputes
// from scratch given its inputs; re-grading is idempotent.
package grading

import (
	"math"
	"sort"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/skill"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/testdef"
)

// Mastery band cut points on per-skill percentages.
const (
	MasteredMinPct   = 70
	DevelopingMinPct = 50
)

// Aggregate tallies responses against their questions.
//
// Only multiple-choice questions count toward the auto-graded denominator;
// other types feed skill stats only once they carry a manual grade.
// Pending responses are excluded from every percentage and reported via
// Summary.PendingCount. Responses referencing unknown question IDs are
// dropped, matching the normalizer's never-raise posture.
func Aggregate(questions []testdef.Question, responses []Response) Summary {
	byID := make(map[string]*testdef.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	stats := make(map[string]*SkillStat)
	sum := Summary{}

	for _, r := range responses {
		q, ok := byID[r.QuestionID]
		if !ok {
			continue
		}
		if r.Result == PendingReview {
			sum.PendingCount++
			continue
		}

		label := skill.Classify(*q)
		st := stats[label]
		if st == nil {
			st = &SkillStat{}
			stats[label] = st
		}
		st.Total++
		st.QuestionIDs = append(st.QuestionIDs, q.ID)
		if r.Result == Correct {
			st.Correct++
		}

		if q.Type == testdef.TypeMultipleChoice {
			sum.TotalGradable++
			if r.Result == Correct {
				sum.CorrectCount++
			}
		}
	}

	sum.Analysis = bucketSkills(stats)
	return sum
}

// Score computes the overall percentage, rounded to two decimal places.
// An empty denominator scores 0 rather than dividing by zero.
func Score(correctCount, totalGradable int) float64 {
	if totalGradable == 0 {
		return 0
	}
	score := float64(correctCount) / float64(totalGradable) * 100
	return math.Round(score*100) / 100
}

func bucketSkills(stats map[string]*SkillStat) SkillAnalysis {
	analysis := SkillAnalysis{
		Mastered:     []string{},
		Developing:   []string{},
		NeedsSupport: []string{},
		SkillStats:   stats,
	}

	for label, st := range stats {
		st.Percentage = percentage(st.Correct, st.Total)
		switch {
		case st.Percentage >= MasteredMinPct:
			analysis.Mastered = append(analysis.Mastered, label)
		case st.Percentage >= DevelopingMinPct:
			analysis.Developing = append(analysis.Developing, label)
		default:
			analysis.NeedsSupport = append(analysis.NeedsSupport, label)
		}
	}

	sort.Strings(analysis.Mastered)
	sort.Strings(analysis.Developing)
	sort.Strings(analysis.NeedsSupport)
	return analysis
}

// percentage rounds correct/total to a whole percent, defined as 0 when
// total is 0.
func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
