package grading

import (
	"sort"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/skill"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/testdef"
)

// ELA section cut points. Deliberately distinct from the math mastery bands
// (MasteredMinPct/DevelopingMinPct); the two passes must not share
// thresholds.
const (
	ELAMasteredMinPct   = 85
	ELADevelopingMinPct = 70
)

// ELA section statuses.
const (
	ELAStatusMastered   = "Mastered"
	ELAStatusDeveloping = "Developing"
	ELAStatusSupport    = "Support Needed"
)

// SectionSummary reports one ELA section with its mastered and support
// skills nested inside.
type SectionSummary struct {
	Section        string   `json:"section"`
	Status         string   `json:"status"`
	Percentage     int      `json:"percentage"`
	MasteredSkills []string `json:"masteredSkills"` // per-skill percentage >= 85
	SupportSkills  []string `json:"supportSkills"`  // per-skill percentage < 70
}

// AggregateELASections groups graded responses into the five ELA section
// buckets and scores each against the ELA thresholds. Pending responses are
// excluded, matching Aggregate.
func AggregateELASections(questions []testdef.Question, responses []Response) []SectionSummary {
	byID := make(map[string]*testdef.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	type sectionTally struct {
		total, correct int
		skills         map[string]*SkillStat
	}
	sections := make(map[string]*sectionTally)

	for _, r := range responses {
		q, ok := byID[r.QuestionID]
		if !ok || r.Result == PendingReview {
			continue
		}

		bucket := skill.ClassifyELASection(q.Section)
		tally := sections[bucket]
		if tally == nil {
			tally = &sectionTally{skills: make(map[string]*SkillStat)}
			sections[bucket] = tally
		}

		label := skill.Classify(*q)
		st := tally.skills[label]
		if st == nil {
			st = &SkillStat{}
			tally.skills[label] = st
		}
		st.Total++
		tally.total++
		if r.Result == Correct {
			st.Correct++
			tally.correct++
		}
	}

	out := make([]SectionSummary, 0, len(sections))
	for bucket, tally := range sections {
		s := SectionSummary{
			Section:        bucket,
			Percentage:     percentage(tally.correct, tally.total),
			MasteredSkills: []string{},
			SupportSkills:  []string{},
		}
		switch {
		case s.Percentage >= ELAMasteredMinPct:
			s.Status = ELAStatusMastered
		case s.Percentage >= ELADevelopingMinPct:
			s.Status = ELAStatusDeveloping
		default:
			s.Status = ELAStatusSupport
		}

		for label, st := range tally.skills {
			st.Percentage = percentage(st.Correct, st.Total)
			if st.Percentage >= ELAMasteredMinPct {
				s.MasteredSkills = append(s.MasteredSkills, label)
			}
			if st.Percentage < ELADevelopingMinPct {
				s.SupportSkills = append(s.SupportSkills, label)
			}
		}
		sort.Strings(s.MasteredSkills)
		sort.Strings(s.SupportSkills)
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out
}
