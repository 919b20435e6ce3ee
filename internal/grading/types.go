package grading

// Correctness is the tri-state grading outcome for one response. Modeling
// the pending state explicitly (instead of a nullable bool) is what lets
// Finalize refuse at compile-visible points rather than on ad hoc nil checks.
type Correctness int

const (
	// PendingReview means neither auto-grading nor a human has decided yet.
	PendingReview Correctness = iota
	Correct
	Incorrect
)

func (c Correctness) String() string {
	switch c {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "pending"
	}
}

// CorrectnessFromPtr maps the wire encoding (bool or null) onto the enum.
func CorrectnessFromPtr(v *bool) Correctness {
	switch {
	case v == nil:
		return PendingReview
	case *v:
		return Correct
	default:
		return Incorrect
	}
}

// Response is one student answer to one question within an attempt.
type Response struct {
	QuestionID string      `json:"questionId"`
	AnswerText string      `json:"answerText"`
	Result     Correctness `json:"-"`
}

// SkillStat tallies correctness for one skill. Recomputed wholesale on
// every grading pass, never incrementally mutated.
type SkillStat struct {
	Total       int      `json:"total"`
	Correct     int      `json:"correct"`
	Percentage  int      `json:"percentage"`
	QuestionIDs []string `json:"questionIds"`
}

// SkillAnalysis buckets skills by their percentage for one graded attempt.
type SkillAnalysis struct {
	Mastered     []string              `json:"mastered"`     // percentage >= 70
	Developing   []string              `json:"developing"`   // 50-69
	NeedsSupport []string              `json:"needsSupport"` // < 50
	SkillStats   map[string]*SkillStat `json:"skillStats"`
}

// Summary is the full output of one aggregation pass.
type Summary struct {
	Analysis      SkillAnalysis
	CorrectCount  int
	TotalGradable int
	// PendingCount is how many responses are still awaiting manual review.
	// Those responses are excluded from every percentage; the count is
	// surfaced so callers can refuse to finalize instead of silently
	// reporting a partial score.
	PendingCount int
}

// Result is the finalized grading output handed to collaborators.
type Result struct {
	Score         float64       `json:"score"` // 0-100, two decimals
	CorrectCount  int           `json:"correctCount"`
	TotalGradable int           `json:"totalGradable"`
	Tier          string        `json:"tier"`
	SkillAnalysis SkillAnalysis `json:"skillAnalysis"`
}
