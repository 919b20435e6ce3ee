package oraleval

// QuestionKind distinguishes literal-recall questions, which the keyword
// fallback can judge, from inferential/analytical ones, which it cannot.
type QuestionKind string

const (
	KindLiteral     QuestionKind = "literal"
	KindInferential QuestionKind = "inferential"
	KindAnalytical  QuestionKind = "analytical"
)

// Suggested results.
const (
	ResultCorrect   = "correct"
	ResultIncorrect = "incorrect"
	ResultUnclear   = "unclear"
)

// Evaluation is the verdict for one open-ended oral answer. Confidence is
// 0-100; an "unclear" result always needs human review.
type Evaluation struct {
	SuggestedResult string `json:"suggestedResult"`
	Confidence      int    `json:"confidence"`
	Rationale       string `json:"rationale"`
}

// Input carries everything needed to judge one oral answer.
type Input struct {
	Kind         QuestionKind
	QuestionText string
	PassageText  string
	Transcript   string
}
