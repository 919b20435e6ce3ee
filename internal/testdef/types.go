package testdef

// QuestionType is an open set: legacy payloads occasionally carry values
// outside the known constants and those pass through untouched.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeWordProblem    QuestionType = "word-problem"
	TypeMultiStep      QuestionType = "multi-step"
	TypeShortAnswer    QuestionType = "short-answer"
	TypeLongAnswer     QuestionType = "long-answer"
)

// DefaultSkill is the sentinel carried by questions with no usable topic.
// The classifier treats it as "no override".
const DefaultSkill = "general"

// Question is the canonical flat record every legacy shape normalizes into.
// Immutable once loaded for a grading run.
type Question struct {
	ID            string       `json:"id"`
	Number        int          `json:"number"` // 1-based encounter order
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	ExplicitSkill string       `json:"explicitSkill,omitempty"`
	Section       string       `json:"section,omitempty"`
}

// Shape identifies which of the three legacy storage layouts a raw
// questions payload uses.
type Shape int

const (
	// ShapeUnknown covers anything unrecognized; it normalizes to an
	// empty question list.
	ShapeUnknown Shape = iota
	// ShapeFlat is a plain list of question objects.
	ShapeFlat
	// ShapeSectioned is a list of sections, each holding a questions list.
	ShapeSectioned
	// ShapeNested is a list of items, each holding a sections list of the
	// sectioned layout.
	ShapeNested
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeSectioned:
		return "sectioned"
	case ShapeNested:
		return "nested"
	default:
		return "unknown"
	}
}
