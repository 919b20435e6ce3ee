package grading

import (
	"testing"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/testdef"
)

func elaQuestion(id, section, skillTag string) testdef.Question {
	return testdef.Question{
		ID:            id,
		Type:          testdef.TypeMultipleChoice,
		Section:       section,
		ExplicitSkill: skillTag,
	}
}

func TestAggregateELASections_DistinctThresholds(t *testing.T) {
	// 3/4 = 75%: developing under ELA thresholds even though the math pass
	// would call 75% mastered.
	questions := []testdef.Question{
		elaQuestion("q1", "Reading Comprehension", "main_idea"),
		elaQuestion("q2", "Reading Comprehension", "main_idea"),
		elaQuestion("q3", "Reading Comprehension", "main_idea"),
		elaQuestion("q4", "Reading Comprehension", "main_idea"),
	}
	responses := []Response{
		{QuestionID: "q1", Result: Correct},
		{QuestionID: "q2", Result: Correct},
		{QuestionID: "q3", Result: Correct},
		{QuestionID: "q4", Result: Incorrect},
	}

	sections := AggregateELASections(questions, responses)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	s := sections[0]
	if s.Section != "Reading Comprehension" {
		t.Errorf("got section %q", s.Section)
	}
	if s.Percentage != 75 || s.Status != ELAStatusDeveloping {
		t.Errorf("got %d%% %q, want 75%% Developing", s.Percentage, s.Status)
	}
	// 75% sits between the skill cut points: neither mastered nor support.
	if len(s.MasteredSkills) != 0 || len(s.SupportSkills) != 0 {
		t.Errorf("75%% skill should be in neither list: %+v", s)
	}
}

func TestAggregateELASections_MasteredAndSupportSkills(t *testing.T) {
	questions := []testdef.Question{
		elaQuestion("q1", "Vocabulary", "synonyms"),
		elaQuestion("q2", "Vocabulary", "antonyms"),
		elaQuestion("q3", "Vocabulary", "antonyms"),
	}
	responses := []Response{
		{QuestionID: "q1", Result: Correct},   // synonyms 100% -> mastered
		{QuestionID: "q2", Result: Incorrect}, // antonyms 0% -> support
		{QuestionID: "q3", Result: Incorrect},
	}

	sections := AggregateELASections(questions, responses)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	s := sections[0]
	if len(s.MasteredSkills) != 1 || s.MasteredSkills[0] != "Synonyms" {
		t.Errorf("mastered = %v, want [Synonyms]", s.MasteredSkills)
	}
	if len(s.SupportSkills) != 1 || s.SupportSkills[0] != "Antonyms" {
		t.Errorf("support = %v, want [Antonyms]", s.SupportSkills)
	}
	if s.Status != ELAStatusSupport { // 1/3 = 33%
		t.Errorf("status = %q, want Support Needed", s.Status)
	}
}

func TestAggregateELASections_UnrecognizedSectionFallsToGrammar(t *testing.T) {
	questions := []testdef.Question{elaQuestion("q1", "Mystery Section", "usage")}
	responses := []Response{{QuestionID: "q1", Result: Correct}}

	sections := AggregateELASections(questions, responses)
	if len(sections) != 1 || sections[0].Section != "Grammar & Language Conventions" {
		t.Errorf("got %+v, want Grammar & Language Conventions bucket", sections)
	}
	if sections[0].Status != ELAStatusMastered {
		t.Errorf("100%% section should be Mastered, got %q", sections[0].Status)
	}
}

func TestAggregateELASections_PendingExcluded(t *testing.T) {
	questions := []testdef.Question{
		elaQuestion("q1", "Spelling", "spelling_words"),
		elaQuestion("q2", "Spelling", "spelling_words"),
	}
	responses := []Response{
		{QuestionID: "q1", Result: Correct},
		{QuestionID: "q2", Result: PendingReview},
	}

	sections := AggregateELASections(questions, responses)
	if len(sections) != 1 || sections[0].Percentage != 100 {
		t.Errorf("pending response must not dilute the section: %+v", sections)
	}
}
