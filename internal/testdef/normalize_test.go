package testdef

import (
	"encoding/json"
	"testing"
)

func TestNormalize_FlatShape(t *testing.T) {
	raw := json.RawMessage(`[
		{"id": "a1", "question": "What is 2+3?", "type": "multiple-choice",
		 "options": ["4", "5"], "correct_answer": "5", "topic": "addition"},
		{"question_text": "Explain your reasoning.", "type": "long-answer"}
	]`)

	qs := Normalize(raw)
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].ID != "a1" || qs[0].Number != 1 {
		t.Errorf("got id=%q number=%d, want a1/1", qs[0].ID, qs[0].Number)
	}
	if qs[0].Text != "What is 2+3?" {
		t.Errorf("got text %q", qs[0].Text)
	}
	if qs[0].CorrectAnswer != "5" {
		t.Errorf("got correct answer %q, want 5", qs[0].CorrectAnswer)
	}
	if qs[0].ExplicitSkill != "addition" {
		t.Errorf("got skill %q, want addition", qs[0].ExplicitSkill)
	}
	if qs[1].ID != "q2" {
		t.Errorf("missing id should be generated: got %q, want q2", qs[1].ID)
	}
	if qs[1].Text != "Explain your reasoning." {
		t.Errorf("question_text fallback failed: got %q", qs[1].Text)
	}
}

func TestNormalize_SectionedShape(t *testing.T) {
	raw := json.RawMessage(`[
		{"name": "Fractions", "questions": [
			{"question": "Half of 10?"},
			{"question": "A third of 9?"}
		]},
		{"name": "Decimals", "questions": [
			{"question": "0.5 + 0.25?"}
		]}
	]`)

	qs := Normalize(raw)
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}
	if qs[0].Section != "Fractions" || qs[2].Section != "Decimals" {
		t.Errorf("section labels not carried: %q / %q", qs[0].Section, qs[2].Section)
	}
	// Numbering runs across sections.
	for i, q := range qs {
		if q.Number != i+1 {
			t.Errorf("question %d numbered %d", i, q.Number)
		}
	}
}

func TestNormalize_NestedShape(t *testing.T) {
	raw := json.RawMessage(`[
		{"sections": [
			{"title": "Part A", "questions": [{"question": "Q1"}]},
			{"title": "Part B", "questions": [{"question": "Q2"}, {"question": "Q3"}]}
		]},
		{"sections": [
			{"title": "Part C", "questions": [{"question": "Q4"}]}
		]}
	]`)

	qs := Normalize(raw)
	if len(qs) != 4 {
		t.Fatalf("got %d questions, want 4", len(qs))
	}
	if qs[3].Text != "Q4" || qs[3].Number != 4 {
		t.Errorf("depth-first order broken: got %q number %d", qs[3].Text, qs[3].Number)
	}
	if qs[1].Section != "Part B" {
		t.Errorf("got section %q, want Part B", qs[1].Section)
	}
}

func TestNormalize_UnknownShapesAreEmpty(t *testing.T) {
	for _, raw := range []string{``, `null`, `42`, `"text"`, `[]`, `[{"foo": 1}]`, `{"bar": []}`} {
		if qs := Normalize(json.RawMessage(raw)); len(qs) != 0 {
			t.Errorf("Normalize(%s) = %v, want empty", raw, qs)
		}
	}
}

func TestNormalize_ObjectWrapperAccepted(t *testing.T) {
	raw := json.RawMessage(`{"questions": [{"question": "Q1"}]}`)
	qs := Normalize(raw)
	if len(qs) != 1 || qs[0].Text != "Q1" {
		t.Errorf("got %v, want one question Q1", qs)
	}
}

func TestNormalize_FieldPrecedence(t *testing.T) {
	raw := json.RawMessage(`[
		{"question": "primary", "question_text": "fallback",
		 "correct_answer": "snake", "correctAnswer": "camel",
		 "topic": "fractions", "skill_tag": "decimals"}
	]`)
	qs := Normalize(raw)
	if len(qs) != 1 {
		t.Fatal("expected one question")
	}
	if qs[0].Text != "primary" {
		t.Errorf("text precedence: got %q, want primary", qs[0].Text)
	}
	if qs[0].CorrectAnswer != "snake" {
		t.Errorf("answer precedence: got %q, want snake", qs[0].CorrectAnswer)
	}
	if qs[0].ExplicitSkill != "fractions" {
		t.Errorf("skill precedence: got %q, want fractions", qs[0].ExplicitSkill)
	}
}

func TestNormalize_MissingSkillDefaultsToGeneral(t *testing.T) {
	qs := Normalize(json.RawMessage(`[{"question": "Q1"}]`))
	if qs[0].ExplicitSkill != DefaultSkill {
		t.Errorf("got %q, want %q", qs[0].ExplicitSkill, DefaultSkill)
	}
}

func TestNormalize_TypeDefaults(t *testing.T) {
	qs := Normalize(json.RawMessage(`[
		{"question": "with options", "options": ["a", "b"]},
		{"question": "without options"}
	]`))
	if qs[0].Type != TypeMultipleChoice {
		t.Errorf("got %q, want multiple-choice", qs[0].Type)
	}
	if qs[1].Type != TypeShortAnswer {
		t.Errorf("got %q, want short-answer", qs[1].Type)
	}
}

func TestDetectShape(t *testing.T) {
	cases := []struct {
		raw  string
		want Shape
	}{
		{`[{"question": "x"}]`, ShapeFlat},
		{`[{"questions": []}]`, ShapeSectioned},
		{`[{"sections": []}]`, ShapeNested},
		{`[{"other": 1}]`, ShapeUnknown},
	}
	for _, c := range cases {
		items := decodeList(json.RawMessage(c.raw))
		if got := DetectShape(items); got != c.want {
			t.Errorf("DetectShape(%s) = %v, want %v", c.raw, got, c.want)
		}
	}
}
