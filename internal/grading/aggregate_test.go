package grading

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/testdef"
)

func mcQuestion(id, text, skillTag string) testdef.Question {
	return testdef.Question{
		ID:            id,
		Text:          text,
		Type:          testdef.TypeMultipleChoice,
		ExplicitSkill: skillTag,
	}
}

func TestAggregate_CountsPerSkill(t *testing.T) {
	questions := []testdef.Question{
		mcQuestion("q1", "", "fractions"),
		mcQuestion("q2", "", "fractions"),
		mcQuestion("q3", "", "decimals"),
	}
	responses := []Response{
		{QuestionID: "q1", Result: Correct},
		{QuestionID: "q2", Result: Incorrect},
		{QuestionID: "q3", Result: Correct},
	}

	sum := Aggregate(questions, responses)
	if sum.CorrectCount != 2 || sum.TotalGradable != 3 {
		t.Errorf("got %d/%d, want 2/3", sum.CorrectCount, sum.TotalGradable)
	}

	fr := sum.Analysis.SkillStats["Fractions"]
	if fr == nil || fr.Total != 2 || fr.Correct != 1 || fr.Percentage != 50 {
		t.Errorf("Fractions stat = %+v, want 1/2 = 50%%", fr)
	}
	de := sum.Analysis.SkillStats["Decimals"]
	if de == nil || de.Percentage != 100 {
		t.Errorf("Decimals stat = %+v, want 100%%", de)
	}
}

func TestAggregate_BucketsAndSorts(t *testing.T) {
	questions := []testdef.Question{
		mcQuestion("q1", "", "zebra_skill"),
		mcQuestion("q2", "", "apple_skill"),
		mcQuestion("q3", "", "midway_skill"),
		mcQuestion("q4", "", "midway_skill"),
	}
	responses := []Response{
		{QuestionID: "q1", Result: Correct},   // 100% -> mastered
		{QuestionID: "q2", Result: Correct},   // 100% -> mastered
		{QuestionID: "q3", Result: Correct},   // 50% -> developing
		{QuestionID: "q4", Result: Incorrect},
	}

	a := Aggregate(questions, responses).Analysis
	if !reflect.DeepEqual(a.Mastered, []string{"Apple Skill", "Zebra Skill"}) {
		t.Errorf("mastered = %v, want sorted [Apple Skill Zebra Skill]", a.Mastered)
	}
	if !reflect.DeepEqual(a.Developing, []string{"Midway Skill"}) {
		t.Errorf("developing = %v", a.Developing)
	}
	if len(a.NeedsSupport) != 0 {
		t.Errorf("needsSupport = %v, want empty", a.NeedsSupport)
	}
}

func TestAggregate_OnlyMultipleChoiceInDenominator(t *testing.T) {
	questions := []testdef.Question{
		mcQuestion("q1", "", "fractions"),
		{ID: "q2", Type: testdef.TypeShortAnswer, ExplicitSkill: "fractions"},
	}
	responses := []Response{
		{QuestionID: "q1", Result: Correct},
		{QuestionID: "q2", Result: Correct}, // manually graded
	}

	sum := Aggregate(questions, responses)
	if sum.TotalGradable != 1 || sum.CorrectCount != 1 {
		t.Errorf("got %d/%d, want 1/1 (short-answer excluded from denominator)",
			sum.CorrectCount, sum.TotalGradable)
	}
	// Manually graded short-answer still feeds the skill stats.
	if st := sum.Analysis.SkillStats["Fractions"]; st == nil || st.Total != 2 {
		t.Errorf("Fractions stat = %+v, want total 2", st)
	}
}

func TestAggregate_PendingExcludedAndCounted(t *testing.T) {
	questions := []testdef.Question{
		mcQuestion("q1", "", "fractions"),
		{ID: "q2", Type: testdef.TypeLongAnswer, ExplicitSkill: "fractions"},
	}
	responses := []Response{
		{QuestionID: "q1", Result: Correct},
		{QuestionID: "q2", Result: PendingReview},
	}

	sum := Aggregate(questions, responses)
	if sum.PendingCount != 1 {
		t.Errorf("pending = %d, want 1", sum.PendingCount)
	}
	if st := sum.Analysis.SkillStats["Fractions"]; st == nil || st.Total != 1 {
		t.Errorf("pending response must not enter skill totals: %+v", st)
	}
}

func TestAggregate_UnknownQuestionIDsDropped(t *testing.T) {
	sum := Aggregate(nil, []Response{{QuestionID: "ghost", Result: Correct}})
	if sum.TotalGradable != 0 || len(sum.Analysis.SkillStats) != 0 {
		t.Errorf("unknown question should be dropped: %+v", sum)
	}
}

func TestScore_TwoDecimalsAndZeroDenominator(t *testing.T) {
	if got := Score(0, 0); got != 0 {
		t.Errorf("Score(0,0) = %v, want 0", got)
	}
	if got := Score(1, 3); got != 33.33 {
		t.Errorf("Score(1,3) = %v, want 33.33", got)
	}
	if got := Score(2, 3); got != 66.67 {
		t.Errorf("Score(2,3) = %v, want 66.67", got)
	}
}

func TestPercentage_ZeroTotalIsZero(t *testing.T) {
	if got := percentage(0, 0); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestFinalize_RefusesWhilePending(t *testing.T) {
	questions := []testdef.Question{mcQuestion("q1", "", "fractions")}
	responses := []Response{{QuestionID: "q1", Result: PendingReview}}

	_, err := Finalize(questions, responses)
	var notReady *NotReadyError
	if !errors.As(err, &notReady) {
		t.Fatalf("got %v, want NotReadyError", err)
	}
	if notReady.PendingCount != 1 {
		t.Errorf("pending = %d, want 1", notReady.PendingCount)
	}
}

func TestFinalize_StableResult(t *testing.T) {
	questions := []testdef.Question{
		mcQuestion("q1", "", "fractions"),
		mcQuestion("q2", "", "fractions"),
	}
	responses := []Response{
		{QuestionID: "q1", Result: Correct},
		{QuestionID: "q2", Result: Incorrect},
	}

	first, err := Finalize(questions, responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Score != 50 || first.Tier != "Tier 2" {
		t.Errorf("got score=%v tier=%q, want 50 / Tier 2", first.Score, first.Tier)
	}

	second, err := Finalize(questions, responses)
	if err != nil {
		t.Fatalf("unexpected error on re-grade: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-grading identical inputs diverged: %+v vs %+v", first, second)
	}
}

func TestFinalize_TierBoundaries(t *testing.T) {
	build := func(correct, total int) (*Result, error) {
		var questions []testdef.Question
		var responses []Response
		for i := 0; i < total; i++ {
			id := string(rune('a' + i))
			questions = append(questions, mcQuestion(id, "", "fractions"))
			r := Response{QuestionID: id, Result: Incorrect}
			if i < correct {
				r.Result = Correct
			}
			responses = append(responses, r)
		}
		return Finalize(questions, responses)
	}

	res, err := build(4, 5) // 80%
	if err != nil {
		t.Fatal(err)
	}
	if res.Tier != "Tier 1" {
		t.Errorf("80%% -> %q, want Tier 1", res.Tier)
	}

	res, err = build(1, 2) // 50%
	if err != nil {
		t.Fatal(err)
	}
	if res.Tier != "Tier 2" {
		t.Errorf("50%% -> %q, want Tier 2", res.Tier)
	}

	res, err = build(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tier != "Tier 3" {
		t.Errorf("0%% -> %q, want Tier 3", res.Tier)
	}
}

func TestCorrectnessFromPtr(t *testing.T) {
	tr, fa := true, false
	if CorrectnessFromPtr(nil) != PendingReview {
		t.Error("nil should map to PendingReview")
	}
	if CorrectnessFromPtr(&tr) != Correct {
		t.Error("true should map to Correct")
	}
	if CorrectnessFromPtr(&fa) != Incorrect {
		t.Error("false should map to Incorrect")
	}
}
