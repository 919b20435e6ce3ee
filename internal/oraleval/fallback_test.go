package oraleval

import (
	"strings"
	"testing"
)

const testPassage = "The river otter builds its den along the muddy banks of the river, " +
	"where it hunts fish and crayfish during the early morning hours."

func TestEvaluateFallbackCorrect(t *testing.T) {
	in := Input{
		Kind:         KindLiteral,
		QuestionText: "Where does the otter build its den?",
		PassageText:  testPassage,
		Transcript:   "along the muddy banks of the river",
	}

	got := EvaluateFallback(in)
	if got.SuggestedResult != ResultCorrect {
		t.Fatalf("SuggestedResult = %q, want %q (rationale: %s)", got.SuggestedResult, ResultCorrect, got.Rationale)
	}
	if got.Confidence < correctBaseConf || got.Confidence > correctMaxConf {
		t.Errorf("Confidence = %d, want in [%d, %d]", got.Confidence, correctBaseConf, correctMaxConf)
	}
}

func TestEvaluateFallbackConfidenceCapped(t *testing.T) {
	// Enough matching keywords to push past the cap.
	in := Input{
		Kind:        KindLiteral,
		PassageText: testPassage,
		Transcript:  "river otter builds muddy banks hunts fish crayfish during early morning hours",
	}

	got := EvaluateFallback(in)
	if got.SuggestedResult != ResultCorrect {
		t.Fatalf("SuggestedResult = %q, want %q", got.SuggestedResult, ResultCorrect)
	}
	if got.Confidence != correctMaxConf {
		t.Errorf("Confidence = %d, want capped at %d", got.Confidence, correctMaxConf)
	}
}

func TestEvaluateFallbackIncorrect(t *testing.T) {
	in := Input{
		Kind:        KindLiteral,
		PassageText: testPassage,
		Transcript:  "they live inside tall trees near mountains",
	}

	got := EvaluateFallback(in)
	if got.SuggestedResult != ResultIncorrect {
		t.Fatalf("SuggestedResult = %q, want %q (rationale: %s)", got.SuggestedResult, ResultIncorrect, got.Rationale)
	}
	if got.Confidence != incorrectConf {
		t.Errorf("Confidence = %d, want %d", got.Confidence, incorrectConf)
	}
}

func TestEvaluateFallbackEmptyTranscript(t *testing.T) {
	in := Input{
		Kind:        KindLiteral,
		PassageText: testPassage,
		Transcript:  "",
	}

	got := EvaluateFallback(in)
	if got.SuggestedResult != ResultIncorrect {
		t.Errorf("SuggestedResult = %q, want %q for empty transcript", got.SuggestedResult, ResultIncorrect)
	}
}

func TestEvaluateFallbackPartialOverlapUnclear(t *testing.T) {
	// One matching keyword out of three long words: ratio 1/3 sits between
	// the incorrect and correct cut points.
	in := Input{
		Kind:        KindLiteral,
		PassageText: testPassage,
		Transcript:  "river somewhere probably",
	}

	got := EvaluateFallback(in)
	if got.SuggestedResult != ResultUnclear {
		t.Fatalf("SuggestedResult = %q, want %q (rationale: %s)", got.SuggestedResult, ResultUnclear, got.Rationale)
	}
	if got.Confidence != unclearConf {
		t.Errorf("Confidence = %d, want %d", got.Confidence, unclearConf)
	}
}

func TestEvaluateFallbackShortWordsIgnored(t *testing.T) {
	// Every word is three characters or fewer so none count as keywords;
	// zero matches means incorrect.
	in := Input{
		Kind:        KindLiteral,
		PassageText: testPassage,
		Transcript:  "it is in the mud",
	}

	got := EvaluateFallback(in)
	if got.SuggestedResult != ResultIncorrect {
		t.Errorf("SuggestedResult = %q, want %q when no keywords survive filtering", got.SuggestedResult, ResultIncorrect)
	}
}

func TestEvaluateFallbackNonLiteralAlwaysUnclear(t *testing.T) {
	for _, kind := range []QuestionKind{KindInferential, KindAnalytical} {
		in := Input{
			Kind:        kind,
			PassageText: testPassage,
			Transcript:  "along the muddy banks of the river where it hunts fish",
		}

		got := EvaluateFallback(in)
		if got.SuggestedResult != ResultUnclear {
			t.Errorf("kind %s: SuggestedResult = %q, want %q", kind, got.SuggestedResult, ResultUnclear)
		}
		if !strings.Contains(got.Rationale, string(kind)) {
			t.Errorf("kind %s: rationale %q should name the question kind", kind, got.Rationale)
		}
	}
}
