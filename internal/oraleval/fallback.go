// Package oraleval judges open-ended oral answers. The primary path asks an
// LLM for a qualitative verdict; the fallback is a deterministic
// keyword-overlap heuristic used whenever no provider is available. The
// fallback only trusts itself on literal-recall questions.
package oraleval

import (
	"fmt"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/align"
)

// Fallback heuristic cut points.
const (
	minKeywordLen     = 3 // words must be longer than this to count
	correctMinRatio   = 0.5
	correctMinMatches = 2
	incorrectMaxRatio = 0.2
	correctBaseConf   = 40
	correctConfPerHit = 10
	correctMaxConf    = 70
	incorrectConf     = 40
	unclearConf       = 30
)

// EvaluateFallback applies the keyword-overlap heuristic. Inferential and
// analytical questions always come back unclear: without the qualitative
// evaluator they need a human.
func EvaluateFallback(in Input) Evaluation {
	if in.Kind != KindLiteral {
		return Evaluation{
			SuggestedResult: ResultUnclear,
			Confidence:      unclearConf,
			Rationale:       fmt.Sprintf("%s questions require qualitative review; keyword matching is unreliable", in.Kind),
		}
	}

	passageWords := keywordSet(in.PassageText)
	transcriptWords := keywords(in.Transcript)

	matches := 0
	for _, w := range transcriptWords {
		if passageWords[w] {
			matches++
		}
	}

	denom := len(transcriptWords)
	if denom < 1 {
		denom = 1
	}
	matchRatio := float64(matches) / float64(denom)

	switch {
	case matchRatio >= correctMinRatio && matches >= correctMinMatches:
		conf := correctBaseConf + matches*correctConfPerHit
		if conf > correctMaxConf {
			conf = correctMaxConf
		}
		return Evaluation{
			SuggestedResult: ResultCorrect,
			Confidence:      conf,
			Rationale:       fmt.Sprintf("%d of %d answer words appear in the passage", matches, len(transcriptWords)),
		}
	case matchRatio < incorrectMaxRatio || matches == 0:
		return Evaluation{
			SuggestedResult: ResultIncorrect,
			Confidence:      incorrectConf,
			Rationale:       fmt.Sprintf("only %d of %d answer words appear in the passage", matches, len(transcriptWords)),
		}
	default:
		return Evaluation{
			SuggestedResult: ResultUnclear,
			Confidence:      unclearConf,
			Rationale:       "partial overlap with the passage; needs human review",
		}
	}
}

// keywords tokenizes text and keeps only words long enough to be
// meaningful for matching.
func keywords(text string) []string {
	var out []string
	for _, token := range align.Tokenize(text) {
		if len(token) > minKeywordLen {
			out = append(out, token)
		}
	}
	return out
}

func keywordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range keywords(text) {
		set[w] = true
	}
	return set
}
