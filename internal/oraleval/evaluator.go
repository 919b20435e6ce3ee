package oraleval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/llm"
)

// EvaluatorConfig holds generation settings for the qualitative evaluator.
type EvaluatorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEvaluatorConfig returns sensible defaults.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// Evaluator judges oral answers. When a provider is available it asks the
// model; on any provider failure — or with no provider at all — it degrades
// to the deterministic keyword heuristic.
type Evaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewEvaluator creates an Evaluator. provider may be nil, in which case
// every call uses the fallback heuristic.
func NewEvaluator(provider llm.Provider, cfg EvaluatorConfig) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// Evaluate returns the verdict for one oral answer. The second return
// value reports whether the qualitative model produced it (false means the
// fallback heuristic did).
func (e *Evaluator) Evaluate(ctx context.Context, in Input) (Evaluation, bool) {
	if e.provider == nil {
		return EvaluateFallback(in), false
	}

	verdict, err := e.evaluateLLM(ctx, in)
	if err != nil {
		return EvaluateFallback(in), false
	}
	return verdict, true
}

// rawEvaluation is the model's JSON output.
type rawEvaluation struct {
	SuggestedResult string `json:"suggested_result"`
	Confidence      int    `json:"confidence"`
	Rationale       string `json:"rationale"`
}

func (e *Evaluator) evaluateLLM(ctx context.Context, in Input) (Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "oral-evaluation")

	userMsg, err := buildEvaluationMessage(in)
	if err != nil {
		return Evaluation{}, fmt.Errorf("build evaluation prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: evaluationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return Evaluation{}, fmt.Errorf("evaluation request failed: %w", err)
	}

	var raw rawEvaluation
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Evaluation{}, fmt.Errorf("parse evaluation response: %w", err)
	}

	return Evaluation{
		SuggestedResult: raw.SuggestedResult,
		Confidence:      raw.Confidence,
		Rationale:       raw.Rationale,
	}, nil
}

const evaluationSystemPrompt = `You are an expert reading-comprehension grader. A student answered a question about a passage out loud; you receive the passage, the question, and a transcript of the spoken answer.

Instructions:
- Judge only whether the answer responds correctly to the question, using the passage as the source of truth.
- Ignore filler words, false starts, and transcription artifacts.
- Return "unclear" when the transcript is too garbled or too short to judge.
- Keep the rationale to one sentence.`

var evaluationUserTemplate = template.Must(template.New("evaluation").Parse(`Question type: {{.Kind}}
Question: {{.QuestionText}}

Passage:
{{.PassageText}}

Student's spoken answer (transcript):
{{.Transcript}}`))

func buildEvaluationMessage(in Input) (string, error) {
	var buf bytes.Buffer
	if err := evaluationUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
