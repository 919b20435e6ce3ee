package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/align"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/grading"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/oraleval"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/store"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/testdef"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/tier"
)

// responseInput is one answer on the wire. IsCorrect is a nullable bool:
// null means the answer is still awaiting manual review.
type responseInput struct {
	QuestionID string `json:"questionId" binding:"required"`
	AnswerText string `json:"answerText"`
	IsCorrect  *bool  `json:"isCorrect"`
}

// gradeRequest carries a test definition in any of the supported shapes
// plus the student's responses.
type gradeRequest struct {
	AttemptID  string          `json:"attemptId"`
	Subject    string          `json:"subject"`
	Definition json.RawMessage `json:"definition" binding:"required"`
	Responses  []responseInput `json:"responses"`
}

func (r gradeRequest) engineInputs() ([]testdef.Question, []grading.Response) {
	questions := testdef.Normalize(r.Definition)
	responses := make([]grading.Response, 0, len(r.Responses))
	for _, in := range r.Responses {
		responses = append(responses, grading.Response{
			QuestionID: in.QuestionID,
			AnswerText: in.AnswerText,
			Result:     grading.CorrectnessFromPtr(in.IsCorrect),
		})
	}
	return questions, responses
}

// handleGrade runs a non-final aggregation pass. Pending responses are
// allowed; the response reports how many remain so the client knows the
// result is provisional.
func (s *Server) handleGrade(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questions, responses := req.engineInputs()
	sum := grading.Aggregate(questions, responses)

	attempt := &store.Attempt{
		ID:         req.AttemptID,
		Subject:    req.Subject,
		Definition: req.Definition,
	}
	if req.AttemptID == "" {
		if err := s.store.SaveAttempt(c.Request.Context(), attempt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	body := gin.H{
		"attemptId":     attempt.ID,
		"score":         grading.Score(sum.CorrectCount, sum.TotalGradable),
		"correctCount":  sum.CorrectCount,
		"totalGradable": sum.TotalGradable,
		"pendingCount":  sum.PendingCount,
		"skillAnalysis": sum.Analysis,
	}
	if req.Subject == "ela" {
		body["sections"] = grading.AggregateELASections(questions, responses)
	}
	c.JSON(http.StatusOK, body)
}

// handleFinalize produces the authoritative result. It refuses with 409
// while any response is still pending review.
func (s *Server) handleFinalize(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questions, responses := req.engineInputs()
	result, err := grading.Finalize(questions, responses)
	if err != nil {
		var notReady *grading.NotReadyError
		if errors.As(err, &notReady) {
			c.JSON(http.StatusConflict, gin.H{
				"error":        notReady.Error(),
				"pendingCount": notReady.PendingCount,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	attemptID := req.AttemptID
	if attemptID == "" {
		attempt := &store.Attempt{Subject: req.Subject, Definition: req.Definition}
		if err := s.store.SaveAttempt(c.Request.Context(), attempt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		attemptID = attempt.ID
	}

	analysis, err := json.Marshal(result.SkillAnalysis)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	record := &store.GradingRecord{
		AttemptID:     attemptID,
		Score:         result.Score,
		Tier:          result.Tier,
		CorrectCount:  result.CorrectCount,
		TotalGradable: result.TotalGradable,
		Analysis:      analysis,
	}
	if err := s.store.SaveGrading(c.Request.Context(), record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attemptId": attemptID,
		"result":    result,
	})
}

// alignRequest compares a reference passage with a reading transcript.
// ComprehensionPct, when present, folds comprehension into the oral tier.
type alignRequest struct {
	Passage          string   `json:"passage" binding:"required"`
	Transcript       string   `json:"transcript"`
	ComprehensionPct *float64 `json:"comprehensionPct"`
}

func (s *Server) handleAlign(c *gin.Context) {
	var req alignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := align.Align(req.Passage, req.Transcript)
	oralTier := tier.ForOralReading(result.SuggestedErrorCount, req.ComprehensionPct)

	resultJSON, err := json.Marshal(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	run := &store.AlignmentRun{
		Passage:    req.Passage,
		Transcript: req.Transcript,
		Result:     resultJSON,
		ErrorCount: result.SuggestedErrorCount,
	}
	if err := s.store.SaveAlignmentRun(c.Request.Context(), run); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"runId":     run.ID,
		"alignment": result,
		"tier":      oralTier.Label(),
	})
}

// evaluateRequest asks for a verdict on one open-ended oral answer.
type evaluateRequest struct {
	Kind         string `json:"kind" binding:"required"`
	QuestionText string `json:"questionText" binding:"required"`
	PassageText  string `json:"passageText"`
	Transcript   string `json:"transcript"`
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict, fromLLM := s.evaluator.Evaluate(c.Request.Context(), oraleval.Input{
		Kind:         oraleval.QuestionKind(req.Kind),
		QuestionText: req.QuestionText,
		PassageText:  req.PassageText,
		Transcript:   req.Transcript,
	})

	c.JSON(http.StatusOK, gin.H{
		"evaluation": verdict,
		"source":     evaluationSource(fromLLM),
	})
}

func evaluationSource(fromLLM bool) string {
	if fromLLM {
		return "llm"
	}
	return "fallback"
}

func (s *Server) handleGetAttempt(c *gin.Context) {
	id := c.Param("id")

	attempt, err := s.store.GetAttempt(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if attempt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
		return
	}

	body := gin.H{"attempt": attempt}
	record, err := s.store.GetGrading(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record != nil {
		body["grading"] = record
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.DB().PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
