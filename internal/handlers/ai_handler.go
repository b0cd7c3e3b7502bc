package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobpilot/jobpilot/internal/auth"
	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/services"
)

type AIHandler struct {
	LLMService *services.LLMService
	JobService *services.JobService
	Log        *zap.Logger
}

func NewAIHandler(llm *services.LLMService, jobs *services.JobService, log *zap.Logger) *AIHandler {
	return &AIHandler{
		LLMService: llm,
		JobService: jobs,
		Log:        log,
	}
}

// AnalyzeResume is the POST /api/ai/analyze-resume/:jobId endpoint.
func (h *AIHandler) AnalyzeResume(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	var req dtos.AnalyzeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume and job description are required"})
		return
	}

	// The analysis must hang off a job the caller actually owns.
	if _, err := h.JobService.Get(c.Request.Context(), auth.UserID(c), uint(jobID)); err != nil {
		respondError(c, h.Log, err)
		return
	}

	analysis, err := h.LLMService.AnalyzeResume(c.Request.Context(), uint(jobID), req.Resume, req.JobDescription)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GenerateQuestions is the POST /api/ai/generate-questions endpoint.
func (h *AIHandler) GenerateQuestions(c *gin.Context) {
	var req dtos.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job role is required"})
		return
	}

	questions, err := h.LLMService.GenerateInterviewQuestions(c.Request.Context(), req.JobRole)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}
