package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jobpilot/jobpilot/internal/apperr"
	"github.com/jobpilot/jobpilot/internal/models"
)

const resumeAnalysisPrompt = `
You are an expert ATS (Applicant Tracking System) evaluator. Your task is to analyze the provided resume against the job description.

### INSTRUCTIONS:
1. **Compare** the resume with the job description.
2. **Score** the match from 0 to 1, where 1 is a perfect fit.
3. **Identify** skills the job requires that the resume does not show.
4. **Suggest** concrete improvements to the resume.
5. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "match_score": 0.0,
    "missing_skills": ["Array", "of", "missing", "skills"],
    "suggestions": ["Array", "of", "improvement", "suggestions"]
}

### CONSTRAINT:
Base all reasoning only on the provided text. Do not invent experience the resume does not mention.

### RESUME:
%s

### JOB DESCRIPTION:
%s
`

const interviewQuestionsPrompt = `
You are an experienced technical interviewer. Generate exactly 10 interview questions for a %s position.

### INSTRUCTIONS:
1. Mix technical and behavioral questions appropriate for the role.
2. **Format** the output as a valid JSON array of exactly 10 strings. Do not wrap the output in markdown code blocks.
3. Output nothing before or after the JSON array.
`

// LLMService is the AI annotation gateway. It wraps prompts to a hosted
// generative model, parses the structured JSON replies, and persists resume
// analyses. Each call is a single best-effort attempt: no retry, no caching.
type LLMService struct {
	Client  llms.Model
	DB      *gorm.DB
	Timeout time.Duration
	Log     *zap.Logger
}

// NewLLMService wires an already-constructed model client. Tests substitute
// a fake llms.Model here.
func NewLLMService(client llms.Model, db *gorm.DB, timeout time.Duration, log *zap.Logger) *LLMService {
	return &LLMService{
		Client:  client,
		DB:      db,
		Timeout: timeout,
		Log:     log,
	}
}

// NewGoogleAIClient builds the Gemini-backed model used in production.
func NewGoogleAIClient(ctx context.Context, apiKey, model string) (llms.Model, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}
	return llm, nil
}

// AnalyzeResume scores resume against jobDescription and persists the result
// as an AIAnalysis tied to jobID. Empty inputs fail before any network call.
func (s *LLMService) AnalyzeResume(ctx context.Context, jobID uint, resume, jobDescription string) (*models.AIAnalysis, error) {
	if resume == "" || jobDescription == "" {
		return nil, fmt.Errorf("%w: resume and job description are required", apperr.ErrValidation)
	}

	prompt := fmt.Sprintf(resumeAnalysisPrompt, resume, jobDescription)
	reply, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		MatchScore    float64  `json:"match_score"`
		MissingSkills []string `json:"missing_skills"`
		Suggestions   []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &parsed); err != nil {
		s.Log.Warn("model reply did not parse as JSON", zap.Error(err), zap.String("reply", reply))
		return nil, fmt.Errorf("%w: unparseable model reply", apperr.ErrUpstream)
	}
	if parsed.MatchScore < 0 || parsed.MatchScore > 1 {
		return nil, fmt.Errorf("%w: match score %v out of range", apperr.ErrUpstream, parsed.MatchScore)
	}

	analysis := &models.AIAnalysis{
		JobID:         jobID,
		MatchScore:    parsed.MatchScore,
		MissingSkills: pq.StringArray(parsed.MissingSkills),
		Suggestions:   pq.StringArray(parsed.Suggestions),
	}
	if err := s.DB.WithContext(ctx).Create(analysis).Error; err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}

	s.Log.Info("resume analyzed",
		zap.Uint("job_id", jobID),
		zap.Float64("match_score", analysis.MatchScore))
	return analysis, nil
}

// GenerateInterviewQuestions returns exactly ten questions for jobRole.
// The result is not persisted.
func (s *LLMService) GenerateInterviewQuestions(ctx context.Context, jobRole string) ([]string, error) {
	if jobRole == "" {
		return nil, fmt.Errorf("%w: job role is required", apperr.ErrValidation)
	}

	prompt := fmt.Sprintf(interviewQuestionsPrompt, jobRole)
	reply, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var questions []string
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &questions); err != nil {
		s.Log.Warn("model reply did not parse as JSON", zap.Error(err), zap.String("reply", reply))
		return nil, fmt.Errorf("%w: unparseable model reply", apperr.ErrUpstream)
	}
	if len(questions) != 10 {
		return nil, fmt.Errorf("%w: expected 10 questions, got %d", apperr.ErrUpstream, len(questions))
	}

	return questions, nil
}

// generate performs one bounded model call.
func (s *LLMService) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	reply, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		s.Log.Error("model call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}
	return reply, nil
}

// stripCodeFences removes a surrounding markdown code block, which models
// emit despite being told not to.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
