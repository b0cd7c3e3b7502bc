package dtos

import (
	"github.com/go-playground/validator/v10"

	"github.com/jobpilot/jobpilot/internal/models"
)

type RegisterRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Skills   []string `json:"skills"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login: the user's public fields
// plus a fresh token.
type AuthResponse struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
	Token  string   `json:"token"`
}

type JobRequest struct {
	Company string `json:"company" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Status  string `json:"status" binding:"required,jobstatus"`
	// Accepted as "2006-01-02" or RFC 3339.
	AppliedDate string `json:"applied_date" binding:"required"`
	Notes       string `json:"notes"`
}

type AnalyzeResumeRequest struct {
	Resume         string `json:"resume" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"required"`
}

type GenerateQuestionsRequest struct {
	JobRole string `json:"jobRole" binding:"required"`
}

// JobStatus is the "jobstatus" binding rule, registered on gin's validator
// engine at startup.
var JobStatus validator.Func = func(fl validator.FieldLevel) bool {
	return models.ValidStatus(fl.Field().String())
}
