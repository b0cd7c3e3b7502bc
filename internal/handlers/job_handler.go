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

type JobHandler struct {
	JobService *services.JobService
	Log        *zap.Logger
}

func NewJobHandler(jobs *services.JobService, log *zap.Logger) *JobHandler {
	return &JobHandler{
		JobService: jobs,
		Log:        log,
	}
}

// List is the GET /api/jobs endpoint.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.JobService.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Create is the POST /api/jobs endpoint.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update is the PUT /api/jobs/:id endpoint.
func (h *JobHandler) Update(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.JobService.Update(c.Request.Context(), auth.UserID(c), jobID, &req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is the DELETE /api/jobs/:id endpoint.
func (h *JobHandler) Delete(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.JobService.Delete(c.Request.Context(), auth.UserID(c), jobID); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the numeric :id path parameter, responding 400 itself when
// the value is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
