package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jobpilot/jobpilot/internal/apperr"
	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/models"
)

// JobService is the job repository. Every operation is scoped to the owning
// user: a job that exists but belongs to someone else behaves exactly like
// a job that does not exist.
type JobService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewJobService(db *gorm.DB, log *zap.Logger) *JobService {
	return &JobService{
		DB:  db,
		Log: log,
	}
}

// List returns all job applications owned by userID, in insertion order.
func (s *JobService) List(ctx context.Context, userID uint) ([]models.JobApplication, error) {
	jobs := []models.JobApplication{}
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Get returns a single job owned by userID.
func (s *JobService) Get(ctx context.Context, userID, jobID uint) (*models.JobApplication, error) {
	var job models.JobApplication
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", jobID, userID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &job, nil
}

// Create persists a new job application owned by userID.
func (s *JobService) Create(ctx context.Context, userID uint, req *dtos.JobRequest) (*models.JobApplication, error) {
	appliedDate, err := validateJobRequest(req)
	if err != nil {
		return nil, err
	}

	job := &models.JobApplication{
		UserID:      userID,
		Company:     req.Company,
		Role:        req.Role,
		Status:      req.Status,
		AppliedDate: appliedDate,
		Notes:       req.Notes,
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.Log.Info("job created", zap.Uint("user_id", userID), zap.Uint("job_id", job.ID))
	return job, nil
}

// Update overwrites the mutable fields of a job owned by userID.
func (s *JobService) Update(ctx context.Context, userID, jobID uint, req *dtos.JobRequest) (*models.JobApplication, error) {
	appliedDate, err := validateJobRequest(req)
	if err != nil {
		return nil, err
	}

	job, err := s.Get(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	job.Company = req.Company
	job.Role = req.Role
	job.Status = req.Status
	job.AppliedDate = appliedDate
	job.Notes = req.Notes

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// Delete removes a job owned by userID.
func (s *JobService) Delete(ctx context.Context, userID, jobID uint) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", jobID, userID).
		Delete(&models.JobApplication{})
	if res.Error != nil {
		return fmt.Errorf("delete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}

	s.Log.Info("job deleted", zap.Uint("user_id", userID), zap.Uint("job_id", jobID))
	return nil
}

// validateJobRequest re-checks the required fields (binding already enforces
// them at the HTTP edge) and parses the applied date.
func validateJobRequest(req *dtos.JobRequest) (time.Time, error) {
	if req.Company == "" || req.Role == "" || req.Status == "" {
		return time.Time{}, fmt.Errorf("%w: company, role, and status are required", apperr.ErrValidation)
	}
	if !models.ValidStatus(req.Status) {
		return time.Time{}, fmt.Errorf("%w: status must be one of Applied, Interview, Offer, Rejected", apperr.ErrValidation)
	}

	appliedDate, err := time.Parse("2006-01-02", req.AppliedDate)
	if err != nil {
		appliedDate, err = time.Parse(time.RFC3339, req.AppliedDate)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: applied_date must be YYYY-MM-DD", apperr.ErrValidation)
	}
	return appliedDate, nil
}
