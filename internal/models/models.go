package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Job application lifecycle states. The database default mirrors what the
// dashboard pre-selects for a fresh record.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
)

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Skills       pq.StringArray `gorm:"type:text[]" json:"skills"`
}

type JobApplication struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Owning user. Every query in JobService filters on this.
	UserID uint `gorm:"index;not null" json:"user_id"`

	Company     string    `gorm:"not null" json:"company"`
	Role        string    `gorm:"not null" json:"role"`
	Status      string    `gorm:"default:'Applied'" json:"status"`
	AppliedDate time.Time `json:"applied_date"`
	Notes       string    `gorm:"type:text" json:"notes"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Analyses -> ...
	Analyses []AIAnalysis `gorm:"foreignKey:JobID" json:"analyses,omitempty"`
}

// AIAnalysis is one resume-vs-description scoring result. Repeated analysis
// requests accumulate rows; there is no uniqueness per job.
type AIAnalysis struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID         uint           `gorm:"index;not null" json:"job_id"`
	MatchScore    float64        `json:"match_score"`
	MissingSkills pq.StringArray `gorm:"type:text[]" json:"missing_skills"`
	Suggestions   pq.StringArray `gorm:"type:text[]" json:"suggestions"`
}
