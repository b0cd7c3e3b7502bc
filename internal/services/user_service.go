package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jobpilot/jobpilot/internal/apperr"
	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/models"
)

// UserService is the credential store: registration, credential checks and
// public profile lookups. The password hash never leaves this package.
type UserService struct {
	DB   *gorm.DB
	Cost int
	Log  *zap.Logger
}

func NewUserService(db *gorm.DB, bcryptCost int, log *zap.Logger) *UserService {
	return &UserService{
		DB:   db,
		Cost: bcryptCost,
		Log:  log,
	}
}

// Register stores a new user with a salted password hash. A duplicate email
// fails with apperr.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if count > 0 {
		return nil, apperr.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.Cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Skills:       pq.StringArray(req.Skills),
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.Log.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// VerifyCredentials returns the user for a matching email/password pair.
// Unknown email and wrong password fail identically, so callers cannot
// probe which emails are registered.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return &user, nil
}

// GetPublicProfile returns id, name, email and skills for the given user.
func (s *UserService) GetPublicProfile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}
	return &user, nil
}
