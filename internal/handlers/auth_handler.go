package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobpilot/jobpilot/internal/auth"
	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/models"
	"github.com/jobpilot/jobpilot/internal/services"
)

type AuthHandler struct {
	UserService *services.UserService
	Issuer      *auth.Issuer
	Log         *zap.Logger
}

func NewAuthHandler(users *services.UserService, issuer *auth.Issuer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		UserService: users,
		Issuer:      issuer,
		Log:         log,
	}
}

// Register is the POST /api/auth/register endpoint.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	token, err := h.Issuer.Issue(user.ID)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse(user, token))
}

// Login is the POST /api/auth/login endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.UserService.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	token, err := h.Issuer.Issue(user.ID)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, authResponse(user, token))
}

// Me is the GET /api/auth/me endpoint.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.UserService.GetPublicProfile(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"skills": user.Skills,
	})
}

func authResponse(user *models.User, token string) dtos.AuthResponse {
	return dtos.AuthResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Skills: []string(user.Skills),
		Token:  token,
	}
}
