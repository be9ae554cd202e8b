package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/internal/api/middleware"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Register handles POST /auth/register.
func (s *Server) Register(c *gin.Context) {
	var req service.RegisterInput
	if !bindJSON(c, &req) {
		return
	}

	u, err := s.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userToAPI(u))
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := s.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, u.ID, u.Email, u.Name)
	if err != nil {
		respondError(c, fmt.Errorf("generate token: %w", err))
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userToAPI(u),
	})
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		respondError(c, apperrors.Unauthorized("UNAUTHORIZED", "not authenticated"))
		return
	}

	u, err := s.auth.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToAPI(u))
}

// ForgotPassword handles POST /auth/forgot-password. The response is
// identical whether or not the email is registered. There is no mail
// delivery; the reset link lands in the server log for the operator to
// pass along.
func (s *Server) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	token, ok, err := s.auth.CreateResetToken(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if ok {
		logger.Info("password reset link",
			zap.String("link", fmt.Sprintf("/reset-password?token=%s", token)))
	}

	c.Status(http.StatusNoContent)
}

// ResetPassword handles POST /auth/reset-password.
func (s *Server) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := s.auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
