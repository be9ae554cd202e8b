package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dediamond1/mechanic/internal/api/middleware"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
	"github.com/dediamond1/mechanic/internal/service"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func TestForgotPassword_AlwaysNoContent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handler_forgot")
	auth := service.NewAuthService(client, service.AuthConfig{ResetTokenTTL: time.Hour})
	srv := NewServer(ServerDeps{EntClient: client, Auth: auth})

	_, err := auth.Register(context.Background(), service.RegisterInput{
		Name:     "Known User",
		Email:    "known@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/auth/forgot-password", srv.ForgotPassword)

	// The response must not reveal whether the email is registered.
	for _, email := range []string{"known@example.com", "nobody@example.com"} {
		req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password",
			strings.NewReader(`{"email":"`+email+`"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code, "email %s", email)
		require.Empty(t, rec.Body.String(), "email %s", email)
	}
}
