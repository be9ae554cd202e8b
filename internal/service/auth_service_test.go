package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/testutil"
)

func newTestAuth(t *testing.T, prefix string) *AuthService {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	return NewAuthService(client, AuthConfig{ResetTokenTTL: time.Hour})
}

func TestAuthService_RegisterAndAuthenticate(t *testing.T) {
	svc := newTestAuth(t, "auth_register")
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", user.Email)

	got, err := svc.Authenticate(ctx, "JANE@example.com", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotNil(t, got.LastLoginAt, "login should stamp last_login_at")
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuth(t, "auth_dup")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "password-one"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "A@Example.com", Password: "password-two"})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeEmailExists, appErr.Code)
}

func TestAuthService_AuthenticateFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuth(t, "auth_fail")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "password-one"})
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "a@example.com", "wrong")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@example.com", "wrong")

	for _, err := range []error{wrongPassword, unknownEmail} {
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok, "expected AppError, got %v", err)
		require.Equal(t, apperrors.CodeInvalidEmailOrPassword, appErr.Code)
		require.Equal(t, 401, appErr.HTTPStatus)
	}
}

func TestAuthService_ShortPasswordRejected(t *testing.T) {
	svc := newTestAuth(t, "auth_short")

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "A",
		Email:    "a@example.com",
		Password: "short",
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestAuthService_PasswordResetRoundTrip(t *testing.T) {
	svc := newTestAuth(t, "auth_reset")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "old-password-1"})
	require.NoError(t, err)

	token, ok, err := svc.CreateResetToken(ctx, "a@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, token)

	require.NoError(t, svc.ResetPassword(ctx, token, "new-password-1"))

	_, err = svc.Authenticate(ctx, "a@example.com", "old-password-1")
	require.Error(t, err, "old password should no longer work")

	_, err = svc.Authenticate(ctx, "a@example.com", "new-password-1")
	require.NoError(t, err)

	// Token is single use.
	err = svc.ResetPassword(ctx, token, "another-password")
	appErr, isApp := apperrors.IsAppError(err)
	require.True(t, isApp, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeInvalidResetToken, appErr.Code)
}

func TestAuthService_ResetTokenUnknownEmail(t *testing.T) {
	svc := newTestAuth(t, "auth_reset_unknown")

	token, ok, err := svc.CreateResetToken(context.Background(), "nobody@example.com")
	require.NoError(t, err, "unknown email must not surface an error")
	require.False(t, ok)
	require.Empty(t, token)
}

func TestAuthService_UnverifiedEmailForbidden(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "auth_unverified")
	svc := NewAuthService(client, AuthConfig{
		RequireEmailVerification: true,
		ResetTokenTTL:            time.Hour,
	})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name:     "Pending User",
		Email:    "pending@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "pending@example.com", "correct horse battery")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, apperrors.CodeEmailNotVerified, appErr.Code)
	require.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
}
