package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/user"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

const passwordHashCost = 12

// AuthService owns staff accounts: registration, credential checks and
// the password reset flow. Reset tokens are stored hashed; the raw
// token leaves the process exactly once, through the reset link.
type AuthService struct {
	client                   *ent.Client
	requireEmailVerification bool
	resetTokenTTL            time.Duration
}

// AuthConfig carries the toggles the auth flow depends on.
type AuthConfig struct {
	RequireEmailVerification bool
	ResetTokenTTL            time.Duration
}

func NewAuthService(client *ent.Client, cfg AuthConfig) *AuthService {
	ttl := cfg.ResetTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{
		client:                   client,
		requireEmailVerification: cfg.RequireEmailVerification,
		resetTokenTTL:            ttl,
	}
}

// RegisterInput is the candidate record for a new staff account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *RegisterInput) validate() error {
	var fe []apperrors.FieldError
	if in.Name == "" {
		fe = append(fe, apperrors.FieldError{Field: "name", Code: "required", Message: "name is required"})
	}
	in.Email = domain.NormalizeEmail(in.Email)
	if !domain.ValidEmail(in.Email) {
		fe = append(fe, apperrors.FieldError{Field: "email", Code: "invalid", Message: "email is invalid"})
	}
	if len(in.Password) < 8 {
		fe = append(fe, apperrors.FieldError{Field: "password", Code: "too_short", Message: "password must be at least 8 characters"})
	}
	if len(fe) > 0 {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "validation failed").WithFieldErrors(fe)
	}
	return nil
}

// Register creates a staff account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*ent.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	taken, err := s.client.User.Query().Where(user.EmailEQ(in.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking account email: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeEmailExists,
			"an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating user id: %w", err)
	}

	u, err := s.client.User.Create().
		SetID(id.String()).
		SetEmail(in.Email).
		SetName(in.Name).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeEmailExists,
				"an account with this email already exists")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	logger.L().Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

// Authenticate checks credentials and stamps last_login_at. A missing
// account and a wrong password return the same error so the endpoint
// cannot be used to probe registered emails.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*ent.User, error) {
	email = domain.NormalizeEmail(email)

	u, err := s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Burn a comparison anyway to keep timing flat.
			_ = bcrypt.CompareHashAndPassword(
				[]byte("$2a$12$C6UzMDM.H6dfI/f/IKcEeO5cTf8FJV6a0wY0cTmVvIKrCzMfjHVPu"), []byte(password))
			return nil, apperrors.ErrInvalidCredentials()
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		logger.L().Warn("login failed: invalid credentials")
		return nil, apperrors.ErrInvalidCredentials()
	}

	if !u.Enabled {
		return nil, apperrors.Unauthorized(apperrors.CodeAccountDisabled, "account is disabled")
	}
	if s.requireEmailVerification && !u.EmailVerified {
		return nil, apperrors.Forbidden(apperrors.CodeEmailNotVerified, "email is not verified")
	}

	now := time.Now().UTC()
	if err := s.client.User.UpdateOneID(u.ID).SetLastLoginAt(now).Exec(ctx); err != nil {
		logger.L().Warn("failed to update last_login_at", zap.Error(err), zap.String("user_id", u.ID))
	}

	return u, nil
}

// GetByID loads a staff account.
func (s *AuthService) GetByID(ctx context.Context, id string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.Unauthorized("UNAUTHORIZED", "account no longer exists")
		}
		return nil, fmt.Errorf("fetching user %s: %w", id, err)
	}
	return u, nil
}

// CreateResetToken issues a password reset token for the account,
// returning the raw token. Unknown emails return ok=false without an
// error; callers respond identically either way.
func (s *AuthService) CreateResetToken(ctx context.Context, email string) (string, bool, error) {
	email = domain.NormalizeEmail(email)

	u, err := s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("fetching user: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", false, fmt.Errorf("generating reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	expires := time.Now().UTC().Add(s.resetTokenTTL)
	if err := s.client.User.UpdateOneID(u.ID).
		SetResetTokenHash(hashToken(token)).
		SetResetTokenExpiresAt(expires).
		Exec(ctx); err != nil {
		return "", false, fmt.Errorf("storing reset token: %w", err)
	}

	logger.L().Info("password reset token issued",
		zap.String("user_id", u.ID),
		zap.Time("expires_at", expires))
	return token, true, nil
}

// ResetPassword consumes a reset token and sets the new password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "validation failed").
			WithFieldErrors([]apperrors.FieldError{
				{Field: "password", Code: "too_short", Message: "password must be at least 8 characters"},
			})
	}

	u, err := s.client.User.Query().
		Where(user.ResetTokenHashEQ(hashToken(token))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.BadRequest(apperrors.CodeInvalidResetToken, "reset token is invalid or expired")
		}
		return fmt.Errorf("fetching user by reset token: %w", err)
	}
	if u.ResetTokenExpiresAt == nil || time.Now().After(*u.ResetTokenExpiresAt) {
		return apperrors.BadRequest(apperrors.CodeInvalidResetToken, "reset token is invalid or expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), passwordHashCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.client.User.UpdateOneID(u.ID).
		SetPasswordHash(string(hash)).
		ClearResetTokenHash().
		ClearResetTokenExpiresAt().
		Exec(ctx); err != nil {
		return fmt.Errorf("resetting password: %w", err)
	}

	logger.L().Info("password reset completed", zap.String("user_id", u.ID))
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
