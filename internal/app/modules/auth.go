package modules

import (
	"context"

	"github.com/riverqueue/river"

	"github.com/dediamond1/mechanic/internal/api/handlers"
	"github.com/dediamond1/mechanic/internal/service"
)

// AuthModule wires account registration, login, and password reset.
type AuthModule struct {
	auth *service.AuthService
}

func NewAuthModule(infra *Infrastructure) *AuthModule {
	cfg := infra.Config.Security
	return &AuthModule{
		auth: service.NewAuthService(infra.EntClient, service.AuthConfig{
			RequireEmailVerification: cfg.RequireEmailVerification,
			ResetTokenTTL:            cfg.ResetTokenTTL,
		}),
	}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Auth = m.auth
}

func (m *AuthModule) RegisterWorkers(_ *river.Workers) {}

func (m *AuthModule) Shutdown(context.Context) error { return nil }
