package modules

import (
	"github.com/dediamond1/mechanic/internal/api/handlers"
	"github.com/dediamond1/mechanic/internal/api/middleware"
	"github.com/dediamond1/mechanic/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Security.JWTSecret),
			Issuer:     "mechanic",
			ExpiresIn:  cfg.Security.TokenLifetime,
		},
		RiverClient: infra.RiverClient,
		Pools:       infra.Pools,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
