package controllers

import (
	"context"
	"net/http"

	"github.com/magieskin/storefront-backend/api/responses"
	"github.com/magieskin/storefront-backend/pkg/config"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
)

const envHeader = "X-MagieSkin-Env"

// Pinger is the readiness contract satisfied by the database and redis
// clients. Optional dependencies pass nil and are skipped.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check failed").
						WithDetails(map[string]string{"dependency": name}))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
