package controllers

import (
	"net/http"

	"github.com/lumora-labs/storefront-backend/api/responses"
	"github.com/lumora-labs/storefront-backend/pkg/config"
	"github.com/lumora-labs/storefront-backend/pkg/db"
	pkgerrors "github.com/lumora-labs/storefront-backend/pkg/errors"
	"github.com/lumora-labs/storefront-backend/pkg/logger"
	"github.com/lumora-labs/storefront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Lumora-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when both backing stores answer a ping.
func HealthReady(cfg *config.Config, dbClient db.Pinger, redisClient redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Lumora-Env", cfg.App.Env)

		if dbClient != nil {
			if err := dbClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
