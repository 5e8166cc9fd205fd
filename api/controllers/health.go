package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/sunlinkenergy/sunlink-backend/api/responses"
	"github.com/sunlinkenergy/sunlink-backend/pkg/config"
	pkgerrors "github.com/sunlinkenergy/sunlink-backend/pkg/errors"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
	"github.com/sunlinkenergy/sunlink-backend/pkg/storage/local"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SunLink-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, storage local.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SunLink-Env", cfg.App.Env)

		if storage != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := storage.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "snapshot storage unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
