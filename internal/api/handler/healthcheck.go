package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/pkg/apiErrors"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito por postgres.Connection
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("api: healthcheck database ping failed")
				apiErrors.WriteError(w, apiErrors.ErrDependencyDown, "Banco de dados indisponível", nil)
				return
			}
		}

		writeJSON(w, http.StatusOK, HealthcheckResponse{Status: "ok", Time: time.Now().UTC()})
	})
}
