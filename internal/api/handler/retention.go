package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/internal/scheduler"
	"github.com/vfg2006/funnel-sync-api/pkg/apiErrors"
)

// RetentionRunner é a parte do agendador de retenção usada pela API
type RetentionRunner interface {
	RunOnce(ctx context.Context) (*scheduler.RetentionResult, error)
}

// RunRetention executa manualmente a limpeza de linhas antigas
func RunRetention(runner RetentionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		logrus.WithField("user_id", user).Info("api: manual retention run requested")

		result, err := runner.RunOnce(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, scheduler.ErrRetentionRunning):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Limpeza já em andamento", nil)
			case errors.Is(err, scheduler.ErrInvalidRetentionDays):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.WithError(err).Error("api: manual retention run failed")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao executar a limpeza", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
