package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/infrastructure/repository"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/funnel-sync-api/pkg/apiErrors"
	"github.com/vfg2006/funnel-sync-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var platformNames = map[domain.Platform]string{
	domain.PlatformMeta:            "Meta",
	domain.PlatformGoogleAnalytics: "Google Analytics",
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("api: error encoding response")
	}
}

// userID devolve o usuário autenticado ou responde 401
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}

	return id, true
}

// writeServiceError traduz os erros dos casos de uso para o formato da API.
// Falhas remotas viram uma mensagem genérica por plataforma.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		credErr *credentialing.CredentialError
		syncErr *syncing.SyncError
	)

	switch {
	case errors.As(err, &syncErr):
		apiErrors.WriteError(w, syncErr.Code, "Erro ao buscar dados no "+platformNames[syncErr.Platform], map[string]string{
			"resource": syncErr.Resource,
		})

	case errors.As(err, &credErr):
		switch {
		case errors.Is(credErr.Err, credentialing.ErrNotAuthenticated):
			apiErrors.WriteError(w, credErr.Code, platformNames[credErr.Platform]+" não conectado", nil)
		case errors.Is(credErr.Err, credentialing.ErrTokenExpiredNoRefresh), errors.Is(credErr.Err, credentialing.ErrRefreshFailed):
			apiErrors.WriteError(w, credErr.Code, "Conexão com "+platformNames[credErr.Platform]+" expirada, conecte novamente", nil)
		case errors.Is(credErr.Err, credentialing.ErrCodeExchangeFailed):
			apiErrors.WriteError(w, credErr.Code, "Não foi possível concluir a conexão com "+platformNames[credErr.Platform], nil)
		case errors.Is(credErr.Err, repository.ErrPersistence):
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar a credencial", nil)
		default:
			apiErrors.WriteError(w, credErr.Code, credErr.Err.Error(), nil)
		}

	case errors.Is(err, domain.ErrInvalidDateRange), errors.Is(err, domain.ErrUnknownPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, repository.ErrPersistence):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de banco de dados", nil)

	default:
		logrus.WithError(err).Error("api: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}

// resourceName garante o prefixo usado pela API do Google (accounts/123, properties/456)
func resourceName(prefix, id string) string {
	if strings.HasPrefix(id, prefix+"/") {
		return id
	}
	return prefix + "/" + id
}
