package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/funnel-sync-api/pkg/apiErrors"
)

type ConnectRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type AuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

func platformParam(w http.ResponseWriter, r *http.Request) (domain.Platform, bool) {
	platform, err := domain.ParsePlatform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma inválida", nil)
		return "", false
	}

	return platform, true
}

// ConnectPlatform conclui o OAuth: troca o código e grava a credencial
func ConnectPlatform(service credentialing.CredentialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		var request ConnectRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.Code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de autorização obrigatório", nil)
			return
		}

		status, err := service.Connect(r.Context(), user, platform, request.Code, request.RedirectURI)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id":  user,
			"platform": platform,
		}).Info("api: platform connected")

		writeJSON(w, http.StatusOK, status)
	}
}

func PlatformStatus(service credentialing.CredentialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userID(w, r)
		if !ok {
			return
		}

		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		status, err := service.Status(r.Context(), user, platform)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func GoogleAuthURL(service credentialing.CredentialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userID(w, r); !ok {
			return
		}

		authURL, state, err := service.AuthURL(domain.PlatformGoogleAnalytics)
		if err != nil {
			if errors.Is(err, credentialing.ErrAuthURLNotSupported) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthURLResponse{URL: authURL, State: state})
	}
}
