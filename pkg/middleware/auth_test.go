package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/funnel-sync-api/pkg/apiErrors"
)

func TestAuthMiddleware(t *testing.T) {
	authService, err := authenticating.NewService(config.Auth{Secret: "test-secret"})
	require.NoError(t, err)

	validToken, err := authService.GenerateToken(7, "user@example.com", time.Hour)
	require.NoError(t, err)
	expiredToken, err := authService.GenerateToken(7, "user@example.com", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		header   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder, userID int64, called bool)
	}{
		{
			name:   "deve liberar rotas públicas sem token",
			method: http.MethodGet,
			path:   "/healthcheck",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, userID int64, called bool) {
				assert.True(t, called)
				assert.Zero(t, userID)
			},
		},
		{
			name:   "deve liberar preflight",
			method: http.MethodOptions,
			path:   "/v1/meta/ad-accounts",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, userID int64, called bool) {
				assert.True(t, called)
			},
		},
		{
			name:   "deve gravar o usuário no contexto",
			method: http.MethodGet,
			path:   "/v1/meta/ad-accounts",
			header: "Bearer " + validToken,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, userID int64, called bool) {
				assert.True(t, called)
				assert.Equal(t, int64(7), userID)
			},
		},
		{
			name:   "deve rejeitar requisição sem cabeçalho",
			method: http.MethodGet,
			path:   "/v1/meta/ad-accounts",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, userID int64, called bool) {
				assert.False(t, called)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
			},
		},
		{
			name:   "deve rejeitar cabeçalho sem Bearer",
			method: http.MethodGet,
			path:   "/v1/meta/ad-accounts",
			header: validToken,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, userID int64, called bool) {
				assert.False(t, called)
				assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
			},
		},
		{
			name:   "deve diferenciar token expirado",
			method: http.MethodGet,
			path:   "/v1/meta/ad-accounts",
			header: "Bearer " + expiredToken,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, userID int64, called bool) {
				assert.False(t, called)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrExpiredToken, errorCode(t, rec))
			},
		},
		{
			name:   "deve rejeitar token inválido",
			method: http.MethodGet,
			path:   "/v1/meta/ad-accounts",
			header: "Bearer invalid.token.value",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, userID int64, called bool) {
				assert.False(t, called)
				assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				called bool
				userID int64
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				userID, _ = UserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authService)(next).ServeHTTP(rec, req)

			tt.validate(t, rec, userID, called)
		})
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr.Code
}
