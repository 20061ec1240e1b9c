package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

func TestService_ValidateToken(t *testing.T) {
	service, err := NewService(config.Auth{Secret: "segredo"})
	require.NoError(t, err)

	other, err := NewService(config.Auth{Secret: "outro"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		validate func(t *testing.T, claims *domain.Claims, err error)
	}{
		{
			name: "Token válido",
			token: func(t *testing.T) string {
				token, err := service.GenerateToken(7, "ana@loja.com", time.Hour)
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(7), claims.UserID)
				assert.Equal(t, "ana@loja.com", claims.UserEmail)
			},
		},
		{
			name: "Token expirado",
			token: func(t *testing.T) string {
				token, err := service.GenerateToken(7, "", -time.Minute)
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.Nil(t, claims)
				assert.ErrorIs(t, err, ErrExpiredToken)
			},
		},
		{
			name: "Assinado com outro segredo",
			token: func(t *testing.T) string {
				token, err := other.GenerateToken(7, "", time.Hour)
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name: "Sem usuário",
			token: func(t *testing.T) string {
				token, err := service.GenerateToken(0, "", time.Hour)
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrMissingSubject)
			},
		},
		{
			name: "Algoritmo none",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{UserID: 7})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))
			tt.validate(t, claims, err)
		})
	}
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(config.Auth{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}
