package credentialing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

// Erros do ciclo de vida da credencial
var (
	ErrNotAuthenticated      = errors.New("user has no credential for this platform")
	ErrTokenExpiredNoRefresh = errors.New("credential expired and has no refresh token")
	ErrRefreshFailed         = errors.New("platform rejected the token refresh")
	ErrCodeExchangeFailed    = errors.New("platform rejected the authorization code")

	// Erros de validação
	ErrAuthorizationCodeRequired = errors.New("authorization code is required")
	ErrAuthURLNotSupported       = errors.New("platform does not provide an authorization URL")
)

// CredentialError carrega o usuário e a plataforma envolvidos
type CredentialError struct {
	Err      error           // Erro base
	Code     string          // Código de erro para API
	UserID   int64           // Usuário dono da credencial
	Platform domain.Platform // Plataforma da credencial
	Details  string          // Detalhes adicionais
}

func (e *CredentialError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (user %d, %s): %s", e.Err.Error(), e.UserID, e.Platform, e.Details)
	}
	return fmt.Sprintf("%s (user %d, %s)", e.Err.Error(), e.UserID, e.Platform)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

func NewCredentialError(err error, code string, userID int64, platform domain.Platform, details string) *CredentialError {
	return &CredentialError{
		Err:      err,
		Code:     code,
		UserID:   userID,
		Platform: platform,
		Details:  details,
	}
}
