package syncing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/funnel-sync-api/internal/domain"
)

var (
	ErrRemoteFetchFailed = errors.New("failed to fetch data from platform")
	ErrInvalidDateRange  = domain.ErrInvalidDateRange
)

// SyncError identifica o recurso e a plataforma de uma leitura que falhou
type SyncError struct {
	Err      error           // Erro base
	Code     string          // Código de erro para API
	Platform domain.Platform // Plataforma consultada
	Resource string          // Recurso lido (ad_accounts, campaigns, ...)
	Details  string          // Detalhes adicionais
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s %s): %s", e.Err.Error(), e.Platform, e.Resource, e.Details)
	}
	return fmt.Sprintf("%s (%s %s)", e.Err.Error(), e.Platform, e.Resource)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, platform domain.Platform, resource string, details string) *SyncError {
	return &SyncError{
		Err:      err,
		Code:     code,
		Platform: platform,
		Resource: resource,
		Details:  details,
	}
}
