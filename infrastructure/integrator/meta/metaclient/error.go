package metaclient

import (
	"fmt"
	"strings"

	metadomain "github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/domain"
)

type APIError struct {
	StatusCode int
	Body       string
	Response   *metadomain.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response != nil && e.Response.Error.Message != "" {
		return fmt.Sprintf("meta api error: status %d, code %d: %s",
			e.StatusCode, e.Response.Error.Code, e.Response.Error.Message)
	}

	return fmt.Sprintf("meta api error: status %d: %s", e.StatusCode, e.Body)
}

// IsTokenRejected indica que o token enviado expirou ou foi invalidado
func (e *APIError) IsTokenRejected() bool {
	if e.Response != nil && e.Response.IsTokenExpired() {
		return true
	}

	return containsTokenExpirationMessage(e.Body)
}

func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
