package gaclient

import (
	"fmt"
	"net/http"
)

type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("google api error: status %d, %s: %s", e.StatusCode, e.Status, e.Message)
	}

	return fmt.Sprintf("google api error: status %d: %s", e.StatusCode, e.Body)
}

// IsTokenRejected indica token inválido, expirado ou refresh token revogado
func (e *APIError) IsTokenRejected() bool {
	return e.StatusCode == http.StatusUnauthorized ||
		e.Status == "UNAUTHENTICATED" ||
		e.Status == "invalid_grant"
}
