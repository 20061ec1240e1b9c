package domain

import "time"

// CredentialState representa o ciclo de vida de uma credencial
type CredentialState string

const (
	CredentialAbsent          CredentialState = "absent"
	CredentialActive          CredentialState = "active"
	CredentialExpired         CredentialState = "expired"
	CredentialExpiredTerminal CredentialState = "expired_terminal"
)

// Credential é a linha persistida em platform_credentials, uma por (usuário, plataforma)
type Credential struct {
	UserID       int64     `json:"user_id"`
	Platform     Platform  `json:"platform"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenSet é o resultado de uma troca de código ou renovação
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (c *Credential) HasRefreshToken() bool {
	return c.RefreshToken != ""
}

// IsExpired compara apenas o relógio; não existe timer em segundo plano
func (c *Credential) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// SecondsToExpiry retorna os segundos inteiros restantes, nunca negativo
func (c *Credential) SecondsToExpiry(now time.Time) int64 {
	remaining := int64(c.ExpiresAt.Sub(now) / time.Second)
	if remaining < 0 {
		return 0
	}

	return remaining
}

func (c *Credential) State(now time.Time) CredentialState {
	if c == nil || c.AccessToken == "" {
		return CredentialAbsent
	}

	if !c.IsExpired(now) {
		return CredentialActive
	}

	if c.HasRefreshToken() {
		return CredentialExpired
	}

	return CredentialExpiredTerminal
}

// CredentialStatus é a visão exposta ao handler, sem o token
type CredentialStatus struct {
	Platform  Platform        `json:"platform"`
	State     CredentialState `json:"state"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}
