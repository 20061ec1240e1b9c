package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é o conteúdo do bearer token emitido pelo serviço de identidade
type Claims struct {
	UserID    int64  `json:"user_id"`
	UserEmail string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
