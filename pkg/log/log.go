package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CorrelationHeader é lido na entrada e devolvido na resposta
const CorrelationHeader = "X-Correlation-ID"

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	userIDKey        contextKey = "user_id"
)

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// WithCorrelationID grava o id recebido no contexto ou gera um novo quando vazio
func WithCorrelationID(ctx context.Context, correlationID string) (context.Context, string) {
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithUserID grava o usuário autenticado para que os logs dos casos de uso o incluam
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ForContext devolve uma entry do logrus com correlation_id e user_id do contexto
func ForContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if ctx != nil {
		if correlationID := GetCorrelationID(ctx); correlationID != "" {
			fields["correlation_id"] = correlationID
		}
		if userID, ok := ctx.Value(userIDKey).(int64); ok {
			fields["user_id"] = userID
		}
	}

	return logrus.WithFields(fields)
}
