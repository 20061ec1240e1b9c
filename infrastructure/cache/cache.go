package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

// Store é o cache volátil usado pelo sync-on-read. Entradas são descartáveis
// e sempre serializadas como JSON pelo chamador.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
