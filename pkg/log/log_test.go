package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("deve manter o id recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "abc-123")

		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", GetCorrelationID(ctx))
	})

	t.Run("deve gerar um id quando vazio", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		assert.Len(t, id, 36)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})
}

func TestForContext(t *testing.T) {
	ctx, _ := WithCorrelationID(context.Background(), "abc-123")
	ctx = WithUserID(ctx, 7)

	entry := ForContext(ctx)

	assert.Equal(t, "abc-123", entry.Data["correlation_id"])
	assert.Equal(t, int64(7), entry.Data["user_id"])
	assert.Empty(t, ForContext(context.Background()).Data)
}
