package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	id := NewRequestID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewRequestID())

	ctx := WithRequestID(stdctx.Background(), id)
	assert.Equal(t, id, RequestIDFromContext(ctx))
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(stdctx.Background()))
	//nolint:staticcheck
	assert.Empty(t, RequestIDFromContext(nil))
}
