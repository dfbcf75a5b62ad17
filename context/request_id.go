// Package context carries correlation IDs through a single CLI invocation
// so log lines from one build can be grouped.
package context

import (
	stdctx "context"

	"github.com/google/uuid"
)

type contextKey int

const (
	requestIDKey contextKey = iota
)

// NewRequestID generates a new unique request ID
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID adds a request ID to the context
func WithRequestID(parent stdctx.Context, requestID string) stdctx.Context {
	return stdctx.WithValue(parent, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context.
// A nil context or one without an ID yields "".
func RequestIDFromContext(ctx stdctx.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
