package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID   contextKey = "request_id"
	ContextKeyProcessorID contextKey = "processor_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithProcessorID adds a processor ID to the context
func WithProcessorID(ctx context.Context, processorID string) context.Context {
	return context.WithValue(ctx, ContextKeyProcessorID, processorID)
}

// ProcessorIDFromContext extracts the processor ID from context
func ProcessorIDFromContext(ctx context.Context) string {
	if processorID, ok := ctx.Value(ContextKeyProcessorID).(string); ok {
		return processorID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
