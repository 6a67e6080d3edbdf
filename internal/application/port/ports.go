// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define what the inventory services need from the outside world
// without naming a concrete implementation.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces.
package port

import (
	"context"
)

// Logger defines the interface for structured logging.
// The production adapter wraps pkg/logger (zap).
//
// Example usage:
//
//	log.Info("SKU added", "sku_id", sku.ID, "product_id", sku.ProductID)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a logger with additional context fields.
	With(keysAndValues ...any) Logger

	// WithContext returns a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}

// HealthChecker is implemented by stores that can report their availability.
type HealthChecker interface {
	// Ping returns an error if the backing store cannot serve requests.
	Ping(ctx context.Context) error
}
