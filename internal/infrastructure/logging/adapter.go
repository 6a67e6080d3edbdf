// Package logging adapts pkg/logger to the application's port.Logger.
package logging

import (
	"context"

	"github.com/hapkiduki/inventory-go/internal/application/port"
	"github.com/hapkiduki/inventory-go/pkg/logger"
)

var _ port.Logger = (*Adapter)(nil)

// Adapter adapts *logger.Logger to the port.Logger interface.
type Adapter struct {
	*logger.Logger
}

// NewAdapter wraps l so it can be injected into services and middleware.
func NewAdapter(l *logger.Logger) *Adapter {
	return &Adapter{l}
}

// Nop returns a port.Logger that discards everything.
func Nop() port.Logger {
	return NewAdapter(logger.NewNop())
}

// With implements port.Logger.
func (a *Adapter) With(keysAndValues ...any) port.Logger {
	return &Adapter{a.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (a *Adapter) WithContext(ctx context.Context) port.Logger {
	return &Adapter{a.Logger.WithContext(ctx)}
}
