package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/readydoer/marketplace-core/logger"
)

// RecoveryHandler runs goroutines with panic recovery.
type RecoveryHandler struct {
	log logrus.FieldLogger
}

// NewRecoveryHandler creates a handler backed by the given logger.
func NewRecoveryHandler(log logrus.FieldLogger) *RecoveryHandler {
	return &RecoveryHandler{log: log}
}

// SafeGo starts a goroutine that recovers and logs panics.
func (rh *RecoveryHandler) SafeGo(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				rh.log.Errorf("panic in goroutine: %v\nstack trace:\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// SafeGoWithContext starts a context-aware goroutine with panic recovery.
func (rh *RecoveryHandler) SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				rh.log.Errorf("panic in goroutine (with context): %v\nstack trace:\n%s", r, debug.Stack())
			}
		}()
		fn(ctx)
	}()
}

// SafeGo starts a panic-safe goroutine using the package logger.
func SafeGo(fn func()) {
	NewRecoveryHandler(logger.L()).SafeGo(fn)
}

// SafeGoWithContext starts a panic-safe context-aware goroutine using the package logger.
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	NewRecoveryHandler(logger.L()).SafeGoWithContext(ctx, fn)
}
