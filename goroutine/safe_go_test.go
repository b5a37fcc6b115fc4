package goroutine

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeGo_RecoversPanic(t *testing.T) {
	log, hook := test.NewNullLogger()
	rh := NewRecoveryHandler(log)

	rh.SafeGo(func() {
		panic("boom")
	})

	require.Eventually(t, func() bool {
		return hook.LastEntry() != nil
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, hook.LastEntry().Message, "panic in goroutine")
	assert.Contains(t, hook.LastEntry().Message, "boom")
}

func TestSafeGoWithContext_RecoversAndPassesContext(t *testing.T) {
	log, hook := test.NewNullLogger()
	rh := NewRecoveryHandler(log)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "payload")

	got := make(chan any, 1)
	rh.SafeGoWithContext(ctx, func(ctx context.Context) {
		got <- ctx.Value(ctxKey{})
		panic("boom")
	})

	assert.Equal(t, "payload", <-got)
	require.Eventually(t, func() bool {
		return hook.LastEntry() != nil
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, hook.LastEntry().Message, "panic in goroutine (with context)")
}
