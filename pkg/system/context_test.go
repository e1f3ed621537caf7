package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunWithContextCompletes(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("sentinel")

	assert.NoError(t, RunWithContext(context.Background(), func(context.Context) error { return nil }))
	assert.ErrorIs(t, RunWithContext(context.Background(), func(context.Context) error { return sentinel }), sentinel)
}

func TestRunWithContextAlreadyCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := RunWithContext(ctx, func(context.Context) error {
		ran = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func TestRunWithContextCancelledWhileRunning(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := RunWithContext(ctx, func(opCtx context.Context) error {
		<-opCtx.Done()
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunWithContextOperationErrorWins(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	sentinel := errors.New("sentinel")

	err := RunWithContext(ctx, func(opCtx context.Context) error {
		<-opCtx.Done()
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
