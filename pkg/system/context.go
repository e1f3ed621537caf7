package system

import (
	"context"
)

// RunWithContext runs operation in its own goroutine and waits for it or for
// ctx to be done, whichever comes first.
//
// The operation receives a context of its own that is cancelled when ctx is
// done, and RunWithContext still waits for it to return so no work outlives
// the call. If ctx was already done before starting, the operation is not run.
//
// Returns:
//   - the operation's error when it finishes first.
//   - ctx.Err() when ctx is done first and the operation then returns nil.
//   - the operation's error when ctx is done first and the operation fails.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can always deliver its result and exit.
	done := make(chan error, 1)
	go func() {
		done <- operation(opCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		cancel()
		if err := <-done; err != nil {
			return err
		}
		return ctx.Err()
	}
}
