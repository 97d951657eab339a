package shutdown_test

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/pkg/shutdown"
)

func TestWait(t *testing.T) {
	t.Run("hooks run in order after a signal", func(t *testing.T) {
		order := make([]string, 0, 3)
		done := make(chan struct{})

		go func() {
			defer close(done)
			shutdown.Wait(time.Second,
				func(context.Context) error {
					order = append(order, "http")
					return nil
				},
				func(context.Context) error {
					order = append(order, "limiter")
					return nil
				},
				func(context.Context) error {
					order = append(order, "database")
					return nil
				},
			)
		}()

		// Дать горутине дойти до ожидания сигнала.
		time.Sleep(50 * time.Millisecond)
		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("shutdown did not complete")
		}

		assert.Equal(t, []string{"http", "limiter", "database"}, order)
	})

	t.Run("expired timeout skips remaining hooks", func(t *testing.T) {
		order := make([]string, 0, 2)
		done := make(chan struct{})

		go func() {
			defer close(done)
			shutdown.Wait(100*time.Millisecond,
				func(ctx context.Context) error {
					order = append(order, "slow")
					<-ctx.Done()
					return ctx.Err()
				},
				func(context.Context) error {
					order = append(order, "never")
					return nil
				},
			)
		}()

		time.Sleep(50 * time.Millisecond)
		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("shutdown did not complete")
		}

		assert.Equal(t, []string{"slow"}, order)
	})
}
