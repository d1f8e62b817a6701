package bootstrap

import (
	"context"
	"errors"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		err := New(nil).Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run error is returned and hooks still run", func(t *testing.T) {
		app := New(nil)
		closed := false
		app.OnShutdown("db", func(ctx context.Context) error {
			closed = true
			return nil
		})

		want := errors.New("listen tcp :8000: address already in use")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
		assert.True(t, closed)
	})

	t.Run("hooks run in LIFO order on context cancel", func(t *testing.T) {
		app := New(nil)
		var mu sync.Mutex
		var order []string
		for _, name := range []string{"db", "redis", "http"} {
			app.OnShutdown(name, func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"http", "redis", "db"}, order)
	})

	t.Run("hook registered from inside run", func(t *testing.T) {
		app := New(nil)
		hookCalled := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.OnShutdown("late", func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})

	t.Run("hook errors are joined", func(t *testing.T) {
		app := New(nil)
		errA := errors.New("close db")
		errB := errors.New("close redis")
		ran := 0
		app.OnShutdown("db", func(ctx context.Context) error { ran++; return errA })
		app.OnShutdown("redis", func(ctx context.Context) error { ran++; return errB })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := app.Run(ctx, func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		})
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.Equal(t, 2, ran)
	})

	t.Run("hooks share the shutdown deadline", func(t *testing.T) {
		app := New(nil).WithShutdownTimeout(50 * time.Millisecond)
		var deadline time.Time
		app.OnShutdown("http", func(ctx context.Context) error {
			var ok bool
			deadline, ok = ctx.Deadline()
			require.True(t, ok)
			return nil
		})

		start := time.Now()
		require.NoError(t, app.Run(context.Background(), func(ctx context.Context) error { return nil }))
		assert.WithinDuration(t, start.Add(50*time.Millisecond), deadline, time.Second)
	})

	t.Run("SIGTERM stops the app", func(t *testing.T) {
		app := New(nil)
		stopped := make(chan struct{})
		app.OnShutdown("stop", func(ctx context.Context) error {
			close(stopped)
			return nil
		})

		err := app.Run(context.Background(), func(ctx context.Context) error {
			assert.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("shutdown hook did not run")
		}
	})
}
