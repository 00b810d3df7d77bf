package logging_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sirkon/chains/internal/arena"
	"github.com/sirkon/chains/internal/deque"
	"github.com/sirkon/chains/internal/invariant"
	"github.com/sirkon/chains/internal/logging"
	"github.com/sirkon/chains/internal/tlog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestZap(t *testing.T) {
	t.Run("arena-grown", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		a, err := arena.New[int](
			arena.WithChunkSize(2),
			arena.WithLogger(logging.NewZap(zap.New(core))),
		)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			a.Alloc(i)
		}

		entries := logs.FilterMessage("arena grown").All()
		require.Len(t, entries, 3)
		for i, e := range entries {
			require.Equal(t, zapcore.DebugLevel, e.Level)
			require.Equal(t, map[string]interface{}{
				"arena-id": a.ID().String(),
				"chunks":   int64(i + 1),
				"capacity": int64(2 * (i + 1)),
			}, e.ContextMap())
		}
	})

	t.Run("invariant-violated", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)

		d, err := deque.New[string](arena.WithLogger(logging.NewZap(zap.New(core))))
		require.NoError(t, err)

		d.PushBack("a")
		r, _ := d.PeekFront()
		tlog.Violation(t, invariant.ErrorBorrowConflict, func() {
			d.PushBack("b")
		})
		r.Release()

		require.Zero(t, logs.FilterMessage("arena grown").Len(), "debug entries must be filtered out")

		entries := logs.FilterMessage("invariant violated").All()
		require.Len(t, entries, 1)
		require.Equal(t, zapcore.ErrorLevel, entries[0].Level)

		fields := entries[0].ContextMap()
		require.Equal(t, "push back", fields["operation"])
		require.Equal(t, int64(1), fields["active-accessors"])
		require.Contains(t, fields, "error")
		require.Contains(t, fields, "arena-id")
	})

	t.Run("nil-logger", func(t *testing.T) {
		l := logging.NewZap(nil)
		l.ArenaGrown(uuid.Nil, 1, 1)
		l.InvariantViolated(uuid.Nil, invariant.New(invariant.ErrorStaleHandle))
	})
}
