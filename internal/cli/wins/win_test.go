package wins

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/state"
	"github.com/julianstephens/momentum/internal/storage"
)

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	mem := storage.NewMemoryStore()
	for _, key := range constants.StorageKeys {
		require.NoError(t, mem.Set(key, []byte(`[]`)))
	}
	st := state.New(mem, state.WithClock(func() time.Time { return testNow }))
	require.NoError(t, st.Load())

	var out bytes.Buffer
	return &cli.Context{Store: mem, State: st, Out: &out}, &out
}

func TestWinLifecycle(t *testing.T) {
	ctx, out := setupTestContext(t)

	for _, text := range []string{"Water", "Walk", "Stretch"} {
		require.NoError(t, (&WinAddCmd{Text: text}).Run(ctx))
	}
	assert.Error(t, (&WinAddCmd{Text: " "}).Run(ctx))

	require.NoError(t, (&WinToggleCmd{Win: "walk"}).Run(ctx))
	walk := ctx.State.MicroWins()[1]
	assert.True(t, ctx.State.MicroWinDone(walk.ID, "2024-01-10"))

	out.Reset()
	require.NoError(t, (&WinListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "1 of 3 done")
	assert.Contains(t, out.String(), "[x] Walk")

	require.NoError(t, (&WinToggleCmd{Win: "2"}).Run(ctx))
	assert.False(t, ctx.State.MicroWinDone(walk.ID, "2024-01-10"))

	require.NoError(t, (&WinMoveCmd{Win: "Stretch", Position: 1}).Run(ctx))
	assert.Equal(t, "Stretch", ctx.State.MicroWins()[0].Text)

	require.NoError(t, (&WinToggleCmd{Win: "Water", Date: "2024-01-09"}).Run(ctx))
	require.NoError(t, (&WinDeleteCmd{Win: "Water"}).Run(ctx))
	assert.Len(t, ctx.State.MicroWins(), 2)
	assert.Empty(t, ctx.State.MicroWinLogs())

	assert.Error(t, (&WinDeleteCmd{Win: "Water"}).Run(ctx))
}

func TestWinListEmpty(t *testing.T) {
	ctx, out := setupTestContext(t)
	require.NoError(t, (&WinListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No micro-wins found")
}
