package plans

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
	return &cli.Context{Store: mem, State: st, Out: &out, Interactive: func() bool { return false }}, &out
}

func TestPlanShowEmpty(t *testing.T) {
	ctx, out := setupTestContext(t)
	require.NoError(t, (&PlanShowCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "PRIORITIES FOR 2024-01-10")
	assert.Contains(t, out.String(), "5. [ ] (empty)")
	assert.Empty(t, ctx.State.Plans(), "showing a plan does not create one")
}

func TestPlanEdits(t *testing.T) {
	ctx, out := setupTestContext(t)

	require.NoError(t, (&PlanSetCmd{Slot: 1, Text: "Ship release"}).Run(ctx))
	require.NoError(t, (&PlanNoteCmd{Slot: 1, Notes: "tag v1"}).Run(ctx))
	require.NoError(t, (&PlanToggleCmd{Slot: 1}).Run(ctx))
	require.NoError(t, (&PlanSetCmd{Slot: 2, Text: "Review PRs", Date: "2024-01-11"}).Run(ctx))

	plan, ok := ctx.State.DayPlan("2024-01-10")
	require.True(t, ok)
	assert.Len(t, plan.Tasks, constants.MaxDailyTasks)
	assert.Equal(t, "Ship release", plan.Tasks[0].Text)
	assert.Equal(t, "tag v1", plan.Tasks[0].Notes)
	assert.True(t, plan.Tasks[0].Completed)
	assert.Contains(t, out.String(), "1 of 1 done")
	assert.Len(t, ctx.State.Plans(), 2)

	assert.Error(t, (&PlanSetCmd{Slot: 6, Text: "overflow"}).Run(ctx))
	assert.Error(t, (&PlanToggleCmd{Slot: 0}).Run(ctx))
}

func TestPlanClear(t *testing.T) {
	ctx, _ := setupTestContext(t)
	require.NoError(t, (&PlanSetCmd{Slot: 1, Text: "Ship"}).Run(ctx))

	assert.ErrorIs(t, (&PlanClearCmd{}).Run(ctx), cli.ErrNotInteractive)
	require.NoError(t, (&PlanClearCmd{Yes: true}).Run(ctx))

	plan, ok := ctx.State.DayPlan("2024-01-10")
	require.True(t, ok)
	assert.Len(t, plan.Tasks, constants.MaxDailyTasks)
	assert.Equal(t, 0, plan.FilledCount())
}

func TestDayCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	h := ctx.State.AddHabit(state.NewHabit{Name: "Run"})
	ctx.State.AddHabit(state.NewHabit{Name: "Read"})
	ctx.State.ToggleHabit(h.ID, "2024-01-09", constants.TogglePartial)
	w := ctx.State.AddMicroWin("Water")
	ctx.State.ToggleMicroWin(w.ID, "2024-01-09")
	ctx.State.SaveJournalEntry("2024-01-09", "Tired but ok")

	require.NoError(t, (&DayCmd{Date: "yesterday"}).Run(ctx))
	s := out.String()
	assert.Contains(t, s, "done enough")
	assert.Contains(t, s, "not done")
	assert.Contains(t, s, "✓ Water")
	assert.Contains(t, s, "Tired but ok")
	assert.Contains(t, s, "PRIORITIES FOR 2024-01-09")
}
