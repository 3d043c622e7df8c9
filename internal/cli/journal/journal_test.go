package journal

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

func setupTestContext(t *testing.T) (*cli.Context, *storage.MemoryStore, *bytes.Buffer) {
	t.Helper()
	mem := storage.NewMemoryStore()
	for _, key := range constants.StorageKeys {
		require.NoError(t, mem.Set(key, []byte(`[]`)))
	}
	st := state.New(mem, state.WithClock(func() time.Time { return testNow }))
	require.NoError(t, st.Load())

	var out bytes.Buffer
	return &cli.Context{Store: mem, State: st, Out: &out}, mem, &out
}

func TestJournalWriteAndShow(t *testing.T) {
	ctx, mem, out := setupTestContext(t)

	require.NoError(t, (&JournalWriteCmd{Text: []string{"Felt", "good"}}).Run(ctx))
	e, ok := ctx.State.JournalEntry("2024-01-10")
	require.True(t, ok)
	assert.Equal(t, "Felt good", e.Content)

	raw, _, err := mem.Get(constants.KeyJournal)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Felt good")

	out.Reset()
	require.NoError(t, (&JournalShowCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Felt good")
}

func TestJournalWriteWhitespaceRemovesEntry(t *testing.T) {
	ctx, _, out := setupTestContext(t)
	require.NoError(t, (&JournalWriteCmd{Text: []string{"note"}, Date: "2024-01-01"}).Run(ctx))
	require.NoError(t, (&JournalWriteCmd{Text: []string{"  "}, Date: "2024-01-01"}).Run(ctx))

	_, ok := ctx.State.JournalEntry("2024-01-01")
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Removed journal entry for 2024-01-01")
}

func TestJournalList(t *testing.T) {
	ctx, _, out := setupTestContext(t)
	require.NoError(t, (&JournalListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No journal entries yet.")

	for _, d := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		ctx.State.SaveJournalEntry(d, "entry "+d+"\nsecond line")
	}
	out.Reset()
	require.NoError(t, (&JournalListCmd{Limit: 2}).Run(ctx))
	s := out.String()
	assert.Contains(t, s, "2024-01-03  entry 2024-01-03")
	assert.NotContains(t, s, "second line")
	assert.NotContains(t, s, "2024-01-01  entry")
	assert.Contains(t, s, "1 older entries")
}
