package insight

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/momentum/internal/models"
)

type blockingSummarizer struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingSummarizer) Summarize(ctx context.Context, apiKey string, habits []models.Habit, logs []models.HabitLog, now time.Time) string {
	close(b.started)
	<-b.release
	return "done"
}

func TestCoachRejectsConcurrentAnalyze(t *testing.T) {
	s := &blockingSummarizer{started: make(chan struct{}), release: make(chan struct{})}
	coach := NewCoach(s)

	result := make(chan string, 1)
	go func() {
		text, _ := coach.Analyze(context.Background(), "key", nil, nil, now)
		result <- text
	}()

	<-s.started
	assert.True(t, coach.Busy())

	text, err := coach.Analyze(context.Background(), "key", nil, nil, now)
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, MsgBusy, text)

	close(s.release)
	assert.Equal(t, "done", <-result)

	require.Eventually(t, func() bool { return !coach.Busy() }, time.Second, 10*time.Millisecond)
}

type staticSummarizer string

func (s staticSummarizer) Summarize(context.Context, string, []models.Habit, []models.HabitLog, time.Time) string {
	return string(s)
}

func TestCoachSequentialCalls(t *testing.T) {
	coach := NewCoach(staticSummarizer("ok"))
	for i := 0; i < 3; i++ {
		text, err := coach.Analyze(context.Background(), "key", nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, "ok", text)
	}
	assert.False(t, coach.Busy())
}
