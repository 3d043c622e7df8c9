package insight

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/julianstephens/momentum/internal/models"
)

// Summarizer produces coaching text; *Client implements it
type Summarizer interface {
	Summarize(ctx context.Context, apiKey string, habits []models.Habit, logs []models.HabitLog, now time.Time) string
}

// Coach allows one summary at a time. A call made while another is pending
// is rejected instead of racing it.
type Coach struct {
	summarizer Summarizer
	inFlight   atomic.Bool
}

func NewCoach(s Summarizer) *Coach {
	return &Coach{summarizer: s}
}

// Analyze returns the summary text, or ErrBusy when a previous call is still running
func (c *Coach) Analyze(ctx context.Context, apiKey string, habits []models.Habit, logs []models.HabitLog, now time.Time) (string, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return MsgBusy, ErrBusy
	}
	defer c.inFlight.Store(false)

	return c.summarizer.Summarize(ctx, apiKey, habits, logs, now), nil
}

// Busy reports whether a summary is being generated
func (c *Coach) Busy() bool {
	return c.inFlight.Load()
}
