package insight

import "github.com/julianstephens/momentum/internal/logger"

// CallEvent records metadata about a single AI invocation.
type CallEvent struct {
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about AI calls.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver forwards call events to the application logger.
type LogObserver struct{}

func (LogObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		logger.Info("AI call complete", "model", event.Model, "latency_ms", event.LatencyMs)
		return
	}
	logger.Warn("AI call failed", "model", event.Model, "latency_ms", event.LatencyMs, "code", event.ErrorCode)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
