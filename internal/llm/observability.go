package llm

import "go.uber.org/zap"

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes LLM call events to a zap logger.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates an Observer that logs events to l.
func NewLogObserver(l *zap.Logger) *LogObserver {
	if l == nil {
		l = zap.NewNop()
	}
	return &LogObserver{logger: l}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if !event.Success {
		o.logger.Warn("llm_call", append(fields, zap.String("error_code", event.ErrorCode))...)
		return
	}
	o.logger.Info("llm_call", fields...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}

// MultiObserver fans an event out to every non-nil observer.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(event LLMCallEvent) {
	for _, o := range m {
		if o != nil {
			o.OnCallComplete(event)
		}
	}
}
