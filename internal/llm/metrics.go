package llm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver records LLM and advisor calls as Prometheus metrics.
type MetricsObserver struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsObserver registers its collectors on reg.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_calls_total",
		Help: "Total number of advisor/LLM calls",
	}, []string{"task", "model", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "advisor_call_duration_seconds",
		Help:    "Duration of advisor/LLM calls in seconds",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"task", "model"})

	reg.MustRegister(calls, duration)
	return &MetricsObserver{calls: calls, duration: duration}
}

func (o *MetricsObserver) OnCallComplete(event LLMCallEvent) {
	status := "ok"
	if !event.Success {
		status = event.ErrorCode
		if status == "" {
			status = "UNKNOWN"
		}
	}
	o.calls.WithLabelValues(string(event.Task), event.Model, status).Inc()
	o.duration.WithLabelValues(string(event.Task), event.Model).
		Observe((time.Duration(event.LatencyMs) * time.Millisecond).Seconds())
}
