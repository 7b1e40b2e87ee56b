package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	turnsAppended = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_turns_appended_total",
			Help: "Turns appended to session transcripts, by role.",
		},
		[]string{"role"},
	)

	generationCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_generation_calls_total",
			Help: "Generation calls against the inference service, by model and success.",
		},
		[]string{"model", "success"},
	)

	generationLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_generation_latency_ms",
			Help:    "Generation call latency distribution in milliseconds.",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
		},
		[]string{"model"},
	)

	contextUploads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "session_context_uploads_total",
			Help: "Accepted document context uploads.",
		},
	)
)

// Register installs all collectors into the default registry. Safe to call
// more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			turnsAppended,
			generationCalls,
			generationLatencyMs,
			contextUploads,
		)
	})
}

// TurnAppended counts one transcript append for the given role.
func TurnAppended(role string) {
	turnsAppended.WithLabelValues(role).Inc()
}

// GenerationObserved records the outcome and latency of one generation call.
func GenerationObserved(model string, success bool, latencyMs float64) {
	generationCalls.WithLabelValues(model, strconv.FormatBool(success)).Inc()
	generationLatencyMs.WithLabelValues(model).Observe(latencyMs)
}

// ContextUploaded counts one accepted document upload.
func ContextUploaded() {
	contextUploads.Inc()
}
