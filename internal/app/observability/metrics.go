package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transcription and prompt-generation counters, exposed by the HTTP server
// on /metrics. Labels stay low-cardinality: status is ok|error, provider is
// the generator backend name.
var (
	TranscriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wprompt",
		Name:      "transcriptions_total",
		Help:      "Transcription calls issued, by outcome and prompt source.",
	}, []string{"status", "prompt_source"})

	TranscriptionSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wprompt",
		Name:      "transcription_duration_seconds",
		Help:      "Wall-clock latency of transcription service calls.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	})

	PromptGenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wprompt",
		Name:      "prompt_generations_total",
		Help:      "Fictitious prompt generations, by provider and outcome.",
	}, []string{"provider", "status"})

	PromptWindowWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wprompt",
		Name:      "prompt_window_warnings_total",
		Help:      "Prompts estimated to exceed the service's trailing token window.",
	})
)

// StatusLabel maps an error to the status label value.
func StatusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
