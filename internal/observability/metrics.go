package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"netprofile/internal/domain"
)

// Metrics records assessment and scoring activity in Prometheus.
type Metrics struct {
	submitted       *prometheus.CounterVec
	scoringDuration prometheus.Histogram
	profiles        *prometheus.CounterVec
	jobs            *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg. A nil reg uses the default
// Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		submitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netprofile_assessments_submitted_total",
				Help: "Assessments accepted for scoring.",
			},
			[]string{"language"},
		),
		scoringDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "netprofile_scoring_duration_seconds",
				Help:    "Time spent scoring and classifying one assessment.",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		profiles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netprofile_profiles_total",
				Help: "Profiles produced, by primary archetype and whether a secondary was reported.",
			},
			[]string{"primary", "secondary"},
		),
		jobs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netprofile_scoring_jobs_total",
				Help: "Scoring jobs processed, by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) AssessmentSubmitted(language string) {
	m.submitted.WithLabelValues(language).Inc()
}

func (m *Metrics) ProfileScored(p domain.ProfileResult, took time.Duration) {
	m.scoringDuration.Observe(took.Seconds())
	secondary := "none"
	if p.Secondary != nil {
		secondary = string(*p.Secondary)
	}
	m.profiles.WithLabelValues(string(p.Primary), secondary).Inc()
}

func (m *Metrics) JobFinished(outcome string) {
	m.jobs.WithLabelValues(outcome).Inc()
}
