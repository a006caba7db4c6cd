package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netprofile/internal/domain"
)

func TestMetrics_Recording(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.AssessmentSubmitted("en")
	m.AssessmentSubmitted("en")
	m.AssessmentSubmitted("he")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.submitted.WithLabelValues("en")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submitted.WithLabelValues("he")))

	gardener := domain.Gardener
	m.ProfileScored(domain.ProfileResult{Primary: domain.Magnet, Secondary: &gardener}, time.Millisecond)
	m.ProfileScored(domain.ProfileResult{Primary: domain.Bridge}, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.profiles.WithLabelValues("magnet", "gardener")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.profiles.WithLabelValues("bridge", "none")))

	m.JobFinished("completed")
	m.JobFinished("failed")
	m.JobFinished("completed")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.jobs.WithLabelValues("completed")))

	count, err := testutil.GatherAndCount(reg, "netprofile_scoring_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}

func TestLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn", Format: "json", Output: &buf}).Component("scoring")

	logger.Info("hidden")
	logger.Warn("shown", "assessment_id", "a1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"component":"scoring"`)
	assert.Contains(t, out, `"assessment_id":"a1"`)
}
