package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netprofile/internal/domain"
)

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	responses := []domain.Response{{QuestionID: 1, Answer: 4}}
	id, err := s.Create(ctx, domain.Assessment{Organization: "Example.COM", Language: "he", Responses: responses})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	responses[0].Answer = 1
	a, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, domain.StatusQueued, a.Status)
	assert.Equal(t, "example.com", a.Organization)
	assert.Equal(t, fixed, a.CreatedAt)
	assert.Equal(t, 4, a.Responses[0].Answer)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Status(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ClaimNextIsFIFO(t *testing.T) {
	ctx := context.Background()
	s := New()

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := s.Create(ctx, domain.Assessment{})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	for _, want := range ids {
		job, found, err := s.ClaimNext(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, want, job.AssessmentID)

		status, err := s.Status(ctx, want)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRunning, status)
	}
	_, found, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_JobLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()
	id, err := s.Create(ctx, domain.Assessment{})
	require.NoError(t, err)

	jobID, err := s.StartJobForAssessment(ctx, id)
	require.NoError(t, err)
	_, err = s.StartJobForAssessment(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound, "a running job cannot be started twice")

	scores, profile := domain.Score(nil)
	require.NoError(t, s.SaveResult(ctx, id, scores, profile))
	require.NoError(t, s.MarkCompleted(ctx, jobID))

	a, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, a.Status)
	require.NotNil(t, a.CompletedAt)
	require.NotNil(t, a.Profile)
	assert.Equal(t, domain.Bridge, a.Profile.Primary)

	assert.ErrorIs(t, s.MarkFailed(ctx, "missing", "boom"), domain.ErrNotFound)
	assert.ErrorIs(t, s.SaveResult(ctx, "missing", scores, profile), domain.ErrNotFound)
}

func TestStore_MarkFailed(t *testing.T) {
	ctx := context.Background()
	s := New()
	id, err := s.Create(ctx, domain.Assessment{})
	require.NoError(t, err)
	job, _, err := s.ClaimNext(ctx)
	require.NoError(t, err)

	require.NoError(t, s.MarkFailed(ctx, job.ID, "boom"))
	a, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, a.Status)
	assert.Nil(t, a.CompletedAt)
}

func TestStore_CountPrimaryByOrganization(t *testing.T) {
	ctx := context.Background()
	s := New()

	score := func(org string, answer int) {
		responses := make([]domain.Response, 0, domain.NumQuestions)
		for q := 1; q <= domain.NumQuestions; q++ {
			responses = append(responses, domain.Response{QuestionID: q, Answer: answer})
		}
		id, err := s.Create(ctx, domain.Assessment{Organization: org, Responses: responses})
		require.NoError(t, err)
		jobID, err := s.StartJobForAssessment(ctx, id)
		require.NoError(t, err)
		scores, profile := domain.Score(responses)
		require.NoError(t, s.SaveResult(ctx, id, scores, profile))
		require.NoError(t, s.MarkCompleted(ctx, jobID))
	}
	score("example.com", 5)
	score("example.com", 5)
	score("example.com", 1)
	score("other.org", 5)
	_, err := s.Create(ctx, domain.Assessment{Organization: "example.com"})
	require.NoError(t, err)

	counts, err := s.CountPrimaryByOrganization(ctx, "EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, map[domain.Archetype]int{domain.Magnet: 2, domain.Bridge: 1}, counts)
}

func TestStore_Requeue(t *testing.T) {
	ctx := context.Background()
	s := New()
	first, err := s.Create(ctx, domain.Assessment{})
	require.NoError(t, err)
	_, err = s.Create(ctx, domain.Assessment{})
	require.NoError(t, err)

	job, _, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.Equal(t, first, job.AssessmentID)
	require.NoError(t, s.Requeue(ctx, job.ID))

	status, err := s.Status(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQueued, status)

	again, found, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, job, again, "a requeued job keeps its place in line")

	assert.ErrorIs(t, s.Requeue(ctx, "missing"), domain.ErrNotFound)
}

func TestStore_RequeueStale(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	old, err := s.Create(ctx, domain.Assessment{})
	require.NoError(t, err)
	_, _, err = s.ClaimNext(ctx)
	require.NoError(t, err)

	now = now.Add(10 * time.Minute)
	fresh, err := s.Create(ctx, domain.Assessment{})
	require.NoError(t, err)
	_, _, err = s.ClaimNext(ctx)
	require.NoError(t, err)

	n, err := s.RequeueStale(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	status, err := s.Status(ctx, old)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQueued, status)
	status, err = s.Status(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, status)
}

func TestStore_CancelledContext(t *testing.T) {
	s := New()
	id, err := s.Create(context.Background(), domain.Assessment{})
	require.NoError(t, err)
	job, _, err := s.ClaimNext(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.MarkFailed(ctx, job.ID, "boom"), context.Canceled)
	_, _, err = s.ClaimNext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_SaveResultCopiesMaps(t *testing.T) {
	ctx := context.Background()
	s := New()
	id, err := s.Create(ctx, domain.Assessment{})
	require.NoError(t, err)

	scores, profile := domain.Score([]domain.Response{{QuestionID: 1, Answer: 5}})
	require.NoError(t, s.SaveResult(ctx, id, scores, profile))
	scores[1] = domain.SkillScore{SkillID: 1, Total: 99}
	profile.AllScores[domain.Magnet] = 99

	a, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, a.SkillScores[1].Total)
	assert.NotEqual(t, 99.0, a.Profile.AllScores[domain.Magnet])

	a.SkillScores[1] = domain.SkillScore{}
	again, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, again.SkillScores[1].Total)
}
