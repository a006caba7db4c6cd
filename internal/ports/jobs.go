package ports

import (
	"context"
	"time"
)

type ScoringJob struct {
	ID           string
	AssessmentID string
}

// JobRepository supports claiming and updating scoring jobs.
type JobRepository interface {
	ClaimNext(ctx context.Context) (job ScoringJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	StartJobForAssessment(ctx context.Context, assessmentID string) (jobID string, err error)

	// Requeue returns a claimed job and its assessment to queued.
	Requeue(ctx context.Context, jobID string) error
	// RequeueStale requeues jobs that have been running for longer than
	// olderThan and reports how many were reset.
	RequeueStale(ctx context.Context, olderThan time.Duration) (int, error)
}
