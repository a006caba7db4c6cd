package scorerunner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"netprofile/internal/domain"
	"netprofile/internal/observability"
	"netprofile/internal/ports"
)

const (
	defaultStaleAfter = 5 * time.Minute
	defaultWaitPoll   = 50 * time.Millisecond
)

// AssessmentProcessor performs the scoring work for an assessment id.
type AssessmentProcessor interface {
	Process(ctx context.Context, assessmentID string) error
}

// StatusReader reports the scoring status of an assessment.
type StatusReader interface {
	Status(ctx context.Context, assessmentID string) (domain.Status, error)
}

// Processor runs the scoring core over stored responses and stores the result.
type Processor struct {
	Repo    ports.AssessmentRepository
	Metrics *observability.Metrics
}

func (p Processor) Process(ctx context.Context, assessmentID string) error {
	a, err := p.Repo.Get(ctx, assessmentID)
	if err != nil {
		return fmt.Errorf("load assessment: %w", err)
	}
	start := time.Now()
	scores, profile := domain.Score(a.Responses)
	p.Metrics.ProfileScored(profile, time.Since(start))
	if err := p.Repo.SaveResult(ctx, assessmentID, scores, profile); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// Runner drains the scoring job queue.
type Runner struct {
	Jobs        ports.JobRepository
	Assessments StatusReader
	Processor   AssessmentProcessor
	Metrics     *observability.Metrics
	Logger      *observability.Logger

	// StaleAfter is how long a job may stay running before Run reclaims it.
	StaleAfter time.Duration
	// WaitPoll is the status poll interval of ProcessInline when another
	// worker holds the job.
	WaitPoll time.Duration
}

// Run starts a dispatcher that claims jobs every pollInterval and concurrency
// workers that process them. It blocks until ctx is cancelled. Jobs claimed
// but not finished by then are returned to the queue.
func (r *Runner) Run(ctx context.Context, concurrency int, pollInterval time.Duration) error {
	if concurrency < 1 {
		return nil
	}
	staleAfter := r.StaleAfter
	if staleAfter <= 0 {
		staleAfter = defaultStaleAfter
	}
	r.requeueStale(ctx, staleAfter)

	jobsCh := make(chan ports.ScoringJob, concurrency)
	g, ctx := errgroup.WithContext(ctx)

	// dispatcher loop
	g.Go(func() error {
		defer close(jobsCh)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		reclaim := time.NewTicker(staleAfter)
		defer reclaim.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-reclaim.C:
				r.requeueStale(ctx, staleAfter)
				continue
			case <-ticker.C:
			}
			for {
				job, found, err := r.Jobs.ClaimNext(ctx)
				if err != nil {
					if ctx.Err() == nil {
						r.Logger.Error("job claim failed", "error", err)
					}
					break
				}
				if !found {
					break
				}
				select {
				case jobsCh <- job:
				case <-ctx.Done():
					r.requeue(ctx, job)
					return nil
				}
			}
		}
	})

	for i := 0; i < concurrency; i++ {
		worker := r.Logger.With("worker", i)
		g.Go(func() error {
			for job := range jobsCh {
				if ctx.Err() != nil {
					r.requeue(ctx, job)
					continue
				}
				if err := r.handle(ctx, job.ID, job.AssessmentID); err != nil && ctx.Err() == nil {
					worker.Error("scoring job failed", "job_id", job.ID, "assessment_id", job.AssessmentID, "error", err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// ProcessInline scores one assessment synchronously, using the same processor
// as the background workers. When a worker already holds the job it waits for
// that worker to finish instead. It returns nil once the assessment is
// completed or failed.
func (r *Runner) ProcessInline(ctx context.Context, assessmentID string) error {
	poll := r.WaitPoll
	if poll <= 0 {
		poll = defaultWaitPoll
	}
	for {
		jobID, err := r.Jobs.StartJobForAssessment(ctx, assessmentID)
		if err == nil {
			return r.handle(ctx, jobID, assessmentID)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		status, err := r.Assessments.Status(ctx, assessmentID)
		if err != nil {
			return err
		}
		if status == domain.StatusCompleted || status == domain.StatusFailed {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(poll):
		}
	}
}

func (r *Runner) handle(ctx context.Context, jobID, assessmentID string) error {
	// Terminal updates must land even when ctx is cancelled mid-job.
	finishCtx := context.WithoutCancel(ctx)
	if err := r.Processor.Process(ctx, assessmentID); err != nil {
		if ctx.Err() != nil {
			r.requeue(finishCtx, ports.ScoringJob{ID: jobID, AssessmentID: assessmentID})
			return err
		}
		if markErr := r.Jobs.MarkFailed(finishCtx, jobID, err.Error()); markErr != nil {
			r.Logger.Error("mark job failed", "job_id", jobID, "error", markErr)
		}
		r.Metrics.JobFinished("failed")
		return err
	}
	if err := r.Jobs.MarkCompleted(finishCtx, jobID); err != nil {
		r.Metrics.JobFinished("failed")
		return fmt.Errorf("complete job: %w", err)
	}
	r.Metrics.JobFinished("completed")
	r.Logger.Debug("assessment scored", "job_id", jobID, "assessment_id", assessmentID)
	return nil
}

func (r *Runner) requeue(ctx context.Context, job ports.ScoringJob) {
	if err := r.Jobs.Requeue(context.WithoutCancel(ctx), job.ID); err != nil {
		r.Logger.Error("requeue job", "job_id", job.ID, "assessment_id", job.AssessmentID, "error", err)
		return
	}
	r.Metrics.JobFinished("requeued")
}

func (r *Runner) requeueStale(ctx context.Context, olderThan time.Duration) {
	n, err := r.Jobs.RequeueStale(ctx, olderThan)
	if err != nil {
		if ctx.Err() == nil {
			r.Logger.Error("requeue stale jobs", "error", err)
		}
		return
	}
	if n > 0 {
		r.Logger.Info("requeued stale jobs", "count", n)
	}
}
