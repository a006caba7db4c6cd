package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"netprofile/internal/domain"
	"netprofile/internal/ports"
)

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.ScoringJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id, assessment_id FROM scoring_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.AssessmentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}
	if err = markStarted(ctx, tx, job.ID, job.AssessmentID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

// StartJobForAssessment claims the queued job of a specific assessment.
func (db *DB) StartJobForAssessment(ctx context.Context, assessmentID string) (jobID string, err error) {
	if !validID(assessmentID) {
		return "", domain.ErrNotFound
	}
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id FROM scoring_jobs
        WHERE assessment_id = $1 AND status = 'queued'
        FOR UPDATE SKIP LOCKED
    `, assessmentID).Scan(&jobID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if err = markStarted(ctx, tx, jobID, assessmentID); err != nil {
		return "", err
	}
	return jobID, nil
}

func markStarted(ctx context.Context, tx pgx.Tx, jobID, assessmentID string) error {
	if _, err := tx.Exec(ctx, `
        UPDATE scoring_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, jobID); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
        UPDATE assessments SET status='running', started_at=COALESCE(started_at, now()) WHERE id=$1
    `, assessmentID)
	return err
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	return db.finish(ctx, jobID, "completed", "")
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	return db.finish(ctx, jobID, "failed", reason)
}

// finish moves a job and its assessment to a terminal status atomically.
func (db *DB) finish(ctx context.Context, jobID, status, reason string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var assessmentID string
	err = tx.QueryRow(ctx, `
        UPDATE scoring_jobs SET status=$2, last_error=NULLIF($3, ''), finished_at=now()
        WHERE id=$1
        RETURNING assessment_id
    `, jobID, status, reason).Scan(&assessmentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        UPDATE assessments
        SET status=$2, completed_at=CASE WHEN $2 = 'completed' THEN now() END
        WHERE id=$1
    `, assessmentID, status)
	return err
}

// Requeue releases a claimed job, e.g. one still undispatched at shutdown.
func (db *DB) Requeue(ctx context.Context, jobID string) error {
	tag, err := db.Pool.Exec(ctx, `
        WITH job AS (
            UPDATE scoring_jobs SET status='queued', started_at=NULL
            WHERE id=$1 AND status='running'
            RETURNING assessment_id
        )
        UPDATE assessments SET status='queued'
        WHERE id IN (SELECT assessment_id FROM job)
    `, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RequeueStale resets jobs left running longer than olderThan, such as those
// held by a process that died mid-job.
func (db *DB) RequeueStale(ctx context.Context, olderThan time.Duration) (int, error) {
	tag, err := db.Pool.Exec(ctx, `
        WITH stale AS (
            UPDATE scoring_jobs SET status='queued', started_at=NULL
            WHERE status='running' AND started_at < now() - make_interval(secs => $1)
            RETURNING assessment_id
        )
        UPDATE assessments SET status='queued'
        WHERE id IN (SELECT assessment_id FROM stale)
    `, olderThan.Seconds())
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
