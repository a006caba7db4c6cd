package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"netprofile/internal/domain"
	"netprofile/internal/ports"
)

var (
	_ ports.AssessmentRepository = (*DB)(nil)
	_ ports.SummaryRepository    = (*DB)(nil)
	_ ports.JobRepository        = (*DB)(nil)
)

// AssessmentRepository

// Create inserts a queued assessment together with its scoring job.
func (db *DB) Create(ctx context.Context, a domain.Assessment) (id string, err error) {
	responses, err := json.Marshal(a.Responses)
	if err != nil {
		return "", fmt.Errorf("encode responses: %w", err)
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
        INSERT INTO assessments (respondent_name, respondent_email, organization, language, responses, status)
        VALUES ($1, $2, $3, $4, $5, 'queued')
        RETURNING id
    `, a.Respondent.Name, a.Respondent.Email, strings.ToLower(a.Organization), a.Language, responses).Scan(&id)
	if err != nil {
		return "", err
	}
	if _, err = tx.Exec(ctx, `INSERT INTO scoring_jobs (assessment_id) VALUES ($1)`, id); err != nil {
		return "", err
	}
	return id, nil
}

func (db *DB) Get(ctx context.Context, assessmentID string) (domain.Assessment, error) {
	var (
		a                 domain.Assessment
		status            string
		responses, scores []byte
		profile           []byte
		completedAt       *time.Time
	)
	if !validID(assessmentID) {
		return a, domain.ErrNotFound
	}
	err := db.Pool.QueryRow(ctx, `
        SELECT id, respondent_name, respondent_email, organization, language, responses,
               status, skill_scores, profile, created_at, completed_at
        FROM assessments WHERE id = $1
    `, assessmentID).Scan(&a.ID, &a.Respondent.Name, &a.Respondent.Email, &a.Organization, &a.Language,
		&responses, &status, &scores, &profile, &a.CreatedAt, &completedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, domain.ErrNotFound
	}
	if err != nil {
		return a, err
	}
	a.Status = domain.Status(status)
	a.CompletedAt = completedAt
	if err := json.Unmarshal(responses, &a.Responses); err != nil {
		return a, fmt.Errorf("decode responses: %w", err)
	}
	if scores != nil {
		if err := json.Unmarshal(scores, &a.SkillScores); err != nil {
			return a, fmt.Errorf("decode skill scores: %w", err)
		}
	}
	if profile != nil {
		a.Profile = &domain.ProfileResult{}
		if err := json.Unmarshal(profile, a.Profile); err != nil {
			return a, fmt.Errorf("decode profile: %w", err)
		}
	}
	return a, nil
}

func (db *DB) Status(ctx context.Context, assessmentID string) (domain.Status, error) {
	var status string
	if !validID(assessmentID) {
		return "", domain.ErrNotFound
	}
	err := db.Pool.QueryRow(ctx, `SELECT status FROM assessments WHERE id = $1`, assessmentID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return domain.Status(status), err
}

// SaveResult stores the serialized scoring output. Status transitions are
// owned by the job methods.
func (db *DB) SaveResult(ctx context.Context, assessmentID string, scores domain.SkillScores, profile domain.ProfileResult) error {
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode skill scores: %w", err)
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	var secondary *string
	if profile.Secondary != nil {
		s := string(*profile.Secondary)
		secondary = &s
	}
	tag, err := db.Pool.Exec(ctx, `
        UPDATE assessments
        SET skill_scores = $2, profile = $3, primary_archetype = $4, secondary_archetype = $5
        WHERE id = $1
    `, assessmentID, scoresJSON, profileJSON, string(profile.Primary), secondary)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// validID filters ids that could never match a uuid column before they reach
// Postgres as a syntax error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// SummaryRepository

func (db *DB) CountPrimaryByOrganization(ctx context.Context, organization string) (map[domain.Archetype]int, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT primary_archetype, count(*)
        FROM assessments
        WHERE organization = $1 AND status = 'completed' AND primary_archetype IS NOT NULL
        GROUP BY primary_archetype
    `, strings.ToLower(organization))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.Archetype]int)
	for rows.Next() {
		var (
			archetype string
			n         int
		)
		if err := rows.Scan(&archetype, &n); err != nil {
			return nil, err
		}
		out[domain.Archetype(archetype)] = n
	}
	return out, rows.Err()
}
