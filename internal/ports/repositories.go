package ports

import (
	"context"

	"netprofile/internal/domain"
)

// AssessmentRepository stores submissions and their scoring results.
type AssessmentRepository interface {
	// Create stores a queued assessment and its scoring job.
	Create(ctx context.Context, a domain.Assessment) (assessmentID string, err error)
	Get(ctx context.Context, assessmentID string) (domain.Assessment, error)
	Status(ctx context.Context, assessmentID string) (domain.Status, error)
	SaveResult(ctx context.Context, assessmentID string, scores domain.SkillScores, profile domain.ProfileResult) error
}

// SummaryRepository aggregates completed assessments.
type SummaryRepository interface {
	// CountPrimaryByOrganization counts completed assessments per primary archetype.
	CountPrimaryByOrganization(ctx context.Context, organization string) (map[domain.Archetype]int, error)
}
