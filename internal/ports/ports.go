package ports

import (
	"context"

	"netprofile/internal/domain"
)

// Submission is a questionnaire submitted for scoring.
type Submission struct {
	Respondent domain.Respondent
	Language   string
	Responses  []domain.Response
}

// Assessments accepts submissions and tracks their scoring.
type Assessments interface {
	Submit(ctx context.Context, sub Submission) (assessmentID string, err error)
	Status(ctx context.Context, assessmentID string) (domain.Status, error)
}

// Reports assembles report data for scored assessments.
type Reports interface {
	Get(ctx context.Context, assessmentID string, lang string) (domain.Report, error)
}

// Content resolves localized archetype and skill content.
type Content interface {
	Resolve(lang string) string
	Archetype(lang string, a domain.Archetype) (domain.ArchetypeContent, error)
	Skills(lang string) map[int]string
	Questions(lang string) domain.QuestionBank
}

// Organizations summarizes results per respondent organization.
type Organizations interface {
	Summary(ctx context.Context, organization string) (domain.OrganizationSummary, error)
}
