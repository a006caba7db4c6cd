package reports

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"netprofile/internal/domain"
	"netprofile/internal/observability"
	"netprofile/internal/ports"
)

type Service struct {
	repo    ports.AssessmentRepository
	content ports.Content
	tracer  trace.Tracer
}

func New(repo ports.AssessmentRepository, content ports.Content) *Service {
	return &Service{repo: repo, content: content, tracer: observability.Tracer("reports")}
}

// Get assembles report data for a completed assessment. An empty lang uses
// the language the assessment was taken in.
func (s *Service) Get(ctx context.Context, assessmentID string, lang string) (domain.Report, error) {
	ctx, span := s.tracer.Start(ctx, "reports.Get", trace.WithAttributes(attribute.String("assessment.id", assessmentID)))
	defer span.End()

	a, err := s.repo.Get(ctx, assessmentID)
	if err != nil {
		return domain.Report{}, err
	}
	if a.Status != domain.StatusCompleted || a.Profile == nil {
		return domain.Report{}, domain.ErrNotReady
	}
	if lang == "" {
		lang = a.Language
	}
	return Build(s.content, a.ID, lang, a.Respondent, a.SkillScores, *a.Profile)
}

// Build combines scoring output with localized content. Skills are ordered
// by skill id.
func Build(content ports.Content, assessmentID, lang string, respondent domain.Respondent, scores domain.SkillScores, profile domain.ProfileResult) (domain.Report, error) {
	lang = content.Resolve(lang)
	names := content.Skills(lang)
	skills := make([]domain.NamedSkillScore, 0, len(scores))
	for id, sc := range scores {
		skills = append(skills, domain.NamedSkillScore{SkillScore: sc, Name: names[id]})
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].SkillID < skills[j].SkillID })

	primary, err := content.Archetype(lang, profile.Primary)
	if err != nil {
		return domain.Report{}, fmt.Errorf("primary content: %w", err)
	}
	report := domain.Report{
		AssessmentID: assessmentID,
		Language:     lang,
		Respondent:   respondent,
		Skills:       skills,
		Profile:      profile,
		Primary:      primary,
	}
	if profile.Secondary != nil {
		secondary, err := content.Archetype(lang, *profile.Secondary)
		if err != nil {
			return domain.Report{}, fmt.Errorf("secondary content: %w", err)
		}
		report.Secondary = &secondary
	}
	return report, nil
}
