package assessments

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"netprofile/internal/domain"
	"netprofile/internal/observability"
	"netprofile/internal/ports"
	"netprofile/internal/services/organizations"
)

// LanguageResolver maps a requested language to a supported one.
type LanguageResolver interface {
	Resolve(lang string) string
}

type Service struct {
	repo     ports.AssessmentRepository
	langs    LanguageResolver
	validate *validator.Validate
	metrics  *observability.Metrics
	logger   *observability.Logger
	tracer   trace.Tracer
}

func New(repo ports.AssessmentRepository, langs LanguageResolver, metrics *observability.Metrics, logger *observability.Logger) *Service {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Service{
		repo:     repo,
		langs:    langs,
		validate: validate,
		metrics:  metrics,
		logger:   logger.Component("assessments"),
		tracer:   observability.Tracer("assessments"),
	}
}

// Submit validates a submission, stores it as queued and enqueues scoring.
func (s *Service) Submit(ctx context.Context, sub ports.Submission) (string, error) {
	ctx, span := s.tracer.Start(ctx, "assessments.Submit", trace.WithAttributes(attribute.Int("responses", len(sub.Responses))))
	defer span.End()

	if err := s.check(sub); err != nil {
		span.SetStatus(codes.Error, "invalid submission")
		return "", err
	}

	lang := s.langs.Resolve(sub.Language)
	id, err := s.repo.Create(ctx, domain.Assessment{
		Respondent:   sub.Respondent,
		Organization: organizations.FromEmail(sub.Respondent.Email),
		Language:     lang,
		Responses:    sub.Responses,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store assessment")
		return "", fmt.Errorf("store assessment: %w", err)
	}
	span.SetAttributes(attribute.String("assessment.id", id))
	s.metrics.AssessmentSubmitted(lang)
	s.logger.InfoContext(ctx, "assessment submitted", "assessment_id", id, "language", lang, "responses", len(sub.Responses))
	return id, nil
}

func (s *Service) Status(ctx context.Context, assessmentID string) (domain.Status, error) {
	ctx, span := s.tracer.Start(ctx, "assessments.Status", trace.WithAttributes(attribute.String("assessment.id", assessmentID)))
	defer span.End()
	return s.repo.Status(ctx, assessmentID)
}

func (s *Service) check(sub ports.Submission) error {
	if err := s.validate.Struct(sub.Respondent); err != nil {
		verr := domain.NewValidationError("respondent")
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			for _, f := range fields {
				verr.AddError(fmt.Sprintf("%s failed %s", f.Field(), f.Tag()))
			}
		} else {
			verr.AddError(err.Error())
		}
		return verr
	}
	return domain.ValidateResponses(sub.Responses)
}
