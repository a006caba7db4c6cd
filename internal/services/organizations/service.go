package organizations

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/publicsuffix"

	"netprofile/internal/domain"
	"netprofile/internal/observability"
	"netprofile/internal/ports"
)

// Normalize reduces a host name to its registrable domain (eTLD+1), lower
// cased. Hosts publicsuffix cannot reduce are returned as-is.
func Normalize(host string) string {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if host == "" {
		return ""
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registrable
}

// FromEmail returns the organization of an email address: the registrable
// domain of the part after the last '@'.
func FromEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return ""
	}
	return Normalize(email[at+1:])
}

type Service struct {
	summaries ports.SummaryRepository
	tracer    trace.Tracer
}

func New(summaries ports.SummaryRepository) *Service {
	return &Service{summaries: summaries, tracer: observability.Tracer("organizations")}
}

// Summary counts completed assessments of an organization by primary archetype.
// Every archetype is present in the result, with zero counts included.
func (s *Service) Summary(ctx context.Context, organization string) (domain.OrganizationSummary, error) {
	org := Normalize(organization)
	ctx, span := s.tracer.Start(ctx, "organizations.Summary", trace.WithAttributes(attribute.String("organization", org)))
	defer span.End()

	counts, err := s.summaries.CountPrimaryByOrganization(ctx, org)
	if err != nil {
		span.RecordError(err)
		return domain.OrganizationSummary{}, err
	}
	out := domain.OrganizationSummary{
		Organization: org,
		Primary:      make(map[domain.Archetype]int, len(domain.Archetypes)),
	}
	for _, a := range domain.Archetypes {
		out.Primary[a] = counts[a]
		out.Total += counts[a]
	}
	return out, nil
}
