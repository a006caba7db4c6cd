package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	api "netprofile/internal/api"
	"netprofile/internal/domain"
	"netprofile/internal/observability"
	"netprofile/internal/ports"
)

// InlineScorer scores one queued assessment synchronously.
type InlineScorer interface {
	ProcessInline(ctx context.Context, assessmentID string) error
}

const (
	defaultWaitTimeout = 30 * time.Second
	maxWaitTimeout     = 5 * time.Minute
)

var _ api.StrictServerInterface = (*Server)(nil)

// Server implements the generated StrictServerInterface.
type Server struct {
	assessments   ports.Assessments
	reports       ports.Reports
	organizations ports.Organizations
	content       ports.Content
	scorer        InlineScorer
	logger        *observability.Logger
}

func New(assessments ports.Assessments, reports ports.Reports, organizations ports.Organizations, content ports.Content, scorer InlineScorer, logger *observability.Logger) *Server {
	return &Server{
		assessments:   assessments,
		reports:       reports,
		organizations: organizations,
		content:       content,
		scorer:        scorer,
		logger:        logger.Component("http"),
	}
}

// Routes returns a chi.Router mounting the generated handlers and, when
// metrics is non-nil, a /metrics endpoint.
func (s *Server) Routes(metrics http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: badRequest,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) GetQuestions(ctx context.Context, req api.GetQuestionsRequestObject) (api.GetQuestionsResponseObject, error) {
	lang := ""
	if req.Params.Lang != nil {
		lang = *req.Params.Lang
	}
	return api.GetQuestions200JSONResponse(s.content.Questions(lang)), nil
}

func (s *Server) PostAssessments(ctx context.Context, req api.PostAssessmentsRequestObject) (api.PostAssessmentsResponseObject, error) {
	body := req.Body
	sub := ports.Submission{
		Respondent: domain.Respondent{Email: body.Respondent.Email},
		Responses:  api.ToDomain(body.Responses),
	}
	if body.Respondent.Name != nil {
		sub.Respondent.Name = *body.Respondent.Name
	}
	if body.Language != nil {
		sub.Language = *body.Language
	}

	id, err := s.assessments.Submit(ctx, sub)
	if errBody, ok := validationBody(err); ok {
		return api.PostAssessments400JSONResponse(errBody), nil
	}
	if err != nil {
		return nil, err
	}

	// Blocking path: score before responding.
	if req.Params.Wait != nil && *req.Params.Wait {
		ctx2, cancel := context.WithTimeout(ctx, waitTimeout(req.Params.Timeout))
		defer cancel()
		err := s.scorer.ProcessInline(ctx2, id)
		if errors.Is(err, context.DeadlineExceeded) {
			return api.PostAssessments504JSONResponse{Error: "scoring timed out"}, nil
		}
		if err != nil {
			return nil, err
		}
		status, err := s.assessments.Status(ctx2, id)
		if err != nil {
			return nil, err
		}
		return api.PostAssessments200JSONResponse{Id: id, Status: api.AssessmentStatus(status)}, nil
	}
	return api.PostAssessments202JSONResponse{AssessmentId: id}, nil
}

// waitTimeout converts the timeout query parameter, in seconds, clamped to
// maxWaitTimeout.
func waitTimeout(seconds *int) time.Duration {
	if seconds == nil || *seconds <= 0 {
		return defaultWaitTimeout
	}
	if *seconds >= int(maxWaitTimeout/time.Second) {
		return maxWaitTimeout
	}
	return time.Duration(*seconds) * time.Second
}

func (s *Server) GetAssessmentsId(ctx context.Context, req api.GetAssessmentsIdRequestObject) (api.GetAssessmentsIdResponseObject, error) {
	status, err := s.assessments.Status(ctx, req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetAssessmentsId404JSONResponse{Error: "not found"}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetAssessmentsId200JSONResponse{Id: req.Id, Status: api.AssessmentStatus(status)}, nil
}

func (s *Server) GetAssessmentsIdReport(ctx context.Context, req api.GetAssessmentsIdReportRequestObject) (api.GetAssessmentsIdReportResponseObject, error) {
	lang := ""
	if req.Params.Lang != nil {
		lang = *req.Params.Lang
	}
	report, err := s.reports.Get(ctx, req.Id, lang)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return api.GetAssessmentsIdReport404JSONResponse{Error: "not found"}, nil
	case errors.Is(err, domain.ErrNotReady):
		return api.GetAssessmentsIdReport409JSONResponse{Error: err.Error()}, nil
	case err != nil:
		return nil, err
	}
	return api.GetAssessmentsIdReport200JSONResponse(report), nil
}

// PostScore runs the scoring core without storing anything.
func (s *Server) PostScore(ctx context.Context, req api.PostScoreRequestObject) (api.PostScoreResponseObject, error) {
	responses := api.ToDomain(req.Body.Responses)
	if req.Body.Strict != nil && *req.Body.Strict {
		if errBody, ok := validationBody(domain.ValidateResponses(responses)); ok {
			return api.PostScore400JSONResponse(errBody), nil
		}
	}
	scores, profile := domain.Score(responses)
	return api.PostScore200JSONResponse{SkillScores: scores, Profile: profile}, nil
}

func (s *Server) GetOrganizationsDomainSummary(ctx context.Context, req api.GetOrganizationsDomainSummaryRequestObject) (api.GetOrganizationsDomainSummaryResponseObject, error) {
	summary, err := s.organizations.Summary(ctx, req.Domain)
	if err != nil {
		return nil, err
	}
	return api.GetOrganizationsDomainSummary200JSONResponse(summary), nil
}

func validationBody(err error) (api.Error, bool) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return api.Error{}, false
	}
	details := append([]string(nil), verr.Errors...)
	return api.Error{Error: verr.Error(), Details: &details}, true
}

// writeError maps errors returned by the handlers to status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if body, ok := validationBody(err); ok {
		writeJSON(w, http.StatusBadRequest, body)
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, api.Error{Error: "not found"})
	case errors.Is(err, domain.ErrNotReady):
		writeJSON(w, http.StatusConflict, api.Error{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, api.Error{Error: "scoring timed out"})
	default:
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeJSON(w, http.StatusInternalServerError, api.Error{Error: "internal error"})
	}
}

// badRequest answers malformed parameters and bodies.
func badRequest(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
