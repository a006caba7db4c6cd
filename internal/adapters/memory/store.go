// Package memory provides in-process implementations of the repository
// ports. It backs local runs without a database and the service tests.
package memory

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"netprofile/internal/domain"
	"netprofile/internal/ports"
)

type jobStatus string

const (
	jobQueued    jobStatus = "queued"
	jobRunning   jobStatus = "running"
	jobCompleted jobStatus = "completed"
	jobFailed    jobStatus = "failed"
)

type job struct {
	id           string
	assessmentID string
	status       jobStatus
	attempts     int
	reason       string
	seq          int64
	startedAt    time.Time
}

// Store keeps assessments and scoring jobs in memory. Reads and terminal job
// updates fail on a cancelled context, as they would against a database.
type Store struct {
	mu          sync.Mutex
	now         func() time.Time
	assessments map[string]domain.Assessment
	jobs        map[string]*job
	seq         int64
}

var (
	_ ports.AssessmentRepository = (*Store)(nil)
	_ ports.SummaryRepository    = (*Store)(nil)
	_ ports.JobRepository        = (*Store)(nil)
)

func New() *Store {
	return &Store{
		now:         time.Now,
		assessments: make(map[string]domain.Assessment),
		jobs:        make(map[string]*job),
	}
}

// AssessmentRepository

func (s *Store) Create(ctx context.Context, a domain.Assessment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	a.Status = domain.StatusQueued
	a.Organization = strings.ToLower(a.Organization)
	a.Responses = append([]domain.Response(nil), a.Responses...)
	a.CreatedAt = s.now()
	s.assessments[a.ID] = a

	s.seq++
	j := &job{id: uuid.NewString(), assessmentID: a.ID, status: jobQueued, seq: s.seq}
	s.jobs[j.id] = j
	return a.ID, nil
}

func (s *Store) Get(ctx context.Context, assessmentID string) (domain.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Assessment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[assessmentID]
	if !ok {
		return domain.Assessment{}, domain.ErrNotFound
	}
	a.Responses = append([]domain.Response(nil), a.Responses...)
	a.SkillScores = maps.Clone(a.SkillScores)
	if a.Profile != nil {
		p := *a.Profile
		p.AllScores = maps.Clone(p.AllScores)
		a.Profile = &p
	}
	return a, nil
}

func (s *Store) Status(ctx context.Context, assessmentID string) (domain.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[assessmentID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return a.Status, nil
}

func (s *Store) SaveResult(ctx context.Context, assessmentID string, scores domain.SkillScores, profile domain.ProfileResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[assessmentID]
	if !ok {
		return domain.ErrNotFound
	}
	a.SkillScores = maps.Clone(scores)
	profile.AllScores = maps.Clone(profile.AllScores)
	a.Profile = &profile
	s.assessments[assessmentID] = a
	return nil
}

// SummaryRepository

func (s *Store) CountPrimaryByOrganization(ctx context.Context, organization string) (map[domain.Archetype]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	organization = strings.ToLower(organization)
	out := make(map[domain.Archetype]int)
	for _, a := range s.assessments {
		if a.Organization != organization || a.Status != domain.StatusCompleted || a.Profile == nil {
			continue
		}
		out[a.Profile.Primary]++
	}
	return out, nil
}

// JobRepository

// ClaimNext takes the oldest queued job and marks it and its assessment running.
func (s *Store) ClaimNext(ctx context.Context) (ports.ScoringJob, bool, error) {
	if err := ctx.Err(); err != nil {
		return ports.ScoringJob{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	queued := make([]*job, 0)
	for _, j := range s.jobs {
		if j.status == jobQueued {
			queued = append(queued, j)
		}
	}
	if len(queued) == 0 {
		return ports.ScoringJob{}, false, nil
	}
	sort.Slice(queued, func(i, k int) bool { return queued[i].seq < queued[k].seq })
	j := queued[0]
	s.start(j)
	return ports.ScoringJob{ID: j.id, AssessmentID: j.assessmentID}, true, nil
}

func (s *Store) StartJobForAssessment(ctx context.Context, assessmentID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.assessmentID == assessmentID && j.status == jobQueued {
			s.start(j)
			return j.id, nil
		}
	}
	return "", domain.ErrNotFound
}

func (s *Store) MarkCompleted(ctx context.Context, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.finish(jobID, jobCompleted, domain.StatusCompleted, "")
}

func (s *Store) MarkFailed(ctx context.Context, jobID string, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.finish(jobID, jobFailed, domain.StatusFailed, reason)
}

// Requeue puts a claimed job and its assessment back in the queue, keeping
// its original position.
func (s *Store) Requeue(ctx context.Context, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	s.requeue(j)
	return nil
}

func (s *Store) RequeueStale(ctx context.Context, olderThan time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-olderThan)
	n := 0
	for _, j := range s.jobs {
		if j.status == jobRunning && !j.startedAt.After(cutoff) {
			s.requeue(j)
			n++
		}
	}
	return n, nil
}

func (s *Store) requeue(j *job) {
	j.status = jobQueued
	j.startedAt = time.Time{}
	if a, ok := s.assessments[j.assessmentID]; ok {
		a.Status = domain.StatusQueued
		s.assessments[a.ID] = a
	}
}

func (s *Store) start(j *job) {
	j.status = jobRunning
	j.startedAt = s.now()
	j.attempts++
	if a, ok := s.assessments[j.assessmentID]; ok {
		a.Status = domain.StatusRunning
		s.assessments[a.ID] = a
	}
}

func (s *Store) finish(jobID string, js jobStatus, as domain.Status, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	j.status = js
	j.reason = reason
	if a, ok := s.assessments[j.assessmentID]; ok {
		a.Status = as
		if as == domain.StatusCompleted {
			now := s.now()
			a.CompletedAt = &now
		}
		s.assessments[a.ID] = a
	}
	return nil
}
