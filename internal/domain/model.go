package domain

import "time"

// Core domain models used internally. API types live in internal/api; keep
// these decoupled where helpful.

// Response is a single questionnaire answer on the 1..5 scale.
type Response struct {
	QuestionID int `json:"questionId"`
	Answer     int `json:"answer"`
}

// SkillScore accumulates the answers of the three questions owned by a skill.
type SkillScore struct {
	SkillID int     `json:"skillId"`
	Total   int     `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// SkillScores is keyed by skill id (1..12).
type SkillScores map[int]SkillScore

// Archetype is one of the four classification labels.
type Archetype string

const (
	Magnet   Archetype = "magnet"
	Bridge   Archetype = "bridge"
	Gardener Archetype = "gardener"
	Pioneer  Archetype = "pioneer"
)

// Archetypes lists every archetype in canonical order. Exactly tied composites
// are ranked in this order.
var Archetypes = []Archetype{Magnet, Bridge, Gardener, Pioneer}

// Valid reports whether a is a known archetype.
func (a Archetype) Valid() bool {
	switch a {
	case Magnet, Bridge, Gardener, Pioneer:
		return true
	}
	return false
}

// ProfileResult is the output of DetermineProfile.
type ProfileResult struct {
	Primary        Archetype             `json:"primary"`
	PrimaryScore   float64               `json:"primaryScore"`
	Secondary      *Archetype            `json:"secondary"`
	SecondaryScore *float64              `json:"secondaryScore"`
	AllScores      map[Archetype]float64 `json:"allScores"`
}

// HasSecondary reports whether a near-tied secondary archetype was selected.
func (p ProfileResult) HasSecondary() bool { return p.Secondary != nil }

type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Respondent struct {
	Name  string `json:"name" validate:"max=200"`
	Email string `json:"email" validate:"required,email"`
}

// Assessment is one stored questionnaire submission and, once scored, its result.
type Assessment struct {
	ID           string
	Respondent   Respondent
	Organization string
	Language     string
	Responses    []Response
	Status       Status
	SkillScores  SkillScores
	Profile      *ProfileResult
	CreatedAt    time.Time
	CompletedAt  *time.Time
}
