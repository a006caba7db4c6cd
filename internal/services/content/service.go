package content

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"netprofile/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

var ErrUnknownArchetype = errors.New("unknown archetype")

type catalogFile struct {
	Languages map[string]languageContent `yaml:"languages" validate:"required,min=1,dive"`
}

type languageContent struct {
	Skills     map[int]string                      `yaml:"skills" validate:"len=12,dive,required"`
	Archetypes map[domain.Archetype]archetypeEntry `yaml:"archetypes" validate:"len=4,dive"`
	Questions  []questionEntry                     `yaml:"questions" validate:"len=36,dive"`
}

type questionEntry struct {
	ID    int    `yaml:"id" validate:"gte=1,lte=36"`
	Skill int    `yaml:"skill" validate:"gte=1,lte=12"`
	Text  string `yaml:"text" validate:"required"`
}

type archetypeEntry struct {
	Name               string                    `yaml:"name" validate:"required"`
	Title              string                    `yaml:"title" validate:"required"`
	Tagline            string                    `yaml:"tagline" validate:"required"`
	Description        string                    `yaml:"description" validate:"required"`
	DeepDive           []string                  `yaml:"deepDive" validate:"required,min=1"`
	Core               []string                  `yaml:"core" validate:"required,min=1"`
	Supporting         []string                  `yaml:"supporting" validate:"required,min=1"`
	Reinforcing        []string                  `yaml:"reinforcing" validate:"required,min=1"`
	Strengths          []string                  `yaml:"strengths" validate:"required,min=1"`
	StrengthDetails    []string                  `yaml:"strengthDetails" validate:"required,min=1"`
	Challenges         []string                  `yaml:"challenges"`
	Risks              []domain.TitledText       `yaml:"risks" validate:"required,min=1,dive"`
	Recommendations    []domain.Recommendation   `yaml:"recommendations" validate:"required,min=1,dive"`
	Snapshot           domain.Snapshot           `yaml:"snapshot"`
	StrengthsNarrative domain.StrengthsNarrative `yaml:"strengthsNarrative"`
	Challenge          domain.Challenge          `yaml:"challenge"`
	Roadmap            []domain.Recommendation   `yaml:"roadmap" validate:"required,min=1,dive"`
	Actions            []domain.ActionItem       `yaml:"actions" validate:"required,min=1,dive"`
}

// Service serves archetype and skill content in the catalog's languages.
// Requested languages are matched against the catalog; anything unmatched
// resolves to the default language.
type Service struct {
	langs   map[string]languageContent
	codes   []string // aligned with the matcher's supported tags
	matcher language.Matcher
}

// New loads the embedded catalog.
func New(defaultLang string) (*Service, error) {
	return Load(catalogYAML, defaultLang)
}

// Load parses and validates a catalog document.
func Load(data []byte, defaultLang string) (*Service, error) {
	var cat catalogFile
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse content catalog: %w", err)
	}
	if err := validator.New().Struct(cat); err != nil {
		return nil, fmt.Errorf("validate content catalog: %w", err)
	}
	if _, ok := cat.Languages[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %q not in content catalog", defaultLang)
	}
	for code, lc := range cat.Languages {
		for _, a := range domain.Archetypes {
			if _, ok := lc.Archetypes[a]; !ok {
				return nil, fmt.Errorf("content catalog %s: missing archetype %s", code, a)
			}
		}
		if err := checkQuestions(lc.Questions); err != nil {
			return nil, fmt.Errorf("content catalog %s: %w", code, err)
		}
	}

	// The matcher falls back to its first tag, so the default goes first.
	codes := []string{defaultLang}
	for _, code := range slices.Sorted(maps.Keys(cat.Languages)) {
		if code != defaultLang {
			codes = append(codes, code)
		}
	}
	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("content catalog language %q: %w", code, err)
		}
		tags = append(tags, tag)
	}

	return &Service{
		langs:   cat.Languages,
		codes:   codes,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Resolve maps a language code or Accept-Language value to a catalog language.
func (s *Service) Resolve(lang string) string {
	_, idx := language.MatchStrings(s.matcher, lang)
	return s.codes[idx]
}

// Languages lists the catalog languages, default first.
func (s *Service) Languages() []string { return slices.Clone(s.codes) }

func (s *Service) Archetype(lang string, a domain.Archetype) (domain.ArchetypeContent, error) {
	entry, ok := s.langs[s.Resolve(lang)].Archetypes[a]
	if !ok {
		return domain.ArchetypeContent{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, a)
	}
	return domain.ArchetypeContent{
		Key:                   a,
		Name:                  entry.Name,
		Title:                 entry.Title,
		Tagline:               entry.Tagline,
		Description:           entry.Description,
		DeepDive:              slices.Clone(entry.DeepDive),
		CoreIndicators:        slices.Clone(entry.Core),
		SupportingIndicators:  slices.Clone(entry.Supporting),
		ReinforcingIndicators: slices.Clone(entry.Reinforcing),
		Strengths:             slices.Clone(entry.Strengths),
		StrengthDetails:       slices.Clone(entry.StrengthDetails),
		Challenges:            slices.Clone(entry.Challenges),
		Risks:                 slices.Clone(entry.Risks),
		Recommendations:       cloneRecommendations(entry.Recommendations),
		Snapshot: domain.Snapshot{
			KeyInsight:   entry.Snapshot.KeyInsight,
			TopStrengths: slices.Clone(entry.Snapshot.TopStrengths),
			GrowthAreas:  slices.Clone(entry.Snapshot.GrowthAreas),
		},
		StrengthsNarrative: domain.StrengthsNarrative{
			Narrative:   entry.StrengthsNarrative.Narrative,
			FocusTraits: slices.Clone(entry.StrengthsNarrative.FocusTraits),
		},
		Challenge: entry.Challenge,
		Roadmap:   cloneRecommendations(entry.Roadmap),
		Actions:   slices.Clone(entry.Actions),
	}, nil
}

func cloneRecommendations(in []domain.Recommendation) []domain.Recommendation {
	out := make([]domain.Recommendation, len(in))
	for i, r := range in {
		r.Actions = slices.Clone(r.Actions)
		out[i] = r
	}
	return out
}

// Questions returns the questionnaire in the resolved language, ordered by id.
func (s *Service) Questions(lang string) domain.QuestionBank {
	code := s.Resolve(lang)
	entries := s.langs[code].Questions
	bank := domain.QuestionBank{Language: code, Questions: make([]domain.Question, 0, len(entries))}
	for _, q := range entries {
		bank.Questions = append(bank.Questions, domain.Question{ID: q.ID, SkillID: q.Skill, Text: q.Text})
	}
	slices.SortFunc(bank.Questions, func(a, b domain.Question) int { return a.ID - b.ID })
	return bank
}

// checkQuestions requires each id once and every question filed under
// the skill its id scores into.
func checkQuestions(qs []questionEntry) error {
	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question %d", q.ID)
		}
		seen[q.ID] = true
		if want := domain.SkillForQuestion(q.ID); q.Skill != want {
			return fmt.Errorf("question %d filed under skill %d, scores into skill %d", q.ID, q.Skill, want)
		}
	}
	return nil
}

// Skills returns skill names keyed by skill id.
func (s *Service) Skills(lang string) map[int]string {
	return maps.Clone(s.langs[s.Resolve(lang)].Skills)
}
