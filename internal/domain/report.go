package domain

// TitledText is a short heading with a paragraph, e.g. a risk.
type TitledText struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
}

// Recommendation is a development step with concrete actions. Roadmap
// stages share the shape.
type Recommendation struct {
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description" validate:"required"`
	Actions     []string `json:"actions" yaml:"actions" validate:"required,min=1"`
}

// ActionItem is one entry of an archetype's action checklist.
type ActionItem struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Text     string `json:"text" yaml:"text" validate:"required"`
	Category string `json:"category" yaml:"category" validate:"required"`
}

// Snapshot is the executive-summary view of an archetype.
type Snapshot struct {
	KeyInsight   string   `json:"keyInsight" yaml:"keyInsight" validate:"required"`
	TopStrengths []string `json:"topStrengths" yaml:"topStrengths" validate:"required,min=1"`
	GrowthAreas  []string `json:"growthAreas" yaml:"growthAreas" validate:"required,min=1"`
}

type StrengthsNarrative struct {
	Narrative   string   `json:"narrative" yaml:"narrative" validate:"required"`
	FocusTraits []string `json:"focusTraits" yaml:"focusTraits" validate:"required,min=1"`
}

type Challenge struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
	FocusArea   string `json:"focusArea" yaml:"focusArea" validate:"required"`
}

// ArchetypeContent is the localized display content for one archetype.
type ArchetypeContent struct {
	Key                   Archetype          `json:"key"`
	Name                  string             `json:"name"`
	Title                 string             `json:"title"`
	Tagline               string             `json:"tagline"`
	Description           string             `json:"description"`
	DeepDive              []string           `json:"deepDive"`
	CoreIndicators        []string           `json:"coreIndicators"`
	SupportingIndicators  []string           `json:"supportingIndicators"`
	ReinforcingIndicators []string           `json:"reinforcingIndicators"`
	Strengths             []string           `json:"strengths"`
	StrengthDetails       []string           `json:"strengthDetails"`
	Challenges            []string           `json:"challenges"`
	Risks                 []TitledText       `json:"risks"`
	Recommendations       []Recommendation   `json:"recommendations"`
	Snapshot              Snapshot           `json:"snapshot"`
	StrengthsNarrative    StrengthsNarrative `json:"strengthsNarrative"`
	Challenge             Challenge          `json:"challenge"`
	Roadmap               []Recommendation   `json:"roadmap"`
	Actions               []ActionItem       `json:"actions"`
}

// NamedSkillScore is a SkillScore with its localized name.
type NamedSkillScore struct {
	SkillScore
	Name string `json:"name"`
}

// Report is the data a report renderer consumes for one scored assessment.
type Report struct {
	AssessmentID string            `json:"assessmentId"`
	Language     string            `json:"language"`
	Respondent   Respondent        `json:"respondent"`
	Skills       []NamedSkillScore `json:"skills"`
	Profile      ProfileResult     `json:"profile"`
	Primary      ArchetypeContent  `json:"primary"`
	Secondary    *ArchetypeContent `json:"secondary,omitempty"`
}

// OrganizationSummary counts completed assessments by primary archetype.
type OrganizationSummary struct {
	Organization string            `json:"organization"`
	Total        int               `json:"total"`
	Primary      map[Archetype]int `json:"primary"`
}

// Question is one questionnaire item. SkillID is SkillForQuestion(ID).
type Question struct {
	ID      int    `json:"id"`
	SkillID int    `json:"skillId"`
	Text    string `json:"text"`
}

// QuestionBank is the questionnaire in one language, ordered by id.
type QuestionBank struct {
	Language  string     `json:"language"`
	Questions []Question `json:"questions"`
}
