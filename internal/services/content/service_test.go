package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netprofile/internal/domain"
)

func TestNew_LoadsEmbeddedCatalog(t *testing.T) {
	svc, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "he"}, svc.Languages())
	for _, lang := range svc.Languages() {
		assert.Len(t, svc.Skills(lang), domain.NumSkills)
		for _, a := range domain.Archetypes {
			c, err := svc.Archetype(lang, a)
			require.NoError(t, err)
			assert.Equal(t, a, c.Key)
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Strengths)
			assert.NotEmpty(t, c.Title)
			assert.NotEmpty(t, c.Tagline)
			assert.NotEmpty(t, c.DeepDive)
			assert.NotEmpty(t, c.Risks)
			assert.NotEmpty(t, c.Recommendations)
			assert.NotEmpty(t, c.Snapshot.KeyInsight)
			assert.NotEmpty(t, c.StrengthsNarrative.FocusTraits)
			assert.NotEmpty(t, c.Challenge.FocusArea)
			assert.NotEmpty(t, c.Roadmap)
			assert.NotEmpty(t, c.Actions)
		}
	}
}

func TestService_Questions(t *testing.T) {
	svc, err := New("en")
	require.NoError(t, err)

	for _, lang := range []string{"en", "he"} {
		t.Run(lang, func(t *testing.T) {
			bank := svc.Questions(lang)
			assert.Equal(t, lang, bank.Language)
			require.Len(t, bank.Questions, domain.NumQuestions)
			for i, q := range bank.Questions {
				assert.Equal(t, i+1, q.ID)
				assert.Equal(t, domain.SkillForQuestion(q.ID), q.SkillID)
				assert.NotEmpty(t, q.Text)
			}
		})
	}

	en := svc.Questions("en")
	assert.Equal(t, "I initiate introductions with new people relevant to my work.", en.Questions[0].Text)
	assert.Equal(t, 12, en.Questions[35].SkillID)
	assert.Equal(t, "en", svc.Questions("fr").Language)
}

func TestCheckQuestions(t *testing.T) {
	assert.NoError(t, checkQuestions([]questionEntry{{ID: 1, Skill: 1}, {ID: 4, Skill: 2}}))

	err := checkQuestions([]questionEntry{{ID: 4, Skill: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 4 filed under skill 1, scores into skill 2")

	err = checkQuestions([]questionEntry{{ID: 7, Skill: 3}, {ID: 7, Skill: 3}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate question 7")
}

func TestService_Resolve(t *testing.T) {
	svc, err := New("en")
	require.NoError(t, err)

	tests := []struct {
		in       string
		expected string
	}{
		{"en", "en"},
		{"he", "he"},
		{"he-IL", "he"},
		{"en-GB", "en"},
		{"he-IL,he;q=0.9,en;q=0.8", "he"},
		{"fr", "en"},
		{"", "en"},
		{"not a language", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Resolve(tt.in))
		})
	}
}

func TestService_Archetype(t *testing.T) {
	svc, err := New("en")
	require.NoError(t, err)

	c, err := svc.Archetype("en", domain.Bridge)
	require.NoError(t, err)
	assert.Equal(t, "Strategic Bridge", c.Name)
	assert.Equal(t, []string{"Bridging Groups", "Diversity"}, c.CoreIndicators)
	assert.Equal(t, []string{"Decentralization", "Using Connections"}, c.SupportingIndicators)

	c, err = svc.Archetype("he", domain.Gardener)
	require.NoError(t, err)
	assert.Equal(t, "מטפח רשתות", c.Name)

	c, err = svc.Archetype("he", domain.Magnet)
	require.NoError(t, err)
	assert.Equal(t, "מוקד משיכה רשתית", c.Name)
	assert.Len(t, c.Risks, 3)
	assert.Len(t, c.Recommendations, 3)

	_, err = svc.Archetype("en", domain.Archetype("hermit"))
	assert.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestService_ReturnsCopies(t *testing.T) {
	svc, err := New("en")
	require.NoError(t, err)

	skills := svc.Skills("en")
	skills[1] = "changed"
	assert.Equal(t, "Building Contacts", svc.Skills("en")[1])

	c, err := svc.Archetype("en", domain.Magnet)
	require.NoError(t, err)
	c.Strengths[0] = "changed"
	again, err := svc.Archetype("en", domain.Magnet)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Strengths[0])

	c.Recommendations[0].Actions[0] = "changed"
	c.Snapshot.TopStrengths[0] = "changed"
	again, err = svc.Archetype("en", domain.Magnet)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Recommendations[0].Actions[0])
	assert.NotEqual(t, "changed", again.Snapshot.TopStrengths[0])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		lang    string
		wantErr string
	}{
		{name: "malformed yaml", doc: "languages: [", lang: "en", wantErr: "parse content catalog"},
		{name: "no languages", doc: "languages: {}", lang: "en", wantErr: "validate content catalog"},
		{name: "too few skills", doc: "languages:\n  en:\n    skills: {1: a}\n", lang: "en", wantErr: "validate content catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc), tt.lang)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Load(catalogYAML, "de")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `default language "de"`)
}
