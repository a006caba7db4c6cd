package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skillsFromAverages builds SkillScores whose skill i+1 averages avgs[i].
func skillsFromAverages(avgs ...float64) SkillScores {
	out := make(SkillScores, len(avgs))
	for i, avg := range avgs {
		out[i+1] = SkillScore{SkillID: i + 1, Count: 1, Average: avg}
	}
	return out
}

func archetypePtr(a Archetype) *Archetype { return &a }
func floatPtr(f float64) *float64 { return &f }

func TestIndicators(t *testing.T) {
	scores := skillsFromAverages(1.1, 2.2, 3.3, 4.0, 3.0, 4.4, 4.5, 4.6, 4.7, 4.8, 4.9, 5.0)

	ind := Indicators(scores)

	require.Len(t, ind, 11)
	assert.Equal(t, 1.1, ind[Building])
	assert.Equal(t, 2.2, ind[Maintaining])
	assert.Equal(t, 3.3, ind[Using])
	assert.InDelta(t, 3.5, ind[Diversity], 1e-9)
	assert.Equal(t, 4.4, ind[Reciprocity])
	assert.Equal(t, 4.5, ind[Trust])
	assert.Equal(t, 4.6, ind[Safety])
	assert.Equal(t, 4.7, ind[Bridging])
	assert.Equal(t, 4.8, ind[Attracting])
	assert.Equal(t, 4.9, ind[Value])
	assert.Equal(t, 5.0, ind[Leadership])
}

func TestIndicators_MissingSkillsDefaultToZero(t *testing.T) {
	ind := Indicators(SkillScores{4: {SkillID: 4, Average: 4.0}})

	assert.Equal(t, 2.0, ind[Diversity])
	assert.Zero(t, ind[Building])
	assert.Zero(t, ind[Leadership])
}

func TestProfileScore(t *testing.T) {
	all5 := CalculateScores(uniformResponses(5))
	all3 := CalculateScores(uniformResponses(3))

	tests := []struct {
		name      string
		scores    SkillScores
		archetype Archetype
		expected  float64
	}{
		{"magnet at maximum", all5, Magnet, 5.0},
		{"bridge decentralization term vanishes at maximum", all5, Bridge, 4.13}, // 4.125
		{"gardener at maximum", all5, Gardener, 5.0},
		{"pioneer at maximum", all5, Pioneer, 5.0},
		{"magnet at midpoint", all3, Magnet, 3.0},
		{"bridge at midpoint", all3, Bridge, 2.83},
		{"bridge without any skills", SkillScores{}, Bridge, 0.88}, // 5 * 0.175
		{"magnet without any skills", SkillScores{}, Magnet, 0},
		{"unknown archetype", all5, Archetype("hermit"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProfileScore(tt.scores, tt.archetype))
		})
	}
}

func TestMeetsThreshold(t *testing.T) {
	tests := []struct {
		name      string
		scores    SkillScores
		archetype Archetype
		expected  bool
	}{
		{"magnet at both minimums", skillsFromAverages(0, 0, 0, 0, 0, 0, 4.0, 0, 0, 4.2, 0, 0), Magnet, true},
		{"magnet attracting just short", skillsFromAverages(0, 0, 0, 0, 0, 0, 5.0, 0, 0, 4.1, 0, 0), Magnet, false},
		{"bridge at both minimums", skillsFromAverages(0, 0, 0, 3.6, 3.6, 0, 0, 0, 4.0, 0, 0, 0), Bridge, true},
		{"bridge diversity short", skillsFromAverages(0, 0, 0, 3.5, 3.6, 0, 0, 0, 5.0, 0, 0, 0), Bridge, false},
		{"gardener at both minimums", skillsFromAverages(0, 4.0, 0, 0, 0, 4.0, 0, 0, 0, 0, 0, 0), Gardener, true},
		{"gardener reciprocity short", skillsFromAverages(0, 5.0, 0, 0, 0, 3.9, 0, 0, 0, 0, 0, 0), Gardener, false},
		{"pioneer at both minimums", skillsFromAverages(4.0, 0, 0, 3.8, 3.8, 0, 0, 0, 0, 0, 0, 0), Pioneer, true},
		{"pioneer passes bridge diversity but not its own", skillsFromAverages(5.0, 0, 0, 3.7, 3.7, 0, 0, 0, 0, 0, 0, 0), Pioneer, false},
		{"unknown archetype never passes", CalculateScores(uniformResponses(5)), Archetype("hermit"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeetsThreshold(tt.scores, tt.archetype))
		})
	}
}

func TestDetermineProfile(t *testing.T) {
	tests := []struct {
		name     string
		scores   SkillScores
		expected ProfileResult
	}{
		{
			name:   "all answers five ties three archetypes in canonical order",
			scores: CalculateScores(uniformResponses(5)),
			expected: ProfileResult{
				Primary:        Magnet,
				PrimaryScore:   5.0,
				Secondary:      archetypePtr(Gardener),
				SecondaryScore: floatPtr(5.0),
				AllScores:      map[Archetype]float64{Magnet: 5.0, Bridge: 4.13, Gardener: 5.0, Pioneer: 5.0},
			},
		},
		{
			name:   "neutral answers fail every gate and fall back to all archetypes",
			scores: CalculateScores(uniformResponses(3)),
			expected: ProfileResult{
				Primary:        Magnet,
				PrimaryScore:   3.0,
				Secondary:      archetypePtr(Gardener),
				SecondaryScore: floatPtr(3.0),
				AllScores:      map[Archetype]float64{Magnet: 3.0, Bridge: 2.83, Gardener: 3.0, Pioneer: 3.0},
			},
		},
		{
			name:   "lowest answers favour bridge through its inverted term",
			scores: CalculateScores(uniformResponses(1)),
			expected: ProfileResult{
				Primary:      Bridge,
				PrimaryScore: 1.53,
				AllScores:    map[Archetype]float64{Magnet: 1.0, Bridge: 1.53, Gardener: 1.0, Pioneer: 1.0},
			},
		},
		{
			name:   "empty input still yields a primary",
			scores: CalculateScores(nil),
			expected: ProfileResult{
				Primary:      Bridge,
				PrimaryScore: 0.88,
				AllScores:    map[Archetype]float64{Magnet: 0, Bridge: 0.88, Gardener: 0, Pioneer: 0},
			},
		},
		{
			name:   "gap of 0.39 reports a secondary",
			scores: skillsFromAverages(4.0, 4.0, 4.0, 4.0, 4.0, 5.0, 4.0, 4.0, 4.0, 4.0, 4.8, 4.0),
			expected: ProfileResult{
				Primary:        Gardener,
				PrimaryScore:   4.39,
				Secondary:      archetypePtr(Pioneer),
				SecondaryScore: floatPtr(4.0),
				AllScores:      map[Archetype]float64{Magnet: 4.14, Bridge: 3.47, Gardener: 4.39, Pioneer: 4.0},
			},
		},
		{
			name:   "gap of 0.40 suppresses the secondary",
			scores: skillsFromAverages(4.0, 4.0, 4.0, 4.0, 4.0, 4.9, 4.0, 4.0, 4.0, 4.0, 5.0, 4.0),
			expected: ProfileResult{
				Primary:      Gardener,
				PrimaryScore: 4.4,
				AllScores:    map[Archetype]float64{Magnet: 4.18, Bridge: 3.47, Gardener: 4.4, Pioneer: 4.0},
			},
		},
		{
			name: "gap just below 0.40 in float64 reports a secondary",
			// 4.27 - 3.87 evaluates to 0.3999... in float64.
			scores: skillsFromAverages(4.8, 3.3, 4.0, 3.5, 4.7, 5.0, 4.4, 4.5, 3.0, 4.7, 4.5, 3.2),
			expected: ProfileResult{
				Primary:        Magnet,
				PrimaryScore:   4.27,
				Secondary:      archetypePtr(Pioneer),
				SecondaryScore: floatPtr(3.87),
				AllScores:      map[Archetype]float64{Magnet: 4.27, Bridge: 2.99, Gardener: 4.33, Pioneer: 3.87},
			},
		},
		{
			name:   "ineligible archetype with the highest composite is skipped",
			scores: skillsFromAverages(4.0, 4.0, 4.0, 4.0, 4.0, 4.0, 5.0, 5.0, 4.0, 4.1, 4.0, 4.0),
			expected: ProfileResult{
				Primary:        Gardener,
				PrimaryScore:   4.35,
				Secondary:      archetypePtr(Pioneer),
				SecondaryScore: floatPtr(4.0),
				AllScores:      map[Archetype]float64{Magnet: 4.39, Bridge: 3.46, Gardener: 4.35, Pioneer: 4.0},
			},
		},
		{
			name:   "single eligible archetype has no secondary",
			scores: skillsFromAverages(0, 4.0, 0, 0, 0, 4.0, 0, 0, 0, 0, 0, 0),
			expected: ProfileResult{
				Primary:      Gardener,
				PrimaryScore: 1.8,
				AllScores:    map[Archetype]float64{Magnet: 0, Bridge: 0.88, Gardener: 1.8, Pioneer: 0},
			},
		},
		{
			name:   "sparse map defaults missing skills to zero",
			scores: SkillScores{10: {SkillID: 10, Count: 3, Total: 15, Average: 5.0}},
			expected: ProfileResult{
				Primary:      Magnet,
				PrimaryScore: 1.0,
				AllScores:    map[Archetype]float64{Magnet: 1.0, Bridge: 0, Gardener: 0, Pioneer: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineProfile(tt.scores)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected.Secondary != nil, got.HasSecondary())
		})
	}
}

func TestDetermineProfile_AlwaysReportsAllScores(t *testing.T) {
	res := DetermineProfile(nil)

	require.Len(t, res.AllScores, len(Archetypes))
	for _, a := range Archetypes {
		assert.Contains(t, res.AllScores, a)
	}
	assert.True(t, res.Primary.Valid())
}

func TestScore_IsIdempotent(t *testing.T) {
	responses := []Response{{1, 5}, {2, 4}, {3, 4}, {4, 2}, {13, 5}, {27, 3}, {28, 5}, {29, 4}, {30, 5}}

	scores1, profile1 := Score(responses)
	scores2, profile2 := Score(responses)

	assert.Equal(t, scores1, scores2)
	assert.Equal(t, profile1, profile2)
	assert.Equal(t, DetermineProfile(scores1), profile1)
}

func TestScore_RawGapBelowThreshold(t *testing.T) {
	// 3.12 - 2.72 evaluates to 0.3999... in float64; nothing passes a gate.
	answers := []int{1, 2, 3, 1, 1, 5, 1, 4, 5, 1, 4, 1, 1, 1, 5, 4, 1, 3, 2, 3, 2, 4, 1, 1, 3, 2, 3, 4, 4, 5, 4, 5, 3, 4, 3, 4}
	responses := make([]Response, len(answers))
	for i, a := range answers {
		responses[i] = Response{QuestionID: i + 1, Answer: a}
	}

	_, profile := Score(responses)

	assert.Equal(t, ProfileResult{
		Primary:        Magnet,
		PrimaryScore:   3.12,
		Secondary:      archetypePtr(Pioneer),
		SecondaryScore: floatPtr(2.72),
		AllScores:      map[Archetype]float64{Magnet: 3.12, Bridge: 2.53, Gardener: 2.68, Pioneer: 2.72},
	}, profile)
}
