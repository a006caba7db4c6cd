package domain

import "sort"

// Indicator is a named classifier input derived from one or two skill averages.
type Indicator string

const (
	Building    Indicator = "building"
	Maintaining Indicator = "maintaining"
	Using       Indicator = "using"
	Diversity   Indicator = "diversity"
	Reciprocity Indicator = "reciprocity"
	Trust       Indicator = "trust"
	Safety      Indicator = "safety"
	Bridging    Indicator = "bridging"
	Attracting  Indicator = "attracting"
	Value       Indicator = "value"
	Leadership  Indicator = "leadership"
)

// indicatorSkills maps single-skill indicators to their skill id. Diversity
// spans skills 4 and 5 and is handled separately.
var indicatorSkills = map[Indicator]int{
	Building:    1,
	Maintaining: 2,
	Using:       3,
	Reciprocity: 6,
	Trust:       7,
	Safety:      8,
	Bridging:    9,
	Attracting:  10,
	Value:       11,
	Leadership:  12,
}

// maxAnswer anchors the inverted decentralization term of the bridge composite.
const maxAnswer = float64(MaxAnswer)

// secondaryGap is the exclusive upper bound on primary-secondary distance.
const secondaryGap = 0.4

type weightedTerm struct {
	indicator Indicator
	weight    float64
	inverse   bool // contributes (5 - value) instead of value
}

// Weights are listed core first, then supporting, then reinforcing; each
// table sums to 1.0. Terms are accumulated in this order.
var profileWeights = map[Archetype][]weightedTerm{
	Magnet: {
		{indicator: Attracting, weight: 0.20},
		{indicator: Trust, weight: 0.20},
		{indicator: Safety, weight: 0.175},
		{indicator: Value, weight: 0.175},
		{indicator: Bridging, weight: 0.125},
		{indicator: Using, weight: 0.125},
	},
	Bridge: {
		{indicator: Bridging, weight: 0.225},
		{indicator: Diversity, weight: 0.225},
		{indicator: Attracting, weight: 0.175, inverse: true},
		{indicator: Using, weight: 0.175},
		{indicator: Leadership, weight: 0.20},
	},
	Gardener: {
		{indicator: Maintaining, weight: 0.225},
		{indicator: Reciprocity, weight: 0.225},
		{indicator: Trust, weight: 0.175},
		{indicator: Safety, weight: 0.175},
		{indicator: Value, weight: 0.20},
	},
	Pioneer: {
		{indicator: Building, weight: 0.225},
		{indicator: Diversity, weight: 0.225},
		{indicator: Using, weight: 0.175},
		{indicator: Bridging, weight: 0.175},
		{indicator: Leadership, weight: 0.20},
	},
}

type gate struct {
	indicator Indicator
	min       float64
}

// thresholds must all pass for an archetype to be an eligible candidate.
var thresholds = map[Archetype][2]gate{
	Magnet:   {{Attracting, 4.2}, {Trust, 4.0}},
	Bridge:   {{Bridging, 4.0}, {Diversity, 3.6}},
	Gardener: {{Maintaining, 4.0}, {Reciprocity, 4.0}},
	Pioneer:  {{Building, 4.0}, {Diversity, 3.8}},
}

// Indicators returns the eleven indicator values for scores. Missing skills
// count as 0.
func Indicators(scores SkillScores) map[Indicator]float64 {
	out := make(map[Indicator]float64, len(indicatorSkills)+1)
	for ind, skill := range indicatorSkills {
		out[ind] = scores.Average(skill)
	}
	out[Diversity] = (scores.Average(4) + scores.Average(5)) / 2
	return out
}

// ProfileScore returns the weighted composite for archetype a, rounded to two
// decimals. Unknown archetypes score 0.
func ProfileScore(scores SkillScores, a Archetype) float64 {
	return profileScore(Indicators(scores), a)
}

func profileScore(ind map[Indicator]float64, a Archetype) float64 {
	var score float64
	for _, t := range profileWeights[a] {
		v := ind[t.indicator]
		if t.inverse {
			v = maxAnswer - v
		}
		// Explicit conversion keeps each product rounded before the add.
		score += float64(v * t.weight)
	}
	return round(score, 2)
}

// MeetsThreshold reports whether scores clear both eligibility gates of a.
func MeetsThreshold(scores SkillScores, a Archetype) bool {
	return meetsThreshold(Indicators(scores), a)
}

func meetsThreshold(ind map[Indicator]float64, a Archetype) bool {
	gates, ok := thresholds[a]
	if !ok {
		return false
	}
	for _, g := range gates {
		if ind[g.indicator] < g.min {
			return false
		}
	}
	return true
}

// DetermineProfile classifies scores into a primary and, when near-tied, a
// secondary archetype.
//
// Composites are computed for all four archetypes. Only archetypes clearing
// their gates are ranked; when none does, all four are. A secondary is
// reported only when it trails the primary by less than 0.4. Equal composites
// keep the canonical Archetypes order.
func DetermineProfile(scores SkillScores) ProfileResult {
	ind := Indicators(scores)

	all := make(map[Archetype]float64, len(Archetypes))
	candidates := make([]Archetype, 0, len(Archetypes))
	for _, a := range Archetypes {
		all[a] = profileScore(ind, a)
		if meetsThreshold(ind, a) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, Archetypes...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return all[candidates[i]] > all[candidates[j]]
	})

	res := ProfileResult{
		Primary:      candidates[0],
		PrimaryScore: all[candidates[0]],
		AllScores:    all,
	}
	if len(candidates) > 1 {
		second := candidates[1]
		score := all[second]
		// The gap is the raw float difference of the rounded composites.
		if res.PrimaryScore-score < secondaryGap {
			res.Secondary = &second
			res.SecondaryScore = &score
		}
	}
	return res
}

// Score runs the full pipeline: aggregation followed by classification.
func Score(responses []Response) (SkillScores, ProfileResult) {
	scores := CalculateScores(responses)
	return scores, DetermineProfile(scores)
}
