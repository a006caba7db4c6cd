package domain

import "math"

const (
	// NumSkills is the number of scored skill dimensions.
	NumSkills = 12
	// QuestionsPerSkill is the fixed size of each skill's question block.
	QuestionsPerSkill = 3
	// NumQuestions is the questionnaire length needed for full coverage.
	NumQuestions = NumSkills * QuestionsPerSkill

	MinAnswer = 1
	MaxAnswer = 5
)

// SkillForQuestion maps a question id to the skill that owns it:
// ceil(questionID / 3). Ids outside 1..36 map outside 1..12.
func SkillForQuestion(questionID int) int {
	if questionID <= 0 {
		// ceil of a non-positive quotient is never a valid skill.
		return questionID / QuestionsPerSkill
	}
	return (questionID + QuestionsPerSkill - 1) / QuestionsPerSkill
}

// CalculateScores reduces responses into per-skill totals and averages.
//
// Every skill 1..12 is present in the result even when no response maps to it.
// Responses for unknown questions are dropped; repeated responses for the same
// question all accumulate. Answers are summed as given, without range checks.
func CalculateScores(responses []Response) SkillScores {
	scores := make(SkillScores, NumSkills)
	for id := 1; id <= NumSkills; id++ {
		scores[id] = SkillScore{SkillID: id}
	}

	for _, r := range responses {
		id := SkillForQuestion(r.QuestionID)
		s, ok := scores[id]
		if !ok {
			continue
		}
		s.Total += r.Answer
		s.Count++
		scores[id] = s
	}

	for id, s := range scores {
		if s.Count > 0 {
			s.Average = round(float64(s.Total)/float64(s.Count), 1)
			scores[id] = s
		}
	}
	return scores
}

// Average returns the average for skillID, or 0 when the skill is absent.
func (s SkillScores) Average(skillID int) float64 {
	return s[skillID].Average
}

// round rounds half away from zero to the given number of decimal places.
func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
