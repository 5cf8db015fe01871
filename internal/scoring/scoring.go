// Package scoring converts recorded answers into normalized dimension,
// category and overall maturity scores. All functions are pure and
// deterministic; malformed or missing answers are excluded from both the
// numerator and the denominator rather than treated as zero.
package scoring

import (
	"aimaturity/internal/catalog"
	"aimaturity/internal/model"
)

// MaxLevel is the highest maturity level a score can map to.
const MaxLevel = 9

// questionScore computes the normalized [0,1] score for a single answered
// question. The second return is false when the answer is not scorable
// (free text, missing value, type mismatch).
func questionScore(q model.Question, a model.Answer) (float64, bool) {
	switch q.Type {
	case model.QuestionTypeScale:
		if a.Scale == nil {
			return 0, false
		}
		v := *a.Scale
		if v < 0 {
			v = 0
		}
		if v > 10 {
			v = 10
		}
		return float64(v) / 10, true

	case model.QuestionTypeYesNo:
		if a.Bool == nil {
			return 0, false
		}
		if *a.Bool {
			return 1, true
		}
		return 0, true

	case model.QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			return 0, false
		}
		// Unknown or empty choice scores as the lowest option.
		idx := 0
		for i, opt := range q.Options {
			if opt == a.Choice {
				idx = i
				break
			}
		}
		return float64(idx) / float64(len(q.Options)-1), true

	case model.QuestionTypeText:
		return 0, false
	}
	return 0, false
}

// ScoreDimension returns the weighted average score in [0,1] over the
// dimension's answered, scorable questions. Returns 0 when nothing was
// answered.
func ScoreDimension(dim model.Dimension, answers model.AnswerSet) float64 {
	var total, weight float64
	for _, q := range dim.Questions {
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		s, scorable := questionScore(q, a)
		if !scorable {
			continue
		}
		total += s * q.Weight
		weight += q.Weight
	}
	if weight == 0 {
		return 0
	}
	return total / weight
}

// ScoreAllDimensions scores every catalog dimension against the answer set.
// Dimensions with no scorable answers are omitted from the map.
func ScoreAllDimensions(answers model.AnswerSet) map[string]float64 {
	scores := make(map[string]float64)
	for _, dim := range catalog.Dimensions {
		if !hasScorableAnswer(dim, answers) {
			continue
		}
		scores[dim.ID] = ScoreDimension(dim, answers)
	}
	return scores
}

func hasScorableAnswer(dim model.Dimension, answers model.AnswerSet) bool {
	for _, q := range dim.Questions {
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		if _, scorable := questionScore(q, a); scorable {
			return true
		}
	}
	return false
}

// ScoreCategory returns the dimension-weight-weighted average over the
// category's dimensions that are present in the score map; 0 when none are.
func ScoreCategory(category model.Category, dimensionScores map[string]float64) float64 {
	var total, weight float64
	for _, dim := range catalog.DimensionsByCategory(category) {
		s, ok := dimensionScores[dim.ID]
		if !ok {
			continue
		}
		total += s * dim.Weight
		weight += dim.Weight
	}
	if weight == 0 {
		return 0
	}
	return total / weight
}

// OverallMaturityLevel maps the weighted average of all present dimension
// scores onto the integer maturity scale. The weighted average of scores in
// [0,1] cannot exceed 1, so the only reachable out-of-range value is the
// all-maximum input flooring to 10; it is clamped to MaxLevel.
func OverallMaturityLevel(dimensionScores map[string]float64) int {
	var total, weight float64
	for _, dim := range catalog.Dimensions {
		s, ok := dimensionScores[dim.ID]
		if !ok {
			continue
		}
		total += s * dim.Weight
		weight += dim.Weight
	}
	if weight == 0 {
		return 0
	}
	level := int((total / weight) * 10)
	if level > MaxLevel {
		level = MaxLevel
	}
	if level < 0 {
		level = 0
	}
	return level
}
