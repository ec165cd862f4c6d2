package verdict

import (
	"math"

	"github.com/hindsight-labs/hindsight/internal/model"
)

// clamp01 limits a value to the [0, 1] range.
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// BuildScore constructs a ScoreExplanation with the score clamped to [0, 1].
func BuildScore(score float64, explanation string) model.ScoreExplanation {
	return model.ScoreExplanation{
		Score:       clamp01(score),
		Explanation: explanation,
	}
}

// SubScores holds the six normalized inputs to the decision model.
type SubScores struct {
	ValueConflict     float64
	PatternRepetition float64
	EmotionalImpulse  float64
	FinancialStrain   float64
	LongTermUtility   float64
	EmotionalSupport  float64
}

// ComputeDecisionScore evaluates the linear decision model. Higher
// scores push toward skip; utility and support pull toward buy.
func ComputeDecisionScore(s SubScores) float64 {
	return Weights.Intercept +
		Weights.ValueConflict*s.ValueConflict +
		Weights.PatternRepetition*s.PatternRepetition +
		Weights.EmotionalImpulse*s.EmotionalImpulse +
		Weights.FinancialStrain*s.FinancialStrain -
		Weights.LongTermUtility*s.LongTermUtility -
		Weights.EmotionalSupport*s.EmotionalSupport
}

// DecisionFromScore maps a decision score onto an outcome.
// score >= 0.7 skips, score >= 0.4 holds, anything lower buys.
func DecisionFromScore(score float64) model.VerdictOutcome {
	if score >= 0.7 {
		return model.OutcomeSkip
	}
	if score >= 0.4 {
		return model.OutcomeHold
	}
	return model.OutcomeBuy
}

// ConfidenceFromScore derives confidence from distance to the 0.5
// midpoint: certainty is highest far from the decision boundary.
// The result is bounded to [0.5, 0.95].
func ConfidenceFromScore(score float64) float64 {
	distance := math.Min(1, math.Abs(score-0.5))
	return math.Max(0.5, math.Min(0.95, 0.95-distance*0.45))
}

// ComputeFinancialStrain measures price pressure against a weekly
// budget. Returns 0 when price or budget is absent or non-positive,
// and 1 outright when an unimportant purchase exceeds a third of the
// weekly budget.
func ComputeFinancialStrain(price, weeklyBudget *float64, isImportant bool) float64 {
	if price == nil || weeklyBudget == nil || *price <= 0 || *weeklyBudget <= 0 {
		return 0
	}
	if !isImportant && *price > *weeklyBudget/3 {
		return 1
	}
	return clamp01(*price / *weeklyBudget)
}
