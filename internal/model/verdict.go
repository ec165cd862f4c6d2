package model

// VerdictOutcome is the buy/hold/skip recommendation for a purchase.
type VerdictOutcome string

// Verdict outcome constants.
const (
	OutcomeBuy  VerdictOutcome = "buy"
	OutcomeHold VerdictOutcome = "hold"
	OutcomeSkip VerdictOutcome = "skip"
)

// ScoreExplanation pairs a normalized sub-score with its explanation.
// Score is always within [0, 1].
type ScoreExplanation struct {
	Explanation string  `json:"explanation"`
	Score       float64 `json:"score"`
}

// EvaluationReasoning holds the sub-scores and rationale behind a verdict.
type EvaluationReasoning struct {
	Rationale         string           `json:"rationale"`
	ValueConflict     ScoreExplanation `json:"value_conflict"`
	PatternRepetition ScoreExplanation `json:"pattern_repetition"`
	EmotionalImpulse  ScoreExplanation `json:"emotional_impulse"`
	FinancialStrain   ScoreExplanation `json:"financial_strain"`
	LongTermUtility   ScoreExplanation `json:"long_term_utility"`
	EmotionalSupport  ScoreExplanation `json:"emotional_support"`
	DecisionScore     float64          `json:"decision_score"`
	ImportantPurchase bool             `json:"important_purchase"`
}

// EvaluationResult is the terminal output of the scoring engine.
// Confidence is always within [0.5, 0.95].
type EvaluationResult struct {
	Outcome    VerdictOutcome      `json:"outcome"`
	Reasoning  EvaluationReasoning `json:"reasoning"`
	Confidence float64             `json:"confidence"`
}
