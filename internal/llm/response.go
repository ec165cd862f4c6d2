// Package llm defines the evaluation response schema expected from an
// LLM and the adapter that translates such responses into domain
// evaluation results. Actually invoking a provider happens elsewhere;
// this package only understands the wire shape.
package llm

// ScorePayload is one sub-score in an LLM evaluation response.
type ScorePayload struct {
	Explanation string  `json:"explanation"`
	Score       float64 `json:"score"`
}

// EvaluationResponse is the JSON document an LLM must produce when
// evaluating a purchase. Field names match the prompt's output schema.
type EvaluationResponse struct {
	ValueConflict    ScorePayload `json:"value_conflict"`
	EmotionalImpulse ScorePayload `json:"emotional_impulse"`
	LongTermUtility  ScorePayload `json:"long_term_utility"`
	EmotionalSupport ScorePayload `json:"emotional_support"`
	Rationale        string       `json:"rationale"`
}
