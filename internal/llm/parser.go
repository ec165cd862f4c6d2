package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hindsight-labs/hindsight/internal/model"
	"github.com/hindsight-labs/hindsight/internal/verdict"
)

// ParseResponse decodes an LLM evaluation response. Models often wrap
// JSON in markdown fences or prose, so the document is sliced from the
// first '{' to the last '}' before unmarshaling.
func ParseResponse(content string) (EvaluationResponse, error) {
	var resp EvaluationResponse

	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return resp, fmt.Errorf("no JSON object found in response")
	}

	if err := json.Unmarshal([]byte(content[start:end+1]), &resp); err != nil {
		return resp, fmt.Errorf("failed to decode evaluation response: %w", err)
	}
	return resp, nil
}

// ToEvaluationResult combines LLM sub-scores with locally computed
// pattern and budget signals into a full evaluation. Scores are
// clamped on entry; nil overrides default to zero with a note.
func ToEvaluationResult(resp EvaluationResponse, patternRepetition, financialStrain *model.ScoreExplanation, importantPurchase bool) model.EvaluationResult {
	valueConflict := verdict.BuildScore(resp.ValueConflict.Score, resp.ValueConflict.Explanation)
	emotionalImpulse := verdict.BuildScore(resp.EmotionalImpulse.Score, resp.EmotionalImpulse.Explanation)
	longTermUtility := verdict.BuildScore(resp.LongTermUtility.Score, resp.LongTermUtility.Explanation)
	emotionalSupport := verdict.BuildScore(resp.EmotionalSupport.Score, resp.EmotionalSupport.Explanation)

	pattern := verdict.BuildScore(0, "No history analysis available.")
	if patternRepetition != nil {
		pattern = *patternRepetition
	}
	strain := verdict.BuildScore(0, "No budget context available.")
	if financialStrain != nil {
		strain = *financialStrain
	}

	decisionScore := verdict.ComputeDecisionScore(verdict.SubScores{
		ValueConflict:     valueConflict.Score,
		PatternRepetition: pattern.Score,
		EmotionalImpulse:  emotionalImpulse.Score,
		FinancialStrain:   strain.Score,
		LongTermUtility:   longTermUtility.Score,
		EmotionalSupport:  emotionalSupport.Score,
	})

	rationale := strings.TrimSpace(resp.Rationale)
	if rationale == "" {
		rationale = "This recommendation leans on the purchase details because profile context is limited."
	}

	return model.EvaluationResult{
		Outcome:    verdict.DecisionFromScore(decisionScore),
		Confidence: verdict.ConfidenceFromScore(decisionScore),
		Reasoning: model.EvaluationReasoning{
			ValueConflict:     valueConflict,
			PatternRepetition: pattern,
			EmotionalImpulse:  emotionalImpulse,
			FinancialStrain:   strain,
			LongTermUtility:   longTermUtility,
			EmotionalSupport:  emotionalSupport,
			DecisionScore:     decisionScore,
			Rationale:         rationale,
			ImportantPurchase: importantPurchase,
		},
	}
}
