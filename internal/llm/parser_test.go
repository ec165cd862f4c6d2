package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindsight-labs/hindsight/internal/model"
)

const validResponse = `{
	"value_conflict": {"score": 0.8, "explanation": "Conflicts with mindful spending."},
	"emotional_impulse": {"score": 0.7, "explanation": "Urgency-driven framing."},
	"long_term_utility": {"score": 0.2, "explanation": "Duplicates an item you own."},
	"emotional_support": {"score": 0.1, "explanation": "Little lasting comfort."},
	"rationale": "This looks like an impulse buy."
}`

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "bare JSON",
			content: validResponse,
		},
		{
			name:    "markdown fenced JSON",
			content: "```json\n" + validResponse + "\n```",
		},
		{
			name:    "prose around the JSON",
			content: "Here is my evaluation:\n" + validResponse + "\nLet me know if you need more.",
		},
		{
			name:    "no JSON object",
			content: "I cannot evaluate this purchase.",
			wantErr: true,
			errMsg:  "no JSON object found",
		},
		{
			name:    "empty content",
			content: "",
			wantErr: true,
			errMsg:  "no JSON object found",
		},
		{
			name:    "malformed JSON",
			content: `{"value_conflict": }`,
			wantErr: true,
			errMsg:  "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseResponse(tt.content)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, 0.8, resp.ValueConflict.Score, 1e-9)
			assert.InDelta(t, 0.7, resp.EmotionalImpulse.Score, 1e-9)
			assert.InDelta(t, 0.2, resp.LongTermUtility.Score, 1e-9)
			assert.InDelta(t, 0.1, resp.EmotionalSupport.Score, 1e-9)
			assert.Equal(t, "This looks like an impulse buy.", resp.Rationale)
		})
	}
}

func TestToEvaluationResult(t *testing.T) {
	resp := EvaluationResponse{
		ValueConflict:    ScorePayload{Score: 0.8, Explanation: "Conflicts with mindful spending."},
		EmotionalImpulse: ScorePayload{Score: 0.7, Explanation: "Urgency-driven framing."},
		LongTermUtility:  ScorePayload{Score: 0.2, Explanation: "Duplicates an item you own."},
		EmotionalSupport: ScorePayload{Score: 0.1, Explanation: "Little lasting comfort."},
		Rationale:        "This looks like an impulse buy.",
	}

	result := ToEvaluationResult(resp, nil, nil, false)

	// 0.18 + 0.34*0.8 + 0.27*0.7 - 0.29*0.2 - 0.29*0.1
	assert.InDelta(t, 0.554, result.Reasoning.DecisionScore, 1e-6)
	assert.Equal(t, model.OutcomeHold, result.Outcome)
	assert.InDelta(t, 0.9257, result.Confidence, 1e-6)
	assert.Equal(t, "This looks like an impulse buy.", result.Reasoning.Rationale)
	assert.Equal(t, "No history analysis available.", result.Reasoning.PatternRepetition.Explanation)
	assert.Equal(t, "No budget context available.", result.Reasoning.FinancialStrain.Explanation)
	assert.False(t, result.Reasoning.ImportantPurchase)
}

func TestToEvaluationResult_ClampsScores(t *testing.T) {
	resp := EvaluationResponse{
		ValueConflict:    ScorePayload{Score: 1.5},
		EmotionalImpulse: ScorePayload{Score: -0.4},
	}

	result := ToEvaluationResult(resp, nil, nil, false)

	assert.InDelta(t, 1, result.Reasoning.ValueConflict.Score, 1e-9)
	assert.InDelta(t, 0, result.Reasoning.EmotionalImpulse.Score, 1e-9)
}

func TestToEvaluationResult_LocalOverrides(t *testing.T) {
	resp := EvaluationResponse{
		ValueConflict: ScorePayload{Score: 0.5, Explanation: "Some conflict."},
		Rationale:     "Borderline purchase.",
	}
	pattern := &model.ScoreExplanation{Score: 0.9, Explanation: "Third similar purchase this month."}
	strain := &model.ScoreExplanation{Score: 1, Explanation: "Well over the weekly budget."}

	result := ToEvaluationResult(resp, pattern, strain, true)

	// 0.18 + 0.34*0.5 + 0.41*0.9 + 0.12*1
	assert.InDelta(t, 0.839, result.Reasoning.DecisionScore, 1e-6)
	assert.Equal(t, model.OutcomeSkip, result.Outcome)
	assert.Equal(t, *pattern, result.Reasoning.PatternRepetition)
	assert.Equal(t, *strain, result.Reasoning.FinancialStrain)
	assert.True(t, result.Reasoning.ImportantPurchase)
}

func TestToEvaluationResult_EmptyRationaleGetsDefault(t *testing.T) {
	result := ToEvaluationResult(EvaluationResponse{}, nil, nil, false)
	assert.Contains(t, result.Reasoning.Rationale, "purchase details")
}
