package verdict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindsight-labs/hindsight/internal/model"
)

func TestSummarizeProfileContext(t *testing.T) {
	tests := []struct {
		name         string
		summary      string
		wantContains []string
		wantEmpty    bool
	}{
		{
			name:      "empty summary",
			summary:   "",
			wantEmpty: true,
		},
		{
			name:         "profile not set",
			summary:      "Profile summary: not set.",
			wantContains: []string{"not set yet"},
		},
		{
			name: "structured profile block",
			summary: "Profile summary:\n- Values mindful spending.\n" +
				"Weekly fun budget:\n- $75.00\n" +
				"- Core values: family, health",
			wantContains: []string{
				"Your profile summary notes: Values mindful spending.",
				"Your weekly fun budget is $75.00.",
				`Core values: "family, health".`,
			},
		},
		{
			name:         "unrecognized content gets a generic sentence",
			summary:      "free-form notes with no known fields",
			wantContains: []string{"Your profile context guides this decision"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarizeProfileContext(tt.summary)
			if tt.wantEmpty {
				assert.Empty(t, got)
				return
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestSummarizePurchaseProfile(t *testing.T) {
	tests := []struct {
		name         string
		similar      string
		recent       string
		wantContains []string
		wantEmpty    bool
	}{
		{
			name:      "both empty",
			wantEmpty: true,
		},
		{
			name:         "recent history with bullets",
			recent:       "Recent purchases:\n- Coffee maker $80\n- Running shoes $120",
			wantContains: []string{"baseline for your usual spending"},
		},
		{
			name:         "recent history explicitly absent",
			recent:       "No purchase history available.",
			wantContains: []string{"limited recent history"},
		},
		{
			name:         "similar purchases with bullets",
			similar:      "Similar purchases:\n- Bluetooth speaker $60",
			wantContains: []string{"comparable items have felt"},
		},
		{
			name:         "similar purchases explicitly absent",
			similar:      "No similar purchases found.",
			wantContains: []string{"no close historical matches"},
		},
		{
			name:    "both present",
			similar: "Similar purchases:\n- Bluetooth speaker $60",
			recent:  "Recent purchases:\n- Coffee maker $80",
			wantContains: []string{
				"baseline for your usual spending",
				"comparable items have felt",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarizePurchaseProfile(tt.similar, tt.recent)
			if tt.wantEmpty {
				assert.Empty(t, got)
				return
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestSummarizeVendorMatch(t *testing.T) {
	t.Run("nil match", func(t *testing.T) {
		got := summarizeVendorMatch(nil)
		assert.Contains(t, got, "not available")
	})

	t.Run("full match", func(t *testing.T) {
		got := summarizeVendorMatch(&model.VendorMatch{
			Quality:     model.TierHigh,
			Reliability: model.TierMedium,
			PriceTier:   model.PriceTierPremium,
		})
		assert.Equal(t,
			"The vendor is rated high on quality (0.8) and medium on reliability (0.6), "+
				"with a premium price tier (1.2-2x market median).",
			got)
	})
}

func TestSummarizeRiskSignals(t *testing.T) {
	pattern := model.ScoreExplanation{Explanation: "No history analysis in fallback."}
	strain := model.ScoreExplanation{Explanation: "No budget context in fallback."}

	tests := []struct {
		name    string
		want    string
		reasons []string
	}{
		{
			name: "no reasons still reports pattern and budget",
			want: "Pattern signal: No history analysis in fallback.\n" +
				"Budget context: No budget context in fallback.",
		},
		{
			name:    "single reason",
			reasons: []string{"High price point (>$200)"},
			want: "On the item itself, high price point (>$200) stands out.\n" +
				"Pattern signal: No history analysis in fallback.\n" +
				"Budget context: No budget context in fallback.",
		},
		{
			name:    "two reasons",
			reasons: []string{"High price point (>$200)", "Weak or missing justification"},
			want: "On the item itself, high price point (>$200) and weak or missing justification stand out.\n" +
				"Pattern signal: No history analysis in fallback.\n" +
				"Budget context: No budget context in fallback.",
		},
		{
			name: "three reasons",
			reasons: []string{
				"High price point (>$200)",
				"Weak or missing justification",
				"Title contains urgency/scarcity language",
			},
			want: "On the item itself, high price point (>$200) and weak or missing justification stand out, " +
				"plus title contains urgency/scarcity language.\n" +
				"Pattern signal: No history analysis in fallback.\n" +
				"Budget context: No budget context in fallback.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarizeRiskSignals(tt.reasons, pattern, strain)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssembleRationale_SectionOrder(t *testing.T) {
	overrides := &Overrides{
		ProfileContextSummary:  "Profile summary:\n- Values mindful spending.",
		RecentPurchasesSummary: "Recent purchases:\n- Coffee maker $80",
	}
	pattern := model.ScoreExplanation{Explanation: "No history analysis in fallback."}
	strain := model.ScoreExplanation{Explanation: "No budget context in fallback."}

	got := assembleRationale(overrides, []string{"High price point (>$200)"}, pattern, strain)

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	profileIdx := indexContaining(t, lines, "profile summary notes")
	historyIdx := indexContaining(t, lines, "baseline for your usual spending")
	vendorIdx := indexContaining(t, lines, "not available")
	riskIdx := indexContaining(t, lines, "On the item itself")

	assert.Less(t, profileIdx, historyIdx)
	assert.Less(t, historyIdx, vendorIdx)
	assert.Less(t, vendorIdx, riskIdx)
}

func indexContaining(t *testing.T, lines []string, substr string) int {
	t.Helper()
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	t.Fatalf("no line contains %q", substr)
	return -1
}
