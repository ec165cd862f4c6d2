package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hindsight-labs/hindsight/internal/model"
)

// outcomeStyle maps a verdict to its display style.
func outcomeStyle(outcome model.VerdictOutcome) lipgloss.Style {
	switch outcome {
	case model.OutcomeBuy:
		return SuccessStyle
	case model.OutcomeHold:
		return WarningStyle
	case model.OutcomeSkip:
		return ErrorStyle
	default:
		return InfoStyle
	}
}

// RenderVerdict formats an evaluation result for the terminal.
func RenderVerdict(result model.EvaluationResult) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Verdict"))
	sb.WriteString("\n")
	sb.WriteString(outcomeStyle(result.Outcome).Bold(true).Render(strings.ToUpper(string(result.Outcome))))
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("  (confidence %.0f%%)", result.Confidence*100)))
	sb.WriteString("\n\n")

	r := result.Reasoning
	sb.WriteString(SubtitleStyle.Render("Sub-scores"))
	sb.WriteString("\n")
	for _, row := range []struct {
		name  string
		score model.ScoreExplanation
	}{
		{"value conflict", r.ValueConflict},
		{"pattern repetition", r.PatternRepetition},
		{"emotional impulse", r.EmotionalImpulse},
		{"financial strain", r.FinancialStrain},
		{"long-term utility", r.LongTermUtility},
		{"emotional support", r.EmotionalSupport},
	} {
		sb.WriteString(fmt.Sprintf("  %-20s %s  %s\n",
			row.name,
			BoldStyle.Render(fmt.Sprintf("%.2f", row.score.Score)),
			SubtleStyle.Render(row.score.Explanation)))
	}
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("  decision score: %.3f", r.DecisionScore)))
	sb.WriteString("\n\n")

	sb.WriteString(SubtitleStyle.Render("Rationale"))
	sb.WriteString("\n")
	sb.WriteString(r.Rationale)
	sb.WriteString("\n")

	return BoxStyle.Render(sb.String())
}

// RenderFilterResult formats a filter decision for the terminal.
func RenderFilterResult(subject string, result model.FilterResult) string {
	decision := SuccessStyle.Render("PROCESS")
	detail := fmt.Sprintf("confidence %.2f", result.Confidence)
	if !result.ShouldProcess {
		decision = ErrorStyle.Render("REJECT")
		detail = fmt.Sprintf("%s, confidence %.2f", result.RejectionReason, result.Confidence)
	}

	if subject == "" {
		subject = "(no subject)"
	}
	return fmt.Sprintf("%s  %s  %s", decision, BoldStyle.Render(subject), SubtleStyle.Render(detail))
}
