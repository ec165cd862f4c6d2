package verdict

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hindsight-labs/hindsight/internal/model"
)

// Rationale sentences are assembled in a fixed order: profile context,
// purchase history, vendor, risk signals. Sections with no data either
// contribute a neutral sentence or are skipped entirely.

const rationaleSeparator = "\n"

var (
	profileSummaryRe = regexp.MustCompile(`Profile summary:\n- (.+)`)
	weeklyBudgetRe   = regexp.MustCompile(`Weekly fun budget:\n- \$([0-9.,]+)`)
	trailingPeriodRe = regexp.MustCompile(`\.\s*$`)

	// Onboarding answers embedded in the profile context summary.
	onboardingFields = []struct {
		label string
		re    *regexp.Regexp
	}{
		{"Core values", regexp.MustCompile(`- Core values: (.+)`)},
		{"Regret patterns", regexp.MustCompile(`- Regret patterns: (.+)`)},
		{"Satisfaction patterns", regexp.MustCompile(`- Satisfaction patterns: (.+)`)},
		{"Decision style", regexp.MustCompile(`- Decision style: (.+)`)},
		{"Financial sensitivity", regexp.MustCompile(`- Financial sensitivity: (.+)`)},
		{"Identity stability", regexp.MustCompile(`- Identity stability: (.+)`)},
		{"Emotional relationship", regexp.MustCompile(`- Emotional relationship: (.+)`)},
	}
)

// summarizeProfileContext turns a structured profile summary block into
// reader-facing sentences. Returns "" when no summary was supplied.
func summarizeProfileContext(summary string) string {
	if summary == "" {
		return ""
	}
	if strings.Contains(summary, "Profile summary: not set.") {
		return "Your profile summary is not set yet, so this leans more on the purchase details."
	}

	var parts []string
	if m := profileSummaryRe.FindStringSubmatch(summary); m != nil {
		trimmed := trailingPeriodRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
		parts = append(parts, fmt.Sprintf("Your profile summary notes: %s.", trimmed))
	}
	if m := weeklyBudgetRe.FindStringSubmatch(summary); m != nil {
		parts = append(parts, fmt.Sprintf("Your weekly fun budget is $%s.", m[1]))
	}
	for _, field := range onboardingFields {
		if m := field.re.FindStringSubmatch(summary); m != nil {
			parts = append(parts, fmt.Sprintf("%s: %q.", field.label, m[1]))
		}
	}

	if len(parts) == 0 {
		return "Your profile context guides this decision alongside the purchase details."
	}
	return strings.Join(parts, rationaleSeparator)
}

// extractBulletLines returns the content of "- " prefixed lines.
func extractBulletLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") {
			lines = append(lines, strings.TrimPrefix(line, "- "))
		}
	}
	return lines
}

// summarizePurchaseProfile describes recent and similar purchase
// history. Returns "" when neither summary says anything.
func summarizePurchaseProfile(similar, recent string) string {
	var parts []string

	if len(extractBulletLines(recent)) > 0 {
		parts = append(parts, "Past purchases suggest a baseline for your usual spending and categories.")
	} else if strings.Contains(recent, "No purchase history") {
		parts = append(parts, "Past purchases suggest limited recent history to compare against.")
	}

	if len(extractBulletLines(similar)) > 0 {
		parts = append(parts, "Similar purchases suggest how comparable items have felt for you before.")
	} else if strings.Contains(similar, "No similar purchases found") {
		parts = append(parts, "Similar purchases suggest there are no close historical matches yet.")
	}

	return strings.Join(parts, rationaleSeparator)
}

// summarizeVendorMatch describes the matched vendor, or notes the
// absence of vendor data. Always returns a sentence.
func summarizeVendorMatch(vendorMatch *model.VendorMatch) string {
	quality, reliability, priceTier, ok := vendorRubricInfo(vendorMatch)
	if !ok {
		return "Vendor quality, reliability, and price tier are not available, so this relies on the item details."
	}
	return fmt.Sprintf("The vendor is rated %s on quality (%.1f) and %s on reliability (%.1f), with a %s price tier (%s).",
		vendorMatch.Quality, quality.Score,
		vendorMatch.Reliability, reliability.Score,
		vendorMatch.PriceTier, priceTier.TypicalMultiplier)
}

// summarizeRiskSignals narrates the triggered risk reasons plus the
// pattern and budget sub-score explanations.
func summarizeRiskSignals(reasons []string, patternRepetition, financialStrain model.ScoreExplanation) string {
	var parts []string

	if len(reasons) > 0 {
		normalized := make([]string, len(reasons))
		for i, r := range reasons {
			normalized[i] = strings.ToLower(r)
		}
		switch len(normalized) {
		case 1:
			parts = append(parts, fmt.Sprintf("On the item itself, %s stands out.", normalized[0]))
		case 2:
			parts = append(parts, fmt.Sprintf("On the item itself, %s and %s stand out.", normalized[0], normalized[1]))
		default:
			parts = append(parts, fmt.Sprintf("On the item itself, %s and %s stand out, plus %s.",
				normalized[0], normalized[1], strings.Join(normalized[2:], ", ")))
		}
	}

	patternNote := trailingPeriodRe.ReplaceAllString(strings.TrimSpace(patternRepetition.Explanation), "")
	parts = append(parts, fmt.Sprintf("Pattern signal: %s.", patternNote))

	budgetNote := trailingPeriodRe.ReplaceAllString(strings.TrimSpace(financialStrain.Explanation), "")
	parts = append(parts, fmt.Sprintf("Budget context: %s.", budgetNote))

	return strings.Join(parts, rationaleSeparator)
}

// assembleRationale joins the four rationale sections in fixed order,
// dropping empty ones. A generic sentence covers the no-data case.
func assembleRationale(overrides *Overrides, reasons []string, patternRepetition, financialStrain model.ScoreExplanation) string {
	sections := []string{
		summarizeProfileContext(overrides.ProfileContextSummary),
		summarizePurchaseProfile(overrides.SimilarPurchasesSummary, overrides.RecentPurchasesSummary),
		summarizeVendorMatch(overrides.VendorMatch),
		summarizeRiskSignals(reasons, patternRepetition, financialStrain),
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) == 0 {
		return "This recommendation leans on the purchase details because profile context is limited."
	}
	return strings.Join(nonEmpty, rationaleSeparator)
}
