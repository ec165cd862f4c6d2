package verdict

import (
	"fmt"
	"strings"

	"github.com/hindsight-labs/hindsight/internal/model"
)

// impulseCategories are category fragments with elevated impulse
// purchase rates. Matching is case-insensitive substring.
var impulseCategories = []string{"clothing", "fashion", "accessories", "gadgets", "electronics"}

// impulseKeywords are urgency/scarcity phrases looked for in titles.
var impulseKeywords = []string{"limited", "sale", "deal", "exclusive", "last chance", "flash"}

// Risk accumulator point values, on a 0-100 scale.
const (
	riskHighPrice     = 30
	riskModeratePrice = 15
	riskImpulseCat    = 20
	riskWeakReason    = 25
	riskWantNotNeed   = 10
	riskUrgencyTitle  = 20
)

// Overrides carries optional context the caller may already have, such
// as history-derived sub-scores or a matched vendor profile. Every
// field degrades to a documented neutral default when absent.
type Overrides struct {
	PatternRepetition       *model.ScoreExplanation
	FinancialStrain         *model.ScoreExplanation
	VendorMatch             *model.VendorMatch
	ProfileContextSummary   string
	SimilarPurchasesSummary string
	RecentPurchasesSummary  string
}

// Evaluate runs the deterministic fallback evaluation. It never fails:
// missing context degrades to neutral defaults and every sub-score is
// clamped on construction.
func Evaluate(input model.PurchaseInput, overrides *Overrides) model.EvaluationResult {
	if overrides == nil {
		overrides = &Overrides{}
	}

	reasons, riskScore := accumulateRisk(input, overrides.VendorMatch)
	normalizedRisk := clamp01(float64(riskScore) / 100)

	valueConflict := BuildScore(normalizedRisk*0.6, "Fallback heuristic.")
	emotionalImpulse := BuildScore(normalizedRisk*0.7, "Fallback heuristic.")
	emotionalSupport := BuildScore(0.4, "Fallback heuristic.")

	longTermUtility, ok := vendorUtilityScore(overrides.VendorMatch)
	if !ok {
		longTermUtility = BuildScore(0.4, "Fallback heuristic.")
	}

	patternRepetition := BuildScore(0, "No history analysis in fallback.")
	if overrides.PatternRepetition != nil {
		patternRepetition = *overrides.PatternRepetition
	}
	financialStrain := BuildScore(0, "No budget context in fallback.")
	if overrides.FinancialStrain != nil {
		financialStrain = *overrides.FinancialStrain
	}

	decisionScore := ComputeDecisionScore(SubScores{
		ValueConflict:     valueConflict.Score,
		PatternRepetition: patternRepetition.Score,
		EmotionalImpulse:  emotionalImpulse.Score,
		FinancialStrain:   financialStrain.Score,
		LongTermUtility:   longTermUtility.Score,
		EmotionalSupport:  emotionalSupport.Score,
	})

	rationale := assembleRationale(overrides, reasons, patternRepetition, financialStrain)

	return model.EvaluationResult{
		Outcome:    DecisionFromScore(decisionScore),
		Confidence: ConfidenceFromScore(decisionScore),
		Reasoning: model.EvaluationReasoning{
			ValueConflict:     valueConflict,
			PatternRepetition: patternRepetition,
			EmotionalImpulse:  emotionalImpulse,
			FinancialStrain:   financialStrain,
			LongTermUtility:   longTermUtility,
			EmotionalSupport:  emotionalSupport,
			DecisionScore:     decisionScore,
			Rationale:         rationale,
			ImportantPurchase: input.IsImportant,
		},
	}
}

// accumulateRisk applies the additive risk rules and returns the
// triggered reasons alongside the total points.
func accumulateRisk(input model.PurchaseInput, vendorMatch *model.VendorMatch) ([]string, int) {
	var reasons []string
	riskScore := 0

	if input.Price != nil {
		switch {
		case *input.Price > 200:
			riskScore += riskHighPrice
			reasons = append(reasons, "High price point (>$200)")
		case *input.Price > 100:
			riskScore += riskModeratePrice
			reasons = append(reasons, "Moderate price point ($100-200)")
		}
	}

	if input.Category != nil {
		category := strings.ToLower(*input.Category)
		for _, c := range impulseCategories {
			if strings.Contains(category, c) {
				riskScore += riskImpulseCat
				reasons = append(reasons, "Category has higher impulse purchase rate")
				break
			}
		}
	}

	if input.Justification == nil || len(*input.Justification) < 20 {
		riskScore += riskWeakReason
		reasons = append(reasons, "Weak or missing justification")
	} else {
		justification := strings.ToLower(*input.Justification)
		if strings.Contains(justification, "want") && !strings.Contains(justification, "need") {
			riskScore += riskWantNotNeed
			reasons = append(reasons, "Want-based rather than need-based")
		}
	}

	title := strings.ToLower(input.Title)
	for _, kw := range impulseKeywords {
		if strings.Contains(title, kw) {
			riskScore += riskUrgencyTitle
			reasons = append(reasons, "Title contains urgency/scarcity language")
			break
		}
	}

	if _, _, priceTier, ok := vendorRubricInfo(vendorMatch); ok && priceTier.RiskPoints > 0 {
		riskScore += priceTier.RiskPoints
		reasons = append(reasons, fmt.Sprintf("Vendor price tier: %s", vendorMatch.PriceTier))
	}

	return reasons, riskScore
}

// vendorUtilityScore averages the vendor's quality and reliability
// rubric scores. ok is false when no usable vendor match exists.
func vendorUtilityScore(vendorMatch *model.VendorMatch) (model.ScoreExplanation, bool) {
	quality, reliability, priceTier, ok := vendorRubricInfo(vendorMatch)
	if !ok {
		return model.ScoreExplanation{}, false
	}
	utility := clamp01((quality.Score + reliability.Score) / 2)
	explanation := strings.Join([]string{
		fmt.Sprintf("Vendor quality: %s (%.1f).", vendorMatch.Quality, quality.Score),
		fmt.Sprintf("Vendor reliability: %s (%.1f).", vendorMatch.Reliability, reliability.Score),
		fmt.Sprintf("Vendor price tier: %s (%s).", vendorMatch.PriceTier, priceTier.TypicalMultiplier),
	}, " ")
	return BuildScore(utility, explanation), true
}
