// Package verdict implements the deterministic purchase scoring engine.
// It converts a purchase description plus optional vendor and history
// context into a buy/hold/skip verdict with confidence and rationale,
// and is used whenever no LLM evaluation is available.
package verdict

import "github.com/hindsight-labs/hindsight/internal/model"

// decisionWeights holds the fixed coefficients of the linear decision
// model. They must not change without recalibrating the outcome
// thresholds.
type decisionWeights struct {
	Intercept         float64
	ValueConflict     float64
	PatternRepetition float64
	EmotionalImpulse  float64
	FinancialStrain   float64
	LongTermUtility   float64
	EmotionalSupport  float64
}

// Weights holds the calibrated decision model coefficients.
var Weights = decisionWeights{
	Intercept:         0.18,
	ValueConflict:     0.34,
	PatternRepetition: 0.41,
	EmotionalImpulse:  0.27,
	FinancialStrain:   0.12,
	LongTermUtility:   0.29,
	EmotionalSupport:  0.29,
}

// RubricEntry describes one level of the vendor quality/reliability rubric.
type RubricEntry struct {
	Description string
	Score       float64
}

// PriceTierEntry describes one level of the vendor price-tier rubric.
type PriceTierEntry struct {
	TypicalMultiplier string
	Description       string
	RiskPoints        int
}

// VendorQualityRubric maps vendor quality tiers to scores.
// "How well the product performs its intended function when it works."
var VendorQualityRubric = map[model.VendorTier]RubricEntry{
	model.TierLow:    {Score: 0.4, Description: "Below-average performance; compromises are obvious."},
	model.TierMedium: {Score: 0.6, Description: "Adequate performance; meets basic expectations."},
	model.TierHigh:   {Score: 0.8, Description: "Strong performance; well-designed and efficient."},
}

// VendorReliabilityRubric maps vendor reliability tiers to scores.
// "How consistently the product maintains acceptable performance over time."
var VendorReliabilityRubric = map[model.VendorTier]RubricEntry{
	model.TierLow:    {Score: 0.4, Description: "Noticeable failure risk; inconsistent durability."},
	model.TierMedium: {Score: 0.6, Description: "Generally dependable with occasional issues."},
	model.TierHigh:   {Score: 0.8, Description: "Rare failures; long-term dependable."},
}

// PriceTierRubric maps vendor price tiers to market positioning and the
// risk points they contribute to the fallback accumulator.
var PriceTierRubric = map[model.PriceTier]PriceTierEntry{
	model.PriceTierBudget:   {RiskPoints: 0, TypicalMultiplier: "<0.7x market median", Description: "Lowest-cost options; price is the primary selling point."},
	model.PriceTierMidRange: {RiskPoints: 4, TypicalMultiplier: "0.7-1.2x market median", Description: "Balanced cost and performance; mainstream pricing."},
	model.PriceTierPremium:  {RiskPoints: 8, TypicalMultiplier: "1.2-2x market median", Description: "Higher-than-average price; design, brand, or quality emphasis."},
	model.PriceTierLuxury:   {RiskPoints: 12, TypicalMultiplier: ">2x market median", Description: "Price driven mainly by brand, exclusivity, or status signaling."},
}

// vendorRubricInfo resolves a vendor match against the three rubrics.
// Returns ok=false when the match is nil or carries unknown tiers.
func vendorRubricInfo(vendorMatch *model.VendorMatch) (quality RubricEntry, reliability RubricEntry, priceTier PriceTierEntry, ok bool) {
	if vendorMatch == nil {
		return RubricEntry{}, RubricEntry{}, PriceTierEntry{}, false
	}
	quality, qOK := VendorQualityRubric[vendorMatch.Quality]
	reliability, rOK := VendorReliabilityRubric[vendorMatch.Reliability]
	priceTier, pOK := PriceTierRubric[vendorMatch.PriceTier]
	if !qOK || !rOK || !pOK {
		return RubricEntry{}, RubricEntry{}, PriceTierEntry{}, false
	}
	return quality, reliability, priceTier, true
}
