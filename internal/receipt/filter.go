// Package receipt decides whether an email is worth sending to LLM
// receipt extraction. The filter is a strict three-stage pipeline:
// negative-pattern hard reject, price-pattern presence, then weighted
// keyword confidence. Later stages run only when earlier ones pass,
// keeping each email only as expensive to classify as necessary.
package receipt

import (
	"strings"

	"github.com/hindsight-labs/hindsight/internal/model"
)

// Stage combination weights and acceptance threshold.
const (
	priceWeight          = 0.4
	keywordWeight        = 0.6
	processThreshold     = 0.5
	singlePriceMatchConf = 0.5
)

// MatchesNegativePatterns reports whether the email matches any
// hard-reject pattern. A refund email that mentions a price must still
// be rejected, so this runs before everything else.
func MatchesNegativePatterns(email model.ReceiptEmail) bool {
	content := strings.ToLower(email.Subject + " " + email.TextContent)
	for _, p := range negativePatterns {
		if p.Regex.MatchString(content) {
			return true
		}
	}
	return false
}

// DetectPricePatterns scores price presence: 0 with no matching
// pattern, 0.5 with one, 1 with two or more distinct patterns.
func DetectPricePatterns(email model.ReceiptEmail) float64 {
	content := email.Subject + " " + email.TextContent

	matchCount := 0
	for _, p := range pricePatterns {
		if p.MatchString(content) {
			matchCount++
		}
	}

	switch {
	case matchCount == 0:
		return 0
	case matchCount >= 2:
		return 1
	default:
		return singlePriceMatchConf
	}
}

// CalculateConfidence sums keyword tier weights over the lower-cased
// content, clamped to [0, 1].
func CalculateConfidence(email model.ReceiptEmail) float64 {
	content := strings.ToLower(email.Subject + " " + email.TextContent)

	score := 0.0
	for _, kw := range highWeightKeywords {
		if strings.Contains(content, kw) {
			score += highKeywordWeight
		}
	}
	for _, kw := range mediumWeightKeywords {
		if strings.Contains(content, kw) {
			score += mediumKeywordWeight
		}
	}
	for _, kw := range lowWeightKeywords {
		if strings.Contains(content, kw) {
			score += lowKeywordWeight
		}
	}

	if score > 1 {
		return 1
	}
	return score
}

// Filter runs the full pipeline and decides whether the email should
// be passed on to LLM extraction.
func Filter(email model.ReceiptEmail) model.FilterResult {
	if MatchesNegativePatterns(email) {
		return model.FilterResult{
			ShouldProcess:   false,
			Confidence:      0,
			RejectionReason: model.RejectNegativePattern,
		}
	}

	priceConfidence := DetectPricePatterns(email)
	if priceConfidence == 0 {
		return model.FilterResult{
			ShouldProcess:   false,
			Confidence:      0,
			RejectionReason: model.RejectNoPricePatterns,
		}
	}

	keywordConfidence := CalculateConfidence(email)
	overall := priceConfidence*priceWeight + keywordConfidence*keywordWeight

	result := model.FilterResult{
		ShouldProcess: overall >= processThreshold,
		Confidence:    overall,
	}
	if !result.ShouldProcess {
		result.RejectionReason = model.RejectLowConfidence
	}
	return result
}
