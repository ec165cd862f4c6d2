package model

import "time"

// ParsedRawEmail is the structured result of parsing one raw RFC 822 message.
type ParsedRawEmail struct {
	MessageID   string
	From        string
	To          string
	Subject     string
	Date        string // ISO calendar date, best effort
	ContentType string
	TextPlain   string
	TextHTML    string
	CleanedText string
}

// ReceiptEmail is the filter pipeline's input: subject plus plain text.
type ReceiptEmail struct {
	Subject     string
	TextContent string
}

// RejectionReason explains why the filter declined an email.
type RejectionReason string

// Rejection reason constants.
const (
	RejectNegativePattern RejectionReason = "matches_negative_pattern"
	RejectNoPricePatterns RejectionReason = "no_price_patterns"
	RejectLowConfidence   RejectionReason = "low_confidence"
)

// FilterResult is the terminal output of the receipt filter pipeline.
// RejectionReason is empty when ShouldProcess is true.
type FilterResult struct {
	RejectionReason RejectionReason
	Confidence      float64
	ShouldProcess   bool
}

// ReceiptCandidate records an ingested message and its filter outcome.
type ReceiptCandidate struct {
	IngestedAt      time.Time
	MessageID       string
	From            string
	Subject         string
	Date            string
	ReceiptText     string
	RejectionReason RejectionReason
	Confidence      float64
	ShouldProcess   bool
}
