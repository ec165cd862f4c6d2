package receipt

import "regexp"

// NegativeCategory tags a negative pattern with the kind of email it
// identifies. The category is informational; any match rejects.
type NegativeCategory string

// Negative pattern categories.
const (
	CategoryReturnRefund  NegativeCategory = "return_refund"
	CategoryShippingOnly  NegativeCategory = "shipping_only"
	CategoryPromotional   NegativeCategory = "promotional"
	CategoryAccountMgmt   NegativeCategory = "account_management"
)

// NegativePattern is one compiled hard-reject rule.
type NegativePattern struct {
	Regex    *regexp.Regexp
	Category NegativeCategory
}

// negativePatterns reject non-receipt email outright: returns and
// refunds, shipping-only notifications, promotional blasts, and
// account-management mail. Evaluated against lower-cased
// subject+content; first match suffices.
var negativePatterns = []NegativePattern{
	{regexp.MustCompile(`refund\s+(initiated|processed|complete|issued)`), CategoryReturnRefund},
	{regexp.MustCompile(`return\s+(label|authorized|received|request)`), CategoryReturnRefund},
	{regexp.MustCompile(`\breturn\b.*\brequest\b`), CategoryReturnRefund},
	{regexp.MustCompile(`cancell?(ed|ation)`), CategoryReturnRefund},

	{regexp.MustCompile(`your\s+(package|order)\s+(has\s+)?(shipped|is\s+on\s+the\s+way)`), CategoryShippingOnly},
	{regexp.MustCompile(`tracking\s+(number|info|update)`), CategoryShippingOnly},
	{regexp.MustCompile(`out\s+for\s+delivery`), CategoryShippingOnly},
	{regexp.MustCompile(`delivered\s+to`), CategoryShippingOnly},
	{regexp.MustCompile(`shipment\s+(update|notification)`), CategoryShippingOnly},

	{regexp.MustCompile(`\bsale\b.*\boff\b`), CategoryPromotional},
	{regexp.MustCompile(`limited\s+time\s+offer`), CategoryPromotional},
	{regexp.MustCompile(`shop\s+now`), CategoryPromotional},
	{regexp.MustCompile(`don't\s+miss`), CategoryPromotional},
	{regexp.MustCompile(`exclusive\s+deal`), CategoryPromotional},
	{regexp.MustCompile(`\bsave\s+\d+%`), CategoryPromotional},

	{regexp.MustCompile(`password\s+(reset|changed|updated)`), CategoryAccountMgmt},
	{regexp.MustCompile(`account\s+(updated|settings|verification)`), CategoryAccountMgmt},
	{regexp.MustCompile(`subscription\s+(cancelled|ended|expired)`), CategoryAccountMgmt},
	{regexp.MustCompile(`payment\s+method\s+(updated|failed|expired)`), CategoryAccountMgmt},
	{regexp.MustCompile(`verify\s+your\s+(email|account)`), CategoryAccountMgmt},
}

// pricePatterns detect currency amounts. Matched against the
// case-preserved subject+content; distinct matching patterns are
// counted, not total occurrences.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d+\.?\d*`),                 // $12.99 or $12
	regexp.MustCompile(`(?i)USD\s*\d+\.?\d*`),         // USD 12.99
	regexp.MustCompile(`(?i)total[:\s]+\$?\d+\.?\d*`), // Total: $12.99
	regexp.MustCompile(`(?i)amount[:\s]+\$?\d+\.?\d*`),
	regexp.MustCompile(`(?i)subtotal[:\s]+\$?\d+\.?\d*`),
	regexp.MustCompile(`\d+\.?\d*\s*€`), // 12.99 €
	regexp.MustCompile(`€\s*\d+\.?\d*`), // € 12.99
	regexp.MustCompile(`£\d+\.?\d*`),    // £12.99
	regexp.MustCompile(`¥\d+`),          // ¥1299
}

// Keyword weight tiers for the confidence stage. Substring matches on
// lower-cased content; weights sum and clamp to 1.
var (
	// Strong receipt indicators.
	highWeightKeywords = []string{
		"order confirmation",
		"payment received",
		"receipt for your",
		"invoice #",
		"order #",
		"transaction id",
		"thank you for your purchase",
		"thank you for your order",
		"order number",
		"confirmation number",
	}

	mediumWeightKeywords = []string{
		"receipt",
		"invoice",
		"subtotal",
		"total:",
		"amount paid",
		"billing",
		"payment",
		"charged",
		"purchased",
	}

	// Common in non-receipts too.
	lowWeightKeywords = []string{"order", "confirmation", "thank you"}
)

// Keyword tier weights.
const (
	highKeywordWeight   = 0.4
	mediumKeywordWeight = 0.2
	lowKeywordWeight    = 0.1
)
