// Package model defines the core domain models used throughout the application.
package model

// PurchaseInput describes a prospective purchase to be evaluated.
// Optional fields are pointers; nil means the caller had no data.
type PurchaseInput struct {
	Price         *float64
	Category      *string
	Vendor        *string
	Justification *string
	Title         string
	IsImportant   bool
}

// VendorTier rates vendor quality or reliability.
type VendorTier string

// Vendor tier constants.
const (
	TierLow    VendorTier = "low"
	TierMedium VendorTier = "medium"
	TierHigh   VendorTier = "high"
)

// PriceTier positions a vendor's pricing relative to the market.
type PriceTier string

// Price tier constants.
const (
	PriceTierBudget   PriceTier = "budget"
	PriceTierMidRange PriceTier = "mid_range"
	PriceTierPremium  PriceTier = "premium"
	PriceTierLuxury   PriceTier = "luxury"
)

// VendorMatch is optional vendor context attached to an evaluation.
// Absence is handled by the scoring engine; fields are never invented.
type VendorMatch struct {
	Name        string
	Category    string
	Quality     VendorTier
	Reliability VendorTier
	PriceTier   PriceTier
}

// PurchaseCategory is one of the fixed category values used across
// scoring, prompts, and the CLI.
type PurchaseCategory struct {
	Value string
	Label string
}

// PurchaseCategories lists the categories in display order.
var PurchaseCategories = []PurchaseCategory{
	{Value: "uncategorized", Label: "Uncategorized"},
	{Value: "electronics", Label: "Electronics"},
	{Value: "fashion", Label: "Fashion"},
	{Value: "home_goods", Label: "Home goods"},
	{Value: "health_wellness", Label: "Health & wellness"},
	{Value: "travel", Label: "Travel"},
	{Value: "experiences", Label: "Experiences"},
	{Value: "subscriptions", Label: "Subscriptions"},
	{Value: "food_beverage", Label: "Food & beverage"},
	{Value: "services", Label: "Services"},
	{Value: "education", Label: "Education"},
	{Value: "other", Label: "Other"},
}
