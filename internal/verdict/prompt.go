package verdict

import (
	"fmt"
	"strings"

	"github.com/hindsight-labs/hindsight/internal/model"
)

// BuildSystemPrompt returns the evaluator role prompt, including the
// user-value rubric the scores are graded against.
func BuildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(`Role: You are a purchase evaluator. Your responsibility is to score purchase motivations and long-term utility against the user's values and history.

User values are rated 1-5, where higher scores indicate stronger importance:
`)
	for _, v := range []model.UserValueType{
		model.ValueDurability,
		model.ValueEfficiency,
		model.ValueAesthetics,
		model.ValueInterpersonal,
		model.ValueEmotional,
	} {
		sb.WriteString(fmt.Sprintf("- %s: %q\n", valueLabel(v), model.UserValueDescriptions[v]))
	}
	sb.WriteString("\nYou must respond with valid JSON only, no other text.")
	return sb.String()
}

// valueLabel renders a user value type as a prompt heading.
func valueLabel(v model.UserValueType) string {
	switch v {
	case model.ValueDurability:
		return "Durability"
	case model.ValueEfficiency:
		return "Efficiency"
	case model.ValueAesthetics:
		return "Aesthetics"
	case model.ValueInterpersonal:
		return "Interpersonal Value"
	case model.ValueEmotional:
		return "Emotional Value"
	default:
		return string(v)
	}
}

// BuildUserPrompt assembles the evaluation request: user values,
// history summaries, the purchase block, and the required JSON schema.
func BuildUserPrompt(input model.PurchaseInput, userValues, similarPurchases, recentPurchases string) string {
	price := "Not specified"
	if input.Price != nil {
		price = fmt.Sprintf("$%.2f", *input.Price)
	}
	category := "Uncategorized"
	if input.Category != nil {
		category = *input.Category
	}
	vendor := "Not specified"
	if input.Vendor != nil {
		vendor = *input.Vendor
	}
	justification := "No rationale provided"
	if input.Justification != nil {
		justification = *input.Justification
	}
	important := "No"
	if input.IsImportant {
		important = "Yes"
	}

	return fmt.Sprintf(`%s

%s

%s

Now evaluate this purchase:
- Item: %s
- Price: %s
- Category: %s
- Vendor: %s
- User rationale: %q
- Important purchase: %s

Output the final verdict and scoring in this exact JSON format:
{
  "value_conflict": {
    "score": <number 0-1>,
    "explanation": "<brief explanation>"
  },
  "emotional_impulse": {
    "score": <number 0-1>,
    "explanation": "<brief explanation>"
  },
  "long_term_utility": {
    "score": <number 0-1>,
    "explanation": "<brief explanation>"
  },
  "emotional_support": {
    "score": <number 0-1>,
    "explanation": "<brief explanation>"
  },
  "rationale": "<2-3 sentence rationale>"
}`,
		userValues, similarPurchases, recentPurchases,
		input.Title, price, category, vendor, justification, important)
}
