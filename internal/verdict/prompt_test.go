package verdict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hindsight-labs/hindsight/internal/model"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt()

	assert.Contains(t, prompt, "You are a purchase evaluator.")
	assert.Contains(t, prompt, "- Durability:")
	assert.Contains(t, prompt, "- Efficiency:")
	assert.Contains(t, prompt, "- Aesthetics:")
	assert.Contains(t, prompt, "- Interpersonal Value:")
	assert.Contains(t, prompt, "- Emotional Value:")
	assert.Contains(t, prompt, model.UserValueDescriptions[model.ValueDurability])
	assert.True(t, strings.HasSuffix(prompt, "valid JSON only, no other text."))
}

func TestBuildUserPrompt_FullInput(t *testing.T) {
	prompt := BuildUserPrompt(model.PurchaseInput{
		Title:         "Standing desk",
		Price:         floatPtr(499),
		Category:      strPtr("home_goods"),
		Vendor:        strPtr("Fully"),
		Justification: strPtr("My back hurts after long days"),
		IsImportant:   true,
	}, "User values block", "Similar purchases block", "Recent purchases block")

	assert.Contains(t, prompt, "User values block")
	assert.Contains(t, prompt, "Similar purchases block")
	assert.Contains(t, prompt, "Recent purchases block")
	assert.Contains(t, prompt, "- Item: Standing desk")
	assert.Contains(t, prompt, "- Price: $499.00")
	assert.Contains(t, prompt, "- Category: home_goods")
	assert.Contains(t, prompt, "- Vendor: Fully")
	assert.Contains(t, prompt, `- User rationale: "My back hurts after long days"`)
	assert.Contains(t, prompt, "- Important purchase: Yes")

	// The output schema the response parser depends on.
	for _, field := range []string{
		`"value_conflict"`,
		`"emotional_impulse"`,
		`"long_term_utility"`,
		`"emotional_support"`,
		`"rationale"`,
	} {
		assert.Contains(t, prompt, field)
	}
}

func TestBuildUserPrompt_MissingFieldsUsePlaceholders(t *testing.T) {
	prompt := BuildUserPrompt(model.PurchaseInput{Title: "Mystery item"}, "", "", "")

	assert.Contains(t, prompt, "- Price: Not specified")
	assert.Contains(t, prompt, "- Category: Uncategorized")
	assert.Contains(t, prompt, "- Vendor: Not specified")
	assert.Contains(t, prompt, `- User rationale: "No rationale provided"`)
	assert.Contains(t, prompt, "- Important purchase: No")
}
