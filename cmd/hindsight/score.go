package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hindsight-labs/hindsight/internal/cli"
	"github.com/hindsight-labs/hindsight/internal/llm"
	"github.com/hindsight-labs/hindsight/internal/model"
	"github.com/hindsight-labs/hindsight/internal/verdict"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a prospective purchase into a buy/hold/skip verdict",
		Long: `Score a prospective purchase using the deterministic evaluation.

Vendor context and a weekly budget are optional; when absent the
corresponding sub-scores fall back to neutral defaults. With
--llm-response, a saved LLM evaluation (JSON) is adapted into the
verdict instead of running the heuristic.`,
		RunE: runScore,
	}

	cmd.Flags().String("title", "", "purchase title (required)")
	cmd.Flags().Float64("price", 0, "price in dollars")
	cmd.Flags().String("category", "", "purchase category")
	cmd.Flags().String("vendor", "", "vendor name")
	cmd.Flags().String("justification", "", "why you want this")
	cmd.Flags().Bool("important", false, "mark as an important purchase")
	cmd.Flags().Float64("budget", 0, "weekly fun budget in dollars")
	cmd.Flags().String("vendor-quality", "", "vendor quality tier (low, medium, high)")
	cmd.Flags().String("vendor-reliability", "", "vendor reliability tier (low, medium, high)")
	cmd.Flags().String("vendor-price-tier", "", "vendor price tier (budget, mid_range, premium, luxury)")
	cmd.Flags().String("llm-response", "", "file containing a saved LLM evaluation response to adapt")
	cmd.Flags().Bool("show-prompt", false, "print the LLM prompts instead of evaluating")
	cmd.Flags().Bool("json", false, "emit the evaluation result as JSON")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	input, err := purchaseInputFromFlags(cmd)
	if err != nil {
		return err
	}

	if show, _ := cmd.Flags().GetBool("show-prompt"); show {
		fmt.Println(verdict.BuildSystemPrompt())
		fmt.Println("---")
		fmt.Println(verdict.BuildUserPrompt(input, "", "", ""))
		return nil
	}

	overrides, err := overridesFromFlags(cmd, input)
	if err != nil {
		return err
	}

	var result model.EvaluationResult
	if responseFile, _ := cmd.Flags().GetString("llm-response"); responseFile != "" {
		content, readErr := os.ReadFile(responseFile) // #nosec G304
		if readErr != nil {
			return fmt.Errorf("failed to read LLM response file: %w", readErr)
		}
		resp, parseErr := llm.ParseResponse(string(content))
		if parseErr != nil {
			return parseErr
		}
		result = llm.ToEvaluationResult(resp, overrides.PatternRepetition, overrides.FinancialStrain, input.IsImportant)
	} else {
		result = verdict.Evaluate(input, overrides)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoded, encErr := json.MarshalIndent(result, "", "  ")
		if encErr != nil {
			return fmt.Errorf("failed to encode result: %w", encErr)
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Println(cli.RenderVerdict(result))
	return nil
}

func purchaseInputFromFlags(cmd *cobra.Command) (model.PurchaseInput, error) {
	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		return model.PurchaseInput{}, fmt.Errorf("title must not be empty")
	}

	input := model.PurchaseInput{Title: title}
	input.IsImportant, _ = cmd.Flags().GetBool("important")

	if cmd.Flags().Changed("price") {
		price, _ := cmd.Flags().GetFloat64("price")
		input.Price = &price
	}
	for flag, target := range map[string]**string{
		"category":      &input.Category,
		"vendor":        &input.Vendor,
		"justification": &input.Justification,
	} {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			*target = &value
		}
	}

	return input, nil
}

func overridesFromFlags(cmd *cobra.Command, input model.PurchaseInput) (*verdict.Overrides, error) {
	overrides := &verdict.Overrides{}

	if cmd.Flags().Changed("budget") {
		budget, _ := cmd.Flags().GetFloat64("budget")
		strain := verdict.ComputeFinancialStrain(input.Price, &budget, input.IsImportant)
		price := 0.0
		if input.Price != nil {
			price = *input.Price
		}
		explanation := fmt.Sprintf("Price $%.2f against a weekly budget of $%.2f.", price, budget)
		score := verdict.BuildScore(strain, explanation)
		overrides.FinancialStrain = &score
	}

	quality, _ := cmd.Flags().GetString("vendor-quality")
	reliability, _ := cmd.Flags().GetString("vendor-reliability")
	priceTier, _ := cmd.Flags().GetString("vendor-price-tier")
	if quality != "" || reliability != "" || priceTier != "" {
		if quality == "" || reliability == "" || priceTier == "" {
			return nil, fmt.Errorf("vendor-quality, vendor-reliability, and vendor-price-tier must be provided together")
		}
		name := ""
		if input.Vendor != nil {
			name = *input.Vendor
		}
		overrides.VendorMatch = &model.VendorMatch{
			Name:        name,
			Quality:     model.VendorTier(quality),
			Reliability: model.VendorTier(reliability),
			PriceTier:   model.PriceTier(priceTier),
		}
	}

	return overrides, nil
}
