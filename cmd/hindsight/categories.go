package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hindsight-labs/hindsight/internal/cli"
	"github.com/hindsight-labs/hindsight/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the purchase categories accepted by score",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cli.TitleStyle.Render("Purchase categories"))
			for _, c := range model.PurchaseCategories {
				fmt.Printf("  %s  %s\n",
					cli.BoldStyle.Render(fmt.Sprintf("%-16s", c.Value)),
					cli.SubtleStyle.Render(c.Label))
			}
		},
	}
}
