package main

import (
	"encoding/json"
	"os"

	"nutritrack/config"
	"nutritrack/models"
	"nutritrack/services"

	"github.com/spf13/cobra"
)

var flagItemsOnly bool

var parseCmd = &cobra.Command{
	Use:   `parse "<text>"`,
	Short: "Parse meal text and print the resolved nutrients as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&flagItemsOnly, "items-only", false, "Only split the text, skip nutrient lookup")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	items := services.ParseFoodItems(args[0])
	if flagItemsOnly {
		if items == nil {
			items = []models.FoodItem{}
		}
		return enc.Encode(map[string]any{"items": items})
	}

	cfg := config.Load()
	_, db, err := openStorage(cfg)
	if err != nil {
		return err
	}
	lookup, err := newLookup(cfg, db)
	if err != nil {
		return err
	}

	foods, total := services.NewNutritionService(lookup).Aggregate(cmd.Context(), items)
	return enc.Encode(map[string]any{
		"items":           items,
		"foods":           foods,
		"total_nutrients": total,
	})
}
