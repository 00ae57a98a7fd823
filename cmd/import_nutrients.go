package main

import (
	"fmt"
	"os"

	"nutritrack/config"
	"nutritrack/services"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import-nutrients <file.csv>",
	Short: "Load the reference nutrient table from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.DBDriver == "memory" {
		return fmt.Errorf("import-nutrients needs DB_DRIVER postgres or sqlite")
	}
	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	n, err := services.NewNutrientTableService(db).ImportCSV(cmd.Context(), f)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d foods from %s\n", n, args[0])
	return nil
}
