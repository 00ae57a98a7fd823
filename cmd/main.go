package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "nutritrack",
	Short:        "Nutrition tracking API",
	Long:         "Log meals as free text, track daily nutrient totals and get next-meal suggestions.",
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
