package config

import (
	"fmt"
	"os"

	"nutritrack/models"

	"github.com/BurntSushi/toml"
)

// DefaultFoodCatalog is the built-in suggestion list. Order matters: it is
// the tie-break order for equal scores.
func DefaultFoodCatalog() []models.FoodCatalogEntry {
	return []models.FoodCatalogEntry{
		{Name: "Grilled Chicken Breast", Nutrients: models.Nutrients{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0}},
		{Name: "Lentil Soup", Nutrients: models.Nutrients{Calories: 180, Protein: 12, Carbs: 30, Fat: 3, Fiber: 8, Sugar: 4}},
		{Name: "Tofu Stir Fry", Nutrients: models.Nutrients{Calories: 200, Protein: 16, Carbs: 10, Fat: 12, Fiber: 3, Sugar: 2}},
		{Name: "Oats with Berries", Nutrients: models.Nutrients{Calories: 250, Protein: 8, Carbs: 45, Fat: 5, Fiber: 6, Sugar: 10}},
		{Name: "Greek Yogurt with Nuts", Nutrients: models.Nutrients{Calories: 220, Protein: 20, Carbs: 10, Fat: 12, Fiber: 2, Sugar: 8}},
		{Name: "Salmon Fillet", Nutrients: models.Nutrients{Calories: 208, Protein: 25, Carbs: 0, Fat: 12, Fiber: 0, Sugar: 0}},
		{Name: "Quinoa Salad", Nutrients: models.Nutrients{Calories: 180, Protein: 6, Carbs: 32, Fat: 3, Fiber: 5, Sugar: 2}},
		{Name: "Chickpea Curry", Nutrients: models.Nutrients{Calories: 210, Protein: 10, Carbs: 35, Fat: 6, Fiber: 7, Sugar: 5}},
		{Name: "Steamed Broccoli", Nutrients: models.Nutrients{Calories: 55, Protein: 4, Carbs: 11, Fat: 0.5, Fiber: 5, Sugar: 2}},
		{Name: "Egg Omelette", Nutrients: models.Nutrients{Calories: 150, Protein: 12, Carbs: 2, Fat: 10, Fiber: 0, Sugar: 1}},
	}
}

type catalogFile struct {
	Foods []models.FoodCatalogEntry `toml:"foods"`
}

// LoadFoodCatalog reads a TOML catalog of [[foods]] tables. An empty path
// returns the built-in catalog.
func LoadFoodCatalog(path string) ([]models.FoodCatalogEntry, error) {
	if path == "" {
		return DefaultFoodCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading food catalog: %w", err)
	}

	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing food catalog: %w", err)
	}
	if len(f.Foods) == 0 {
		return nil, fmt.Errorf("food catalog %s has no [[foods]] entries", path)
	}
	for i, e := range f.Foods {
		if e.Name == "" {
			return nil, fmt.Errorf("food catalog entry %d has no name", i)
		}
	}
	return f.Foods, nil
}
