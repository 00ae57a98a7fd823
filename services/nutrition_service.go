package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"nutritrack/models"
)

// ErrFoodNotFound is the lookup's not-found signal.
var ErrFoodNotFound = errors.New("food not found")

// NutrientLookup resolves a free-text query to nutrients per 100 reference
// units. Implementations return ErrFoodNotFound when nothing matches.
type NutrientLookup interface {
	Lookup(ctx context.Context, query string) (models.Nutrients, error)
}

// NormalizeFoodQuery strips digits and surrounding whitespace and lower-cases.
func NormalizeFoodQuery(q string) string {
	q = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, q)
	return strings.ToLower(strings.TrimSpace(q))
}

type NutritionService struct {
	lookup NutrientLookup
}

func NewNutritionService(lookup NutrientLookup) *NutritionService {
	return &NutritionService{lookup: lookup}
}

// ParseAndAggregate parses text and resolves every item.
func (s *NutritionService) ParseAndAggregate(ctx context.Context, text string) ([]models.FoodNutrition, models.Nutrients) {
	return s.Aggregate(ctx, ParseFoodItems(text))
}

// Aggregate looks up each item once, scales by quantity and sums. Items the
// lookup cannot resolve are logged and left out of both the lines and the
// total.
func (s *NutritionService) Aggregate(ctx context.Context, items []models.FoodItem) ([]models.FoodNutrition, models.Nutrients) {
	foods := make([]models.FoodNutrition, 0, len(items))
	var total models.Nutrients

	for _, it := range items {
		per, err := s.lookup.Lookup(ctx, it.RawQuery)
		if err != nil {
			if errors.Is(err, ErrFoodNotFound) {
				log.Printf("skipping %q: not found in nutrient source", it.RawQuery)
			} else {
				log.Printf("skipping %q: lookup failed: %v", it.RawQuery, err)
			}
			continue
		}

		scaled := per.Scale(float64(it.Quantity))
		total = total.Add(scaled)
		foods = append(foods, models.FoodNutrition{
			Item:      fmt.Sprintf("%d %s", it.Quantity, it.FoodName),
			Nutrients: scaled,
		})
	}
	return foods, total
}
