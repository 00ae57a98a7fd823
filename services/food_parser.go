package services

import (
	"regexp"
	"strconv"
	"strings"

	"nutritrack/models"
)

var (
	foodSeparator = regexp.MustCompile(`\s+and\s+|\s*,\s*|\s*\+\s*`)
	quantityFood  = regexp.MustCompile(`^(\d+)\s+(.+)`)
)

// ParseFoodItems splits free text like "2 eggs and 1 toast, 3 bananas" into
// food items. It never fails: anything without a leading "<int> " becomes a
// single item of quantity 1, including purely numeric segments like "5".
// A quantity too large for an int is treated as 1 of the named food.
func ParseFoodItems(text string) []models.FoodItem {
	var items []models.FoodItem
	for _, part := range foodSeparator.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		item := models.FoodItem{Quantity: 1, FoodName: part, RawQuery: part}
		if m := quantityFood.FindStringSubmatch(part); m != nil {
			item.FoodName = strings.TrimSpace(m[2])
			if qty, err := strconv.Atoi(m[1]); err == nil {
				item.Quantity = qty
			}
		}
		items = append(items, item)
	}
	return items
}
