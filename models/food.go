package models

import "gorm.io/gorm"

// FoodItem is one food mention split out of free text.
type FoodItem struct {
	Quantity int    `json:"quantity"`
	FoodName string `json:"food_name"`
	RawQuery string `json:"query"`
}

// FoodNutrition is one resolved line of a meal.
type FoodNutrition struct {
	Item      string    `json:"item"`
	Nutrients Nutrients `json:"nutrients"`
}

// NutrientReference is a row of the reference nutrient table. Values are
// per 100 reference units.
type NutrientReference struct {
	gorm.Model
	Food      string    `gorm:"type:varchar(255);index;not null" json:"food"`
	Nutrients Nutrients `gorm:"embedded" json:"nutrients"`
}

// FoodCatalogEntry is a suggestion candidate for the recommender.
type FoodCatalogEntry struct {
	Name string `json:"name" toml:"name"`
	Nutrients
}
