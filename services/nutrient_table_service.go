package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"nutritrack/models"

	"gorm.io/gorm"
)

// NutrientTableService looks foods up in the nutrient_references table.
type NutrientTableService struct{ db *gorm.DB }

func NewNutrientTableService(db *gorm.DB) *NutrientTableService {
	return &NutrientTableService{db: db}
}

// Lookup returns the first row (by id) whose lower-cased food name contains
// the normalized query.
func (s *NutrientTableService) Lookup(ctx context.Context, query string) (models.Nutrients, error) {
	cleaned := NormalizeFoodQuery(query)

	var row models.NutrientReference
	err := s.db.WithContext(ctx).
		Where("LOWER(food) LIKE ?", "%"+cleaned+"%").
		Order("id ASC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Nutrients{}, fmt.Errorf("%q (cleaned %q): %w", query, cleaned, ErrFoodNotFound)
	}
	if err != nil {
		return models.Nutrients{}, fmt.Errorf("nutrient table query: %w", err)
	}
	return row.Nutrients, nil
}

// csv header -> nutrient key
var referenceColumns = map[string]string{
	"caloric value": "calories",
	"protein":       "protein",
	"carbohydrates": "carbs",
	"fat":           "fat",
	"dietary fiber": "fiber",
	"sugars":        "sugar",
}

// ImportCSV loads reference rows from a CSV with a "food" column and the
// nutrient columns "Caloric Value", "Protein", "Carbohydrates", "Fat",
// "Dietary Fiber" and "Sugars". Extra columns are ignored; missing or empty
// nutrient cells are 0. Returns the number of rows inserted.
func (s *NutrientTableService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	rows, err := ReadReferenceCSV(r)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(&rows, 500).Error; err != nil {
		return 0, fmt.Errorf("insert nutrient references: %w", err)
	}
	return len(rows), nil
}

func ReadReferenceCSV(r io.Reader) ([]models.NutrientReference, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	foodCol := -1
	cols := map[int]string{}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "food" {
			foodCol = i
			continue
		}
		if n, ok := referenceColumns[key]; ok {
			cols[i] = n
		}
	}
	if foodCol < 0 {
		return nil, errors.New(`csv has no "food" column`)
	}

	var out []models.NutrientReference
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		if foodCol >= len(rec) || strings.TrimSpace(rec[foodCol]) == "" {
			continue
		}

		values := map[string]float64{}
		for i, n := range cols {
			if i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("csv line %d column %q: %w", line, header[i], err)
			}
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("csv line %d column %q: %v is not a non-negative number", line, header[i], v)
			}
			values[n] = v
		}
		out = append(out, models.NutrientReference{
			Food:      strings.TrimSpace(rec[foodCol]),
			Nutrients: models.FromMap(values),
		})
	}
	return out, nil
}
