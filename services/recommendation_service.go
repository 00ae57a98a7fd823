package services

import (
	"math"
	"sort"

	"nutritrack/models"
)

const (
	topDeficitCount = 2
	suggestionCount = 3
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeDeficits returns goal-consumed for every nutrient still under its
// goal, rounded to one decimal. Nutrients at or over goal are omitted.
func ComputeDeficits(consumed, goal models.Nutrients) models.Deficits {
	d := models.Deficits{}
	for _, name := range models.NutrientNames {
		c, g := consumed.Get(name), goal.Get(name)
		if c < g {
			d[name] = round1(g - c)
		}
	}
	return d
}

// TopDeficitNutrients returns up to n nutrient names with the largest gaps.
// Equal gaps keep canonical nutrient order.
func TopDeficitNutrients(deficits models.Deficits, n int) []string {
	names := make([]string, 0, len(deficits))
	for _, name := range models.NutrientNames {
		if _, ok := deficits[name]; ok {
			names = append(names, name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return deficits[names[i]] > deficits[names[j]]
	})
	if n >= 0 && len(names) > n {
		names = names[:n]
	}
	return names
}

// SuggestFoods ranks the catalog by the summed values of the top nutrients.
// Ties keep catalog order.
func SuggestFoods(top []string, catalog []models.FoodCatalogEntry, limit int) []models.FoodCatalogEntry {
	type scored struct {
		entry models.FoodCatalogEntry
		score float64
	}
	ranked := make([]scored, len(catalog))
	for i, f := range catalog {
		var s float64
		for _, name := range top {
			s += f.Get(name)
		}
		ranked[i] = scored{f, s}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	if limit < 0 {
		limit = 0
	}
	out := make([]models.FoodCatalogEntry, 0, limit)
	for _, r := range ranked[:limit] {
		out = append(out, r.entry)
	}
	return out
}

// ComputeDeficitAndSuggest computes deficits and picks three catalog foods
// richest in the two largest gaps. With no deficits the first three catalog
// entries come back unchanged.
func ComputeDeficitAndSuggest(consumed, goal models.Nutrients, catalog []models.FoodCatalogEntry) (models.Deficits, []models.FoodCatalogEntry) {
	deficits := ComputeDeficits(consumed, goal)
	top := TopDeficitNutrients(deficits, topDeficitCount)
	return deficits, SuggestFoods(top, catalog, suggestionCount)
}
