package models

// NutrientNames is the canonical key order used for JSON maps, goal
// validation and deficit tie-breaking.
var NutrientNames = []string{"calories", "protein", "carbs", "fat", "fiber", "sugar"}

// Nutrients is the fixed six-key nutrient vector used for per-item,
// per-meal, per-day and goal values.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Scale multiplies every nutrient by qty.
func (n Nutrients) Scale(qty float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * qty,
		Protein:  n.Protein * qty,
		Carbs:    n.Carbs * qty,
		Fat:      n.Fat * qty,
		Fiber:    n.Fiber * qty,
		Sugar:    n.Sugar * qty,
	}
}

// Add returns the element-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
		Sugar:    n.Sugar + o.Sugar,
	}
}

// Get returns the value for a nutrient name, or 0 for an unknown name.
func (n Nutrients) Get(name string) float64 {
	switch name {
	case "calories":
		return n.Calories
	case "protein":
		return n.Protein
	case "carbs":
		return n.Carbs
	case "fat":
		return n.Fat
	case "fiber":
		return n.Fiber
	case "sugar":
		return n.Sugar
	}
	return 0
}

// FromMap builds a vector from a name->value map; missing keys stay 0.
func FromMap(m map[string]float64) Nutrients {
	return Nutrients{
		Calories: m["calories"],
		Protein:  m["protein"],
		Carbs:    m["carbs"],
		Fat:      m["fat"],
		Fiber:    m["fiber"],
		Sugar:    m["sugar"],
	}
}

// Deficits maps a nutrient name to its positive gap (goal - consumed).
type Deficits map[string]float64
