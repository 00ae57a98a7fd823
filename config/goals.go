package config

import "nutritrack/models"

// DefaultGoals are the daily targets used when neither the environment nor
// the user profile provides any.
var DefaultGoals = models.Nutrients{
	Calories: 2000,
	Protein:  100,
	Carbs:    250,
	Fat:      70,
	Fiber:    30,
	Sugar:    50,
}

// GoalsFromEnv overlays GOAL_* variables on DefaultGoals.
func GoalsFromEnv() models.Nutrients {
	return models.Nutrients{
		Calories: getFloat("GOAL_CALORIES", DefaultGoals.Calories),
		Protein:  getFloat("GOAL_PROTEIN", DefaultGoals.Protein),
		Carbs:    getFloat("GOAL_CARBS", DefaultGoals.Carbs),
		Fat:      getFloat("GOAL_FAT", DefaultGoals.Fat),
		Fiber:    getFloat("GOAL_FIBER", DefaultGoals.Fiber),
		Sugar:    getFloat("GOAL_SUGAR", DefaultGoals.Sugar),
	}
}
