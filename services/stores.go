package services

import (
	"context"

	"nutritrack/models"
)

// MealStore persists meals and daily progress snapshots.
type MealStore interface {
	CreateMeal(ctx context.Context, meal *models.Meal) error
	// ListMeals returns newest first; an empty date lists every day.
	ListMeals(ctx context.Context, userID, date string) ([]models.Meal, error)
	SaveDailyProgress(ctx context.Context, p *models.DailyProgress) error
	ListDailyProgress(ctx context.Context, userID string) ([]models.DailyProgress, error)
}

type UserStore interface {
	FindUser(ctx context.Context, uid string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
}

type AlertStore interface {
	CreateAlert(ctx context.Context, a *models.Alert) error
	ListAlerts(ctx context.Context, userID string) ([]models.Alert, error)
}
