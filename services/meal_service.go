package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nutritrack/models"
	"nutritrack/store"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrMissingUser      = errors.New("user_id is required")
	ErrMissingFoodItems = errors.New("food_items is required")
	ErrInvalidGoals     = errors.New("at least one nutrition goal must be greater than 0")
)

// EventPublisher pushes realtime events to a user's open connections.
type EventPublisher interface {
	Broadcast(userID string, payload any)
}

type MealService struct {
	meals        MealStore
	users        UserStore
	nutrition    *NutritionService
	catalog      []models.FoodCatalogEntry
	defaultGoals models.Nutrients

	events EventPublisher
	alerts *AlertBus

	now func() time.Time
}

func NewMealService(meals MealStore, users UserStore, nutrition *NutritionService, catalog []models.FoodCatalogEntry, defaultGoals models.Nutrients) *MealService {
	return &MealService{
		meals:        meals,
		users:        users,
		nutrition:    nutrition,
		catalog:      catalog,
		defaultGoals: defaultGoals,
		now:          time.Now,
	}
}

// WithEvents enables meal.logged broadcasts and goal alerts. Either may be nil.
func (s *MealService) WithEvents(events EventPublisher, alerts *AlertBus) *MealService {
	s.events = events
	s.alerts = alerts
	return s
}

// ResolveDate returns today's date for "" and validates anything else.
func (s *MealService) ResolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("%q: %w", date, ErrInvalidDate)
	}
	return date, nil
}

// LogMeal parses and resolves text, then stores the meal. Unresolvable items
// are dropped; a meal where nothing resolved is still stored with zero totals.
func (s *MealService) LogMeal(ctx context.Context, userID, date, text string) (*models.Meal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUser
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingFoodItems
	}
	date, err := s.ResolveDate(date)
	if err != nil {
		return nil, err
	}

	items := ParseFoodItems(text)
	lines, total := s.nutrition.Aggregate(ctx, items)

	meal := &models.Meal{
		UserID:         userID,
		Date:           date,
		FoodItems:      text,
		TotalNutrients: total,
		Foods:          make([]models.MealFood, 0, len(lines)),
		CreatedAt:      s.now().UTC(),
	}
	for _, l := range lines {
		meal.Foods = append(meal.Foods, models.MealFood{Item: l.Item, Nutrients: l.Nutrients})
	}

	var before models.Nutrients
	if s.events != nil || s.alerts != nil {
		if before, err = s.dayTotals(ctx, userID, date); err != nil {
			log.Printf("reading totals before meal for %s on %s: %v", userID, date, err)
		}
	}

	if err := s.meals.CreateMeal(ctx, meal); err != nil {
		return nil, fmt.Errorf("storing meal: %w", err)
	}
	log.Printf("meal %s logged for %s on %s (%d of %d items resolved)",
		meal.ID, userID, date, len(lines), len(items))

	after := before.Add(total)
	if s.events != nil {
		s.events.Broadcast(userID, map[string]any{
			"kind":   "meal.logged",
			"meal":   meal,
			"date":   date,
			"totals": after,
		})
	}
	if s.alerts != nil {
		goals := s.GoalsFor(ctx, userID)
		for _, name := range GoalCrossings(before, after, goals) {
			msg := fmt.Sprintf("You reached your daily %s goal (%.1f of %.1f).", name, after.Get(name), goals.Get(name))
			s.alerts.Emit(ctx, userID, models.AlertGoalReached, name, msg)
		}
	}
	return meal, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID, date string) ([]models.Meal, error) {
	if date != "" {
		var err error
		if date, err = s.ResolveDate(date); err != nil {
			return nil, err
		}
	}
	return s.meals.ListMeals(ctx, userID, date)
}

func (s *MealService) dayTotals(ctx context.Context, userID, date string) (models.Nutrients, error) {
	meals, err := s.meals.ListMeals(ctx, userID, date)
	if err != nil {
		return models.Nutrients{}, err
	}
	var total models.Nutrients
	for _, m := range meals {
		total = total.Add(m.TotalNutrients)
	}
	return total, nil
}

// DailySummary sums the day's meals and records a progress snapshot.
func (s *MealService) DailySummary(ctx context.Context, userID, date string) (models.Nutrients, string, error) {
	date, err := s.ResolveDate(date)
	if err != nil {
		return models.Nutrients{}, "", err
	}
	total, err := s.dayTotals(ctx, userID, date)
	if err != nil {
		return models.Nutrients{}, date, fmt.Errorf("summing meals: %w", err)
	}

	snap := &models.DailyProgress{
		UserID: userID,
		Date:   date,
		Totals: total,
		Goals:  s.GoalsFor(ctx, userID),
	}
	if err := s.meals.SaveDailyProgress(ctx, snap); err != nil {
		log.Printf("saving progress snapshot for %s on %s: %v", userID, date, err)
	}
	return total, date, nil
}

// NutritionSummary is DailySummary that degrades to zeros on a store error.
func (s *MealService) NutritionSummary(ctx context.Context, userID, date string) (models.Nutrients, string, error) {
	total, date, err := s.DailySummary(ctx, userID, date)
	if errors.Is(err, ErrInvalidDate) {
		return models.Nutrients{}, "", err
	}
	if err != nil {
		log.Printf("nutrition summary for %s on %s: %v", userID, date, err)
		return models.Nutrients{}, date, nil
	}
	return total, date, nil
}

type Recommendation struct {
	UserID      string                    `json:"user_id"`
	Date        string                    `json:"date"`
	Deficits    models.Deficits           `json:"deficits"`
	Suggestions []models.FoodCatalogEntry `json:"suggestions"`
}

// RecommendNextMeal compares the day's totals with the user's goals.
func (s *MealService) RecommendNextMeal(ctx context.Context, userID, date string) (*Recommendation, error) {
	consumed, date, err := s.NutritionSummary(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	deficits, suggestions := ComputeDeficitAndSuggest(consumed, s.GoalsFor(ctx, userID), s.catalog)
	return &Recommendation{
		UserID:      userID,
		Date:        date,
		Deficits:    deficits,
		Suggestions: suggestions,
	}, nil
}

func (s *MealService) ProgressHistory(ctx context.Context, userID string) ([]models.DailyProgress, error) {
	return s.meals.ListDailyProgress(ctx, userID)
}

// GoalsFor returns the user's own goals, falling back to the configured
// defaults for unknown users or users without goals.
func (s *MealService) GoalsFor(ctx context.Context, userID string) models.Nutrients {
	if s.users == nil {
		return s.defaultGoals
	}
	u, err := s.users.FindUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("loading goals for %s: %v", userID, err)
		}
		return s.defaultGoals
	}
	if !u.HasGoals() {
		return s.defaultGoals
	}
	return u.NutritionGoals
}

// GoalCrossings lists the nutrients that were under goal before and are at or
// over goal after. Nutrients with a zero goal never cross.
func GoalCrossings(before, after, goals models.Nutrients) []string {
	var out []string
	for _, name := range models.NutrientNames {
		g := goals.Get(name)
		if g <= 0 {
			continue
		}
		if before.Get(name) < g && after.Get(name) >= g {
			out = append(out, name)
		}
	}
	return out
}
