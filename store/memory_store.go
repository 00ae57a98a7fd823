package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"nutritrack/models"

	"github.com/google/uuid"
)

// MemoryStore keeps everything in process. Used by tests and when
// DB_DRIVER=memory.
type MemoryStore struct {
	mu       sync.RWMutex
	meals    []models.Meal
	users    map[string]models.User
	progress map[string]models.DailyProgress // key: user_id|date
	alerts   []models.Alert
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		progress: make(map[string]models.DailyProgress),
	}
}

func (s *MemoryStore) CreateMeal(_ context.Context, meal *models.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	now := time.Now()
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = now
	}
	meal.UpdatedAt = now
	for i := range meal.Foods {
		meal.Foods[i].MealID = meal.ID
		meal.Foods[i].Position = i
	}

	cp := *meal
	cp.Foods = append(make([]models.MealFood, 0, len(meal.Foods)), meal.Foods...)
	s.meals = append(s.meals, cp)
	return nil
}

func (s *MemoryStore) ListMeals(_ context.Context, userID, date string) ([]models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Meal
	// newest insert first so equal timestamps still list newest first
	for i := len(s.meals) - 1; i >= 0; i-- {
		m := s.meals[i]
		if m.UserID != userID || (date != "" && m.Date != date) {
			continue
		}
		m.Foods = append(make([]models.MealFood, 0, len(m.Foods)), m.Foods...)
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) SaveDailyProgress(_ context.Context, p *models.DailyProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.UpdatedAt = time.Now()
	s.progress[p.UserID+"|"+p.Date] = *p
	return nil
}

func (s *MemoryStore) ListDailyProgress(_ context.Context, userID string) ([]models.DailyProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.DailyProgress
	for _, p := range s.progress {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *MemoryStore) FindUser(_ context.Context, uid string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	s.users[u.UID] = *u
	return nil
}

func (s *MemoryStore) UpdateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[u.UID]
	if !ok {
		return ErrNotFound
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now()
	s.users[u.UID] = *u
	return nil
}

func (s *MemoryStore) CreateAlert(_ context.Context, a *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.alerts = append(s.alerts, *a)
	return nil
}

func (s *MemoryStore) ListAlerts(_ context.Context, userID string) ([]models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Alert
	for i := len(s.alerts) - 1; i >= 0; i-- {
		if s.alerts[i].UserID == userID {
			out = append(out, s.alerts[i])
		}
	}
	return out, nil
}
