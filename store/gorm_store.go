package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nutritrack/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// ---------- meals ----------

func (s *GormStore) CreateMeal(ctx context.Context, meal *models.Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	for i := range meal.Foods {
		meal.Foods[i].MealID = meal.ID
		meal.Foods[i].Position = i
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

// ListMeals returns a user's meals, newest first. An empty date lists all days.
func (s *GormStore) ListMeals(ctx context.Context, userID, date string) ([]models.Meal, error) {
	q := s.db.WithContext(ctx).
		Preload("Foods", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var meals []models.Meal
	if err := q.Order("created_at DESC").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}
	return meals, nil
}

// ---------- progress history ----------

// SaveDailyProgress upserts the snapshot for (user_id, date).
func (s *GormStore) SaveDailyProgress(ctx context.Context, p *models.DailyProgress) error {
	p.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			UpdateAll: true,
		}).
		Create(p).Error
	if err != nil {
		return fmt.Errorf("upsert daily progress: %w", err)
	}
	return nil
}

func (s *GormStore) ListDailyProgress(ctx context.Context, userID string) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

// ---------- users ----------

func (s *GormStore) FindUser(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("uid = ?", uid).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *GormStore) UpdateUser(ctx context.Context, u *models.User) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("uid = ?", u.UID).
		Select("*").
		Omit("uid", "created_at").
		Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- alerts ----------

func (s *GormStore) CreateAlert(ctx context.Context, a *models.Alert) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *GormStore) ListAlerts(ctx context.Context, userID string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}
