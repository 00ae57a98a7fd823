package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"nutritrack/models"
	"nutritrack/store"
)

// Identity is what a verified token says about its holder.
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

type UserService struct {
	users        UserStore
	defaultGoals models.Nutrients
	now          func() time.Time
}

func NewUserService(users UserStore, defaultGoals models.Nutrients) *UserService {
	return &UserService{users: users, defaultGoals: defaultGoals, now: time.Now}
}

// SyncProfile creates the profile on first sign-in, seeded with the default
// goals, and refreshes login time and identity fields afterwards.
func (s *UserService) SyncProfile(ctx context.Context, id Identity) (*models.User, error) {
	if id.UID == "" {
		return nil, ErrMissingUser
	}
	now := s.now().UTC()

	u, err := s.users.FindUser(ctx, id.UID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		u = &models.User{
			UID:            id.UID,
			Email:          id.Email,
			Name:           id.Name,
			Picture:        id.Picture,
			NutritionGoals: s.defaultGoals,
			LastLogin:      &now,
		}
		if err := s.users.CreateUser(ctx, u); err != nil {
			return nil, fmt.Errorf("creating user %s: %w", id.UID, err)
		}
		log.Printf("created profile for %s", id.UID)
		return u, nil
	case err != nil:
		return nil, fmt.Errorf("loading user %s: %w", id.UID, err)
	}

	u.LastLogin = &now
	if id.Email != "" {
		u.Email = id.Email
	}
	if id.Name != "" {
		u.Name = id.Name
	}
	if id.Picture != "" {
		u.Picture = id.Picture
	}
	if err := s.users.UpdateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("updating user %s: %w", id.UID, err)
	}
	return u, nil
}

func (s *UserService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	return s.users.FindUser(ctx, uid)
}

// UpdateGoals replaces all six goals. Returns store.ErrNotFound for unknown
// users. An all-zero set is rejected since it reads back as "no goals".
func (s *UserService) UpdateGoals(ctx context.Context, uid string, goals models.Nutrients) (*models.User, error) {
	if goals == (models.Nutrients{}) {
		return nil, ErrInvalidGoals
	}
	u, err := s.users.FindUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	u.NutritionGoals = goals
	if err := s.users.UpdateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("updating goals for %s: %w", uid, err)
	}
	return u, nil
}
