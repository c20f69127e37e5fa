package store

import (
	"context"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return findWhere[models.User](ctx, s.DB, nil, nil)
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return first[models.User](ctx, s.DB, id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return create(ctx, s.DB, u)
}

func (s *Store) UpdateUser(ctx context.Context, id uint, fields map[string]any) (*models.User, error) {
	return update[models.User](ctx, s.DB, id, fields)
}

// DeleteUser removes the user together with their ratings, notes, comments,
// events and shares.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return remove[models.User](ctx, s.DB, id)
}

func (s *Store) UserExists(ctx context.Context, id uint) (bool, error) {
	return exists[models.User](ctx, s.DB, "user", id)
}
