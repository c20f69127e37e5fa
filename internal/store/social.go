package store

import (
	"context"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

var (
	eventPreload         = []string{"Movie", "Series"}
	sharePreload         = []string{"Movie", "Series", "SenderUser", "RecipientUser"}
	sentSharePreload     = []string{"Movie", "Series", "RecipientUser"}
	receivedSharePreload = []string{"Movie", "Series", "SenderUser"}
)

// Scheduling

func (s *Store) ListEvents(ctx context.Context) ([]models.SchedulingEvent, error) {
	return findWhere[models.SchedulingEvent](ctx, s.DB, eventPreload, nil)
}

func (s *Store) ListEventsByUser(ctx context.Context, userID uint) ([]models.SchedulingEvent, error) {
	return findWhere[models.SchedulingEvent](ctx, s.DB, eventPreload, "user_id = ?", userID)
}

func (s *Store) GetEvent(ctx context.Context, id uint) (*models.SchedulingEvent, error) {
	return first[models.SchedulingEvent](ctx, s.DB, id, eventPreload...)
}

func (s *Store) CreateEvent(ctx context.Context, e *models.SchedulingEvent) error {
	if err := create(ctx, s.DB, e); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Preload("Movie").Preload("Series").First(e, e.ID).Error
}

func (s *Store) UpdateEvent(ctx context.Context, id uint, fields map[string]any) (*models.SchedulingEvent, error) {
	return update[models.SchedulingEvent](ctx, s.DB, id, fields, eventPreload...)
}

func (s *Store) DeleteEvent(ctx context.Context, id uint) error {
	return remove[models.SchedulingEvent](ctx, s.DB, id)
}

// Shares

func (s *Store) ListShares(ctx context.Context) ([]models.Share, error) {
	return findWhere[models.Share](ctx, s.DB, sharePreload, nil)
}

func (s *Store) ListSharesSent(ctx context.Context, userID uint) ([]models.Share, error) {
	return findWhere[models.Share](ctx, s.DB, sentSharePreload, "sender_user_id = ?", userID)
}

func (s *Store) ListSharesReceived(ctx context.Context, userID uint) ([]models.Share, error) {
	return findWhere[models.Share](ctx, s.DB, receivedSharePreload, "recipient_user_id = ?", userID)
}

func (s *Store) GetShare(ctx context.Context, id uint) (*models.Share, error) {
	return first[models.Share](ctx, s.DB, id, sharePreload...)
}

func (s *Store) CreateShare(ctx context.Context, sh *models.Share) error {
	return create(ctx, s.DB, sh)
}

func (s *Store) UpdateShare(ctx context.Context, id uint, fields map[string]any) (*models.Share, error) {
	return update[models.Share](ctx, s.DB, id, fields, sharePreload...)
}

func (s *Store) DeleteShare(ctx context.Context, id uint) error {
	return remove[models.Share](ctx, s.DB, id)
}
