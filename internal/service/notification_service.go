package service

import (
	"context"
	"errors"

	"minbar/internal/model"
	"minbar/internal/pkg"
	"minbar/internal/repository/mysql"
	"minbar/internal/repository/redis"

	"gorm.io/gorm"
)

type NotificationService struct {
	repo  *mysql.NotificationRepository
	cache *redis.NotificationCacheRepository
}

func NewNotificationService(db *gorm.DB, cache *redis.NotificationCacheRepository) *NotificationService {
	return &NotificationService{
		repo:  &mysql.NotificationRepository{DB: db},
		cache: cache,
	}
}

// ListForUser returns the recipient's mailbox with content decoded. A
// row whose type tag and payload disagree fails the read; it is never
// coerced into the wrong shape.
func (s *NotificationService) ListForUser(recipientID string, which model.NotificationFilter, p pkg.Pagination) ([]model.NotificationView, error) {
	rows, err := s.repo.ListForUser(recipientID, which, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}

	views := make([]model.NotificationView, 0, len(rows))
	for i := range rows {
		v, err := rows[i].View()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// UnreadCount is cache-aside: counter hit wins, miss reads the store
// and backfills.
func (s *NotificationService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	if s.cacheReady() {
		if count, hit, err := s.cache.GetUnreadCount(ctx, recipientID); err == nil && hit {
			return count, nil
		}
	}

	count, err := s.repo.CountUnread(recipientID)
	if err != nil {
		return 0, err
	}
	if s.cacheReady() {
		_ = s.cache.SetUnreadCount(ctx, recipientID, count)
	}
	return count, nil
}

// MarkRead flips the recipient's own read flag. A missing row is a
// no-op, not an error.
func (s *NotificationService) MarkRead(ctx context.Context, recipientID, id string, read bool) error {
	affected, err := s.repo.MarkRead(recipientID, id, read)
	if err != nil {
		return err
	}
	if affected > 0 {
		s.invalidate(ctx, recipientID)
	}
	return nil
}

// Delete removes a notification. Admins may delete any; everyone else
// only their own, where a foreign id simply affects zero rows.
func (s *NotificationService) Delete(ctx context.Context, actorID string, isAdmin bool, id string) (int64, error) {
	if isAdmin {
		n, err := s.repo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // already gone
		}
		if err != nil {
			return 0, err
		}
		affected, err := s.repo.DeleteAny(id)
		if err != nil {
			return 0, err
		}
		if affected > 0 {
			s.invalidate(ctx, n.RecipientID)
		}
		return affected, nil
	}

	affected, err := s.repo.DeleteOwn(actorID, id)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		s.invalidate(ctx, actorID)
	}
	return affected, nil
}

func (s *NotificationService) cacheReady() bool {
	return s.cache != nil && redis.Client != nil
}

func (s *NotificationService) invalidate(ctx context.Context, recipientID string) {
	if s.cacheReady() {
		_ = s.cache.Invalidate(ctx, recipientID)
	}
}
