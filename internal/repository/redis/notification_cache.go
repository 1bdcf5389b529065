package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	UnreadCountTTL       = 24 * time.Hour
	UnreadCountKeyPrefix = "notif:unread:cnt"
)

// NotificationCacheRepository caches per-user unread counts. The DB is
// the source of truth; writers invalidate and readers rebuild.
type NotificationCacheRepository struct {
	ttl time.Duration
}

func NewNotificationCacheRepository() *NotificationCacheRepository {
	return &NotificationCacheRepository{ttl: UnreadCountTTL}
}

func (r *NotificationCacheRepository) countKey(userID string) string {
	return fmt.Sprintf("%s:%s", UnreadCountKeyPrefix, userID)
}

// GetUnreadCount returns (count, hit, err); a miss is not an error.
func (r *NotificationCacheRepository) GetUnreadCount(ctx context.Context, userID string) (int64, bool, error) {
	val, err := Client.Get(ctx, r.countKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	return val, err == nil, err
}

// SetUnreadCount backfills the counter after a DB read.
func (r *NotificationCacheRepository) SetUnreadCount(ctx context.Context, userID string, count int64) error {
	return Client.Set(ctx, r.countKey(userID), count, r.ttl).Err()
}

// Invalidate drops the counter after any write that changes it.
func (r *NotificationCacheRepository) Invalidate(ctx context.Context, userID string) error {
	return Client.Del(ctx, r.countKey(userID)).Err()
}
