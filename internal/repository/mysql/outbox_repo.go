package mysql

import (
	"context"

	"minbar/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// Append is called inside the moderation transaction so the event row
// commits or rolls back together with the moderation writes.
func (r *OutboxRepository) Append(ob *model.ModerationOutbox) error {
	return r.DB.Create(ob).Error
}

func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]model.ModerationOutbox, error) {
	var rows []model.ModerationOutbox
	err := r.DB.WithContext(ctx).
		Where("status = ?", model.OutboxPending).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ModerationOutbox{}).
		Where("id = ?", id).
		Update("status", model.OutboxSent).Error
}

// MarkRetry bumps the retry counter; rows past maxRetry are parked as
// failed so the relayer stops picking them up.
func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64, maxRetry int) error {
	return r.DB.WithContext(ctx).Model(&model.ModerationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"retry": gorm.Expr("retry + 1"),
			"status": gorm.Expr(
				"CASE WHEN retry + 1 >= ? THEN ? ELSE ? END",
				maxRetry, model.OutboxFailed, model.OutboxPending,
			),
		}).Error
}
