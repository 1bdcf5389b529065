package mysql

import (
	"minbar/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListForUser(recipientID string, which model.NotificationFilter, offset, limit int) ([]model.Notification, error) {
	q := r.DB.Where("recipient_id = ?", recipientID)
	switch which {
	case model.NotificationsRead:
		q = q.Where("`read` = ?", true)
	case model.NotificationsUnread:
		q = q.Where("`read` = ?", false)
	}

	var list []model.Notification
	err := q.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *NotificationRepository) CountUnread(recipientID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("recipient_id = ? AND `read` = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flips the read flag on the recipient's own notification.
// Zero affected rows means no matching row; not an error.
func (r *NotificationRepository) MarkRead(recipientID, id string, read bool) (int64, error) {
	tx := r.DB.Model(&model.Notification{}).
		Where("recipient_id = ? AND id = ?", recipientID, id).
		Update("read", read)
	return tx.RowsAffected, tx.Error
}

// DeleteOwn is scoped to the recipient: a non-owner's delete affects
// zero rows even when the id exists under another recipient.
func (r *NotificationRepository) DeleteOwn(recipientID, id string) (int64, error) {
	tx := r.DB.Where("recipient_id = ? AND id = ?", recipientID, id).
		Delete(&model.Notification{})
	return tx.RowsAffected, tx.Error
}

// DeleteAny is the admin-tier unscoped delete.
func (r *NotificationRepository) DeleteAny(id string) (int64, error) {
	tx := r.DB.Where("id = ?", id).Delete(&model.Notification{})
	return tx.RowsAffected, tx.Error
}

// FindByID exists so handlers can report who owned a deleted
// notification; admin-tier only.
func (r *NotificationRepository) FindByID(id string) (*model.Notification, error) {
	var n model.Notification
	err := r.DB.Where("id = ?", id).First(&n).Error
	return &n, err
}
