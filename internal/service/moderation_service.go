package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"minbar/internal/model"
	"minbar/internal/repository/mysql"
	"minbar/internal/repository/redis"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModerationService executes the one-shot submission state machine:
// Pending -> Confirmed or Pending -> Rejected, both terminal. All
// writes of a transition (submission delete, post insert, notification
// insert, outbox append) happen in a single transaction, so concurrent
// readers see either the pending state or the fully resolved one.
type ModerationService struct {
	db    *gorm.DB
	cache *redis.NotificationCacheRepository
}

func NewModerationService(db *gorm.DB, cache *redis.NotificationCacheRepository) *ModerationService {
	return &ModerationService{db: db, cache: cache}
}

// PostURL is the deep link placed in approval notifications.
func PostURL(section model.Section, postID string) string {
	return fmt.Sprintf("/sections/%s?id=%s", section, postID)
}

// Confirm promotes a submission into a published post and notifies the
// author. The new post gets a fresh id but keeps the original
// submission time as its ordering key.
func (s *ModerationService) Confirm(ctx context.Context, section model.Section, submissionID, comment string) (*model.Notification, error) {
	var notif *model.Notification

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subRepo := &mysql.SubmissionRepository{DB: tx}

		sub, err := subRepo.Get(section, submissionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		// Conditional delete: zero rows means another moderator
		// resolved this submission first, so bail out instead of
		// producing a duplicate post or notification.
		affected, err := subRepo.Remove(section, submissionID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}

		post := &model.Post{
			ID:          uuid.NewString(),
			AuthorID:    sub.AuthorID,
			Section:     section,
			Excerpt:     sub.Excerpt,
			Citation:    sub.Citation,
			SubmittedAt: sub.SubmittedAt,
		}
		postRepo := &mysql.PostRepository{DB: tx}
		if err := postRepo.Create(post); err != nil {
			return err
		}

		content := model.NewApprovalContent(PostURL(section, post.ID), comment)
		notif, err = createNotification(tx, sub.AuthorID, content)
		if err != nil {
			return err
		}

		return appendOutbox(tx, "confirmed", sub, post.ID)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateUnread(ctx, notif.RecipientID)
	return notif, nil
}

// Reject discards a submission and notifies the author, carrying the
// rejected excerpt and citation so the author can still see them.
// No post is ever created on this path.
func (s *ModerationService) Reject(ctx context.Context, section model.Section, submissionID, comment string) (*model.Notification, error) {
	var notif *model.Notification

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subRepo := &mysql.SubmissionRepository{DB: tx}

		sub, err := subRepo.Get(section, submissionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		affected, err := subRepo.Remove(section, submissionID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}

		content := model.NewRejectionContent(sub.Excerpt, sub.Citation, comment)
		notif, err = createNotification(tx, sub.AuthorID, content)
		if err != nil {
			return err
		}

		return appendOutbox(tx, "rejected", sub, "")
	})
	if err != nil {
		return nil, err
	}

	s.invalidateUnread(ctx, notif.RecipientID)
	return notif, nil
}

func createNotification(tx *gorm.DB, recipientID string, content model.NotificationContent) (*model.Notification, error) {
	encoded, err := model.EncodeContent(content)
	if err != nil {
		return nil, err
	}

	n := &model.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Type:        content.Kind(),
		Content:     encoded,
	}
	repo := &mysql.NotificationRepository{DB: tx}
	if err := repo.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

func appendOutbox(tx *gorm.DB, eventType string, sub *model.Submission, postID string) error {
	payload, err := json.Marshal(map[string]string{
		"event":         eventType,
		"section":       sub.Section.String(),
		"submission_id": sub.ID,
		"post_id":       postID,
		"author_id":     sub.AuthorID,
	})
	if err != nil {
		return err
	}

	repo := &mysql.OutboxRepository{DB: tx}
	return repo.Append(&model.ModerationOutbox{
		EventType:    eventType,
		Section:      sub.Section,
		SubmissionID: sub.ID,
		PostID:       postID,
		AuthorID:     sub.AuthorID,
		Payload:      string(payload),
	})
}

// invalidateUnread drops the recipient's cached unread counter; the
// next count read rebuilds it from the store.
func (s *ModerationService) invalidateUnread(ctx context.Context, recipientID string) {
	if s.cache == nil || redis.Client == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, recipientID)
}
