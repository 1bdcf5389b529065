package service

import (
	"context"
	"testing"
	"time"

	"minbar/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmPublishesAndNotifies(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	mod := NewModerationService(db, nil)
	author := uuid.NewString()

	sub, err := subs.Submit(model.SectionIslamism, author, validExcerpt, validCitation)
	require.NoError(t, err)

	notif, err := mod.Confirm(context.Background(), model.SectionIslamism, sub.ID, "Looks good")
	require.NoError(t, err)

	// The submission is gone.
	_, err = subs.Get(model.SectionIslamism, sub.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Exactly one post exists, under a fresh id, carrying the
	// author, content and original submission time forward.
	var posts []model.Post
	require.NoError(t, db.Find(&posts).Error)
	require.Len(t, posts, 1)
	post := posts[0]
	assert.NotEqual(t, sub.ID, post.ID)
	assert.Equal(t, author, post.AuthorID)
	assert.Equal(t, sub.Excerpt, post.Excerpt)
	assert.Equal(t, sub.Citation, post.Citation)
	assert.WithinDuration(t, sub.SubmittedAt, post.SubmittedAt, time.Second)

	// Exactly one approval notification for the author, deep-linking
	// the new post.
	var notifs []model.Notification
	require.NoError(t, db.Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, notif.ID, notifs[0].ID)
	assert.Equal(t, author, notifs[0].RecipientID)
	assert.Equal(t, model.NotificationApproval, notifs[0].Type)
	assert.False(t, notifs[0].Read)

	view, err := notifs[0].View()
	require.NoError(t, err)
	content := view.Content.(model.ApprovalContent)
	assert.Contains(t, content.URL, post.ID)
	assert.Contains(t, content.URL, "/sections/islamism")
	assert.Equal(t, "Looks good", content.Comment)
}

func TestRejectDiscardsAndNotifies(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	mod := NewModerationService(db, nil)
	author := uuid.NewString()

	sub, err := subs.Submit(model.SectionModernity, author, validExcerpt, validCitation)
	require.NoError(t, err)

	notif, err := mod.Reject(context.Background(), model.SectionModernity, sub.ID, "Needs more sourcing")
	require.NoError(t, err)
	assert.Equal(t, model.NotificationRejection, notif.Type)

	_, err = subs.Get(model.SectionModernity, sub.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// No post is ever created on rejection.
	var postCount int64
	require.NoError(t, db.Model(&model.Post{}).Count(&postCount).Error)
	assert.Zero(t, postCount)

	// The author's single rejection notification carries the original
	// excerpt and citation.
	var notifs []model.Notification
	require.NoError(t, db.Where("recipient_id = ?", author).Find(&notifs).Error)
	require.Len(t, notifs, 1)

	view, err := notifs[0].View()
	require.NoError(t, err)
	content := view.Content.(model.RejectionContent)
	assert.Equal(t, sub.Excerpt, content.Excerpt)
	assert.Equal(t, sub.Citation, content.Citation)
	assert.Equal(t, "Needs more sourcing", content.Comment)
}

func TestResolveUnknownSubmission(t *testing.T) {
	db := newTestDB(t)
	mod := NewModerationService(db, nil)

	_, err := mod.Confirm(context.Background(), model.SectionIslamism, uuid.NewString(), "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = mod.Reject(context.Background(), model.SectionIslamism, uuid.NewString(), "")
	assert.ErrorIs(t, err, ErrNotFound)

	var notifCount, postCount int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&notifCount).Error)
	require.NoError(t, db.Model(&model.Post{}).Count(&postCount).Error)
	assert.Zero(t, notifCount)
	assert.Zero(t, postCount)
}

func TestResolveWrongSection(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	mod := NewModerationService(db, nil)

	sub, err := subs.Submit(model.SectionFeminism, uuid.NewString(), validExcerpt, validCitation)
	require.NoError(t, err)

	_, err = mod.Confirm(context.Background(), model.SectionSecularism, sub.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	// Still pending in its own section.
	_, err = subs.Get(model.SectionFeminism, sub.ID)
	assert.NoError(t, err)
}

func TestDoubleResolutionIsNoOp(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	mod := NewModerationService(db, nil)
	author := uuid.NewString()

	sub, err := subs.Submit(model.SectionIslamism, author, validExcerpt, validCitation)
	require.NoError(t, err)

	_, err = mod.Confirm(context.Background(), model.SectionIslamism, sub.ID, "")
	require.NoError(t, err)

	// A second confirm and a late reject both come back NotFound and
	// add nothing.
	_, err = mod.Confirm(context.Background(), model.SectionIslamism, sub.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = mod.Reject(context.Background(), model.SectionIslamism, sub.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	var postCount, notifCount int64
	require.NoError(t, db.Model(&model.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&model.Notification{}).Count(&notifCount).Error)
	assert.EqualValues(t, 1, postCount)
	assert.EqualValues(t, 1, notifCount)
}

func TestModerationAppendsOutboxRows(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	mod := NewModerationService(db, nil)

	confirmed, err := subs.Submit(model.SectionIslamism, uuid.NewString(), validExcerpt, validCitation)
	require.NoError(t, err)
	rejected, err := subs.Submit(model.SectionIslamism, uuid.NewString(), validExcerpt, validCitation)
	require.NoError(t, err)

	_, err = mod.Confirm(context.Background(), model.SectionIslamism, confirmed.ID, "")
	require.NoError(t, err)
	_, err = mod.Reject(context.Background(), model.SectionIslamism, rejected.ID, "")
	require.NoError(t, err)

	var rows []model.ModerationOutbox
	require.NoError(t, db.Order("id ASC").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.Equal(t, "confirmed", rows[0].EventType)
	assert.Equal(t, confirmed.ID, rows[0].SubmissionID)
	assert.NotEmpty(t, rows[0].PostID)
	assert.Equal(t, model.OutboxPending, rows[0].Status)

	assert.Equal(t, "rejected", rows[1].EventType)
	assert.Equal(t, rejected.ID, rows[1].SubmissionID)
	assert.Empty(t, rows[1].PostID)
}

func TestOutboxRelayerDrainsPending(t *testing.T) {
	db := newTestDB(t)
	subs := NewSubmissionService(db)
	mod := NewModerationService(db, nil)

	sub, err := subs.Submit(model.SectionModernity, uuid.NewString(), validExcerpt, validCitation)
	require.NoError(t, err)
	_, err = mod.Confirm(context.Background(), model.SectionModernity, sub.ID, "")
	require.NoError(t, err)

	var sent []model.ModerationOutbox
	relayer := NewOutboxRelayer(db, func(ctx context.Context, ob *model.ModerationOutbox) error {
		sent = append(sent, *ob)
		return nil
	})
	relayer.drainOnce(context.Background())

	require.Len(t, sent, 1)
	assert.Equal(t, sub.ID, sent[0].SubmissionID)

	var pending int64
	require.NoError(t, db.Model(&model.ModerationOutbox{}).
		Where("status = ?", model.OutboxPending).Count(&pending).Error)
	assert.Zero(t, pending, "drained rows must be marked sent")
}
