package service

import (
	"context"
	"testing"

	"minbar/internal/model"
	"minbar/internal/pkg"
	"minbar/internal/repository/mysql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// insertNotification stores a well-formed notification directly.
func insertNotification(t *testing.T, repo *mysql.NotificationRepository, recipient string, read bool) *model.Notification {
	t.Helper()
	encoded, err := model.EncodeContent(model.NewApprovalContent("/sections/islamism?id="+uuid.NewString(), ""))
	require.NoError(t, err)
	n := &model.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipient,
		Type:        model.NotificationApproval,
		Content:     encoded,
		Read:        read,
	}
	require.NoError(t, repo.Create(n))
	return n
}

func TestListForUserFilters(t *testing.T) {
	db := newTestDB(t)
	repo := &mysql.NotificationRepository{DB: db}
	svc := NewNotificationService(db, nil)
	user := uuid.NewString()

	insertNotification(t, repo, user, false)
	insertNotification(t, repo, user, true)
	insertNotification(t, repo, uuid.NewString(), false)

	unread, err := svc.ListForUser(user, model.NotificationsUnread, pkg.NewPagination(1, 10))
	require.NoError(t, err)
	assert.Len(t, unread, 1)
	assert.False(t, unread[0].Read)

	read, err := svc.ListForUser(user, model.NotificationsRead, pkg.NewPagination(1, 10))
	require.NoError(t, err)
	assert.Len(t, read, 1)

	all, err := svc.ListForUser(user, model.NotificationsAll, pkg.NewPagination(1, 10))
	require.NoError(t, err)
	assert.Len(t, all, 2, "another user's mailbox never leaks in")
}

func TestListForUserFailsLoudlyOnCorruptRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, nil)
	user := uuid.NewString()

	// Rejection payload stored under an approval tag.
	encoded, err := model.EncodeContent(model.NewRejectionContent("stored excerpt", "stored citation", ""))
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Notification{
		ID:          uuid.NewString(),
		RecipientID: user,
		Type:        model.NotificationApproval,
		Content:     encoded,
	}).Error)

	_, err = svc.ListForUser(user, model.NotificationsAll, pkg.NewPagination(1, 10))
	assert.ErrorIs(t, err, model.ErrContentMismatch)
}

func TestMarkRead(t *testing.T) {
	db := newTestDB(t)
	repo := &mysql.NotificationRepository{DB: db}
	svc := NewNotificationService(db, nil)
	user := uuid.NewString()
	n := insertNotification(t, repo, user, false)

	require.NoError(t, svc.MarkRead(context.Background(), user, n.ID, true))
	got, err := repo.FindByID(n.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	// And back to unread.
	require.NoError(t, svc.MarkRead(context.Background(), user, n.ID, false))
	got, err = repo.FindByID(n.ID)
	require.NoError(t, err)
	assert.False(t, got.Read)

	// A stranger flipping the flag is a silent no-op.
	require.NoError(t, svc.MarkRead(context.Background(), uuid.NewString(), n.ID, true))
	got, err = repo.FindByID(n.ID)
	require.NoError(t, err)
	assert.False(t, got.Read)

	// As is a missing id.
	require.NoError(t, svc.MarkRead(context.Background(), user, uuid.NewString(), true))
}

func TestDeleteScoping(t *testing.T) {
	db := newTestDB(t)
	repo := &mysql.NotificationRepository{DB: db}
	svc := NewNotificationService(db, nil)
	owner := uuid.NewString()
	n := insertNotification(t, repo, owner, false)

	// A non-owner's delete affects zero rows even with the right id.
	deleted, err := svc.Delete(context.Background(), uuid.NewString(), false, n.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	_, err = repo.FindByID(n.ID)
	assert.NoError(t, err, "row must survive a foreign delete")

	// The owner can delete it.
	deleted, err = svc.Delete(context.Background(), owner, false, n.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}

func TestAdminDeletesAny(t *testing.T) {
	db := newTestDB(t)
	repo := &mysql.NotificationRepository{DB: db}
	svc := NewNotificationService(db, nil)
	n := insertNotification(t, repo, uuid.NewString(), false)

	deleted, err := svc.Delete(context.Background(), uuid.NewString(), true, n.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	// Deleting an already-gone id is quiet.
	deleted, err = svc.Delete(context.Background(), uuid.NewString(), true, n.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestAdminDeletePropagatesStoreFailure(t *testing.T) {
	db := newTestDB(t)
	repo := &mysql.NotificationRepository{DB: db}
	svc := NewNotificationService(db, nil)
	n := insertNotification(t, repo, uuid.NewString(), false)

	// A broken store must surface as an error, not read as
	// "already gone".
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	deleted, err := svc.Delete(context.Background(), uuid.NewString(), true, n.ID)
	assert.Error(t, err)
	assert.Zero(t, deleted)
}

func TestUnreadCountWithoutCache(t *testing.T) {
	db := newTestDB(t)
	repo := &mysql.NotificationRepository{DB: db}
	svc := NewNotificationService(db, nil)
	user := uuid.NewString()

	insertNotification(t, repo, user, false)
	insertNotification(t, repo, user, false)
	insertNotification(t, repo, user, true)

	count, err := svc.UnreadCount(context.Background(), user)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
