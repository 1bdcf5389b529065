package service

import (
	"os"
	"testing"

	"minbar/internal/model"
	"minbar/internal/pkg"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	if err := pkg.SetSecret("service-test-secret"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every query on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Submission{},
		&model.Post{},
		&model.Notification{},
		&model.ModerationOutbox{},
	))
	return db
}
