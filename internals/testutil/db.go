// file: internals/testutil/db.go
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	modmodel "talenthub_backend/internals/features/newsfeed/moderation/model"
	pubmodel "talenthub_backend/internals/features/newsfeed/publications/model"
	relmodel "talenthub_backend/internals/features/newsfeed/relationships/model"
	profilemodel "talenthub_backend/internals/features/users/profile/model"
)

// OpenTestDB spins up a throwaway sqlite database with the newsfeed schema.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// _busy_timeout keeps concurrent writers retrying instead of failing fast
	dbPath := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// sqlite allows one writer; a single pooled connection serializes
	// concurrent test transactions the way Postgres row locks would
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&profilemodel.UserProfileModel{},
		&pubmodel.PublicationModel{},
		&pubmodel.PublicationLikeModel{},
		&relmodel.UserBlockModel{},
		&relmodel.UserFollowModel{},
		&modmodel.ModerationViolationModel{},
		&modmodel.BannedWordModel{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
