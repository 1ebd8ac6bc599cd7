package postgres

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// Each test gets its own database.
func setupTestDB(t *testing.T) *RepoDatabase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := migrate(db); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return &RepoDatabase{DB: db}
}
