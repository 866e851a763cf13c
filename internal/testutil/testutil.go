// Package testutil provides helpers for integration tests that need a real
// MySQL instance. Tests skip when MYSQL_TEST_DSN is unset.
package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ZivNavon/customer-management-tool/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// OpenTestDB connects to the test database, migrates the schema, and
// registers a cleanup that wipes all rows so tests stay independent.
func OpenTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := RequireEnv(t, "MYSQL_TEST_DSN")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test mysql failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Contact{},
		&model.Meeting{},
		&model.MeetingAsset{},
		&model.MeetingSummary{},
		&model.EmailDraft{},
	); err != nil {
		t.Fatalf("migrate test schema failed: %v", err)
	}

	t.Cleanup(func() {
		// Child tables first; customer deletes cascade but user rows do not.
		for _, table := range []any{
			&model.EmailDraft{},
			&model.MeetingSummary{},
			&model.MeetingAsset{},
			&model.Meeting{},
			&model.Contact{},
			&model.Customer{},
			&model.User{},
		} {
			db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table)
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
