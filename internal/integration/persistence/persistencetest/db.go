// Package persistencetest provides in-memory stores for tests of code built on
// the persistence layer.
package persistencetest

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/friendsofmine/backend/config"
	"github.com/friendsofmine/backend/internal/infra/db"
	"github.com/friendsofmine/backend/internal/integration/persistence"
	"github.com/friendsofmine/backend/internal/integration/persistence/model"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
// It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file::memory:?_pragma=foreign_keys(1)",
	}, "test")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(model.Models()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return database.DB()
}

// TxContext begins a transaction on gormDB and returns a context carrying it.
// The transaction is rolled back when the test ends, so nothing a test writes
// through that context survives it.
func TxContext(t testing.TB, gormDB *gorm.DB) context.Context {
	t.Helper()

	tx := gormDB.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin test transaction: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })

	return persistence.ContextWithTx(context.Background(), tx)
}
