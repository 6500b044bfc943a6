package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/friendsofmine/backend/config"
	"github.com/friendsofmine/backend/internal/infra/db"
	"github.com/friendsofmine/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory SQLite database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file::memory:?_pragma=foreign_keys(1)",
	}, "test")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(model.Models()...))
	t.Cleanup(func() { _ = database.Close() })

	return database.DB()
}
