package db

import (
	"strings"

	"github.com/glebarez/sqlite"

	"github.com/friendsofmine/backend/config"
)

// NewSQLiteConnection opens a SQLite file or in-memory database.
// An in-memory database lives as long as its connection, so the pool is
// pinned to one connection that never expires.
func NewSQLiteConnection(cfg *config.DatabaseConfig, environment string) (*Database, error) {
	poolCfg := *cfg
	if strings.Contains(cfg.URL, ":memory:") {
		poolCfg.MaxOpenConns = 1
		poolCfg.MaxIdleConns = 1
		poolCfg.ConnMaxLifetime = 0
	}

	return open(sqlite.Open(cfg.URL), &poolCfg, environment)
}
