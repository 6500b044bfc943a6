package db

import (
	"gorm.io/driver/postgres"

	"github.com/friendsofmine/backend/config"
)

// NewPostgresConnection connects to the PostgreSQL server at cfg.URL.
func NewPostgresConnection(cfg *config.DatabaseConfig, environment string) (*Database, error) {
	return open(postgres.Open(cfg.URL), cfg, environment)
}
