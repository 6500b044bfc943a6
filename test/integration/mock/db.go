package mock

import (
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/friendsofmine/backend/config"
	"github.com/friendsofmine/backend/internal/infra/db"
)

var once sync.Once
var database *Db

type Db struct {
	DbConn *gorm.DB
	models map[string]any
	tables []string
}

// NewDb opens the shared in-memory store and migrates models. Models are
// given in dependency order, referenced tables first.
func NewDb(models ...any) *Db {
	once.Do(
		func() {
			database = open(models)
		},
	)

	return database
}

func open(models []any) *Db {
	conn, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file::memory:?_pragma=foreign_keys(1)",
	}, "test")
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: conn.DB(),
		models: map[string]any{},
	}

	for _, model := range models {
		stmt := &gorm.Statement{DB: newDbMock.DbConn}
		if err := stmt.Parse(model); err != nil {
			panic(err)
		}
		newDbMock.models[stmt.Schema.Table] = model
		newDbMock.tables = append(newDbMock.tables, stmt.Schema.Table)
	}

	if err := newDbMock.DbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	if err := newDbMock.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB empties every table and resets the identifier sequences.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		table := d.tables[i]

		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(d.models[table]).Error
		if err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
