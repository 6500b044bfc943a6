package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/friendsofmine/backend/internal/application/adapter"
)

// txKey is the context key under which the active transaction is stored.
type txKey struct{}

// ContextWithTx returns a copy of ctx carrying tx. Repositories called with the
// returned context run their statements on tx.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFromContext returns the transaction carried by ctx, or db when there is none.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// gormTransactor implements the adapter.Transactor interface.
type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor instance.
func NewTransactor(db *gorm.DB) adapter.Transactor {
	return &gormTransactor{
		db: db,
	}
}

// WithinTransaction runs fn inside a transaction. When ctx already carries a
// transaction, fn joins it instead of opening a new one.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTx(ctx, tx))
	})
}
