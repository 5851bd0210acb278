package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"gorm.io/gorm"
)

type contextKey string

const txKey contextKey = "tx_db"

// UnitOfWorkImpl runs a function inside a database transaction. The
// transaction handle travels in the context; repositories pick it up through
// GetDB so the same repository instances work inside and outside a unit of
// work.
type UnitOfWorkImpl struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(db *gorm.DB) repositories.UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

// Do executes fn within a transaction. Any error (or panic) rolls back every
// write made through the context-carried handle.
func (u *UnitOfWorkImpl) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	txCtx := context.WithValue(ctx, txKey, tx)
	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetDB returns the transaction handle carried by ctx, or the fallback
// connection when no unit of work is active.
func GetDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback
}
