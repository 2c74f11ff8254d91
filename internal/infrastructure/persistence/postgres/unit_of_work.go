package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cynric/familymanagement-backend/internal/domain/ports"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

var errNoTransaction = errors.New("no transaction in context")

// UnitOfWork implementa ports.UnitOfWork
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

func (uow *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, tx.Error
	}
	return context.WithValue(ctx, txKey, tx), nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return errNoTransaction
	}
	return tx.Commit().Error
}

func (uow *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return errNoTransaction
	}
	return tx.Rollback().Error
}

// WithTransaction executa fn numa transação; erro ou panic em fn faz rollback.
// Chamadas aninhadas reutilizam a transação já presente no contexto.
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}

	return uow.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	})
}
