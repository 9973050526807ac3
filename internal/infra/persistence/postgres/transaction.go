// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"ecocart/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or panic.
// fn's error is returned as is so callers can still match domain errors.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return errors.WithStack(m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos{tx})
	}))
}

// txRepos hands out repositories bound to one transaction.
type txRepos struct{ tx *gorm.DB }

func (r txRepos) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepos) NewListingRepository() repository.ListingRepository {
	return NewListingRepository(r.tx)
}

func (r txRepos) NewDiscountRepository() repository.DiscountRepository {
	return NewDiscountRepository(r.tx)
}

func (r txRepos) NewShoppingItemRepository() repository.ShoppingItemRepository {
	return NewShoppingItemRepository(r.tx)
}
