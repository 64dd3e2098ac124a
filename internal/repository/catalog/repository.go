package catalog

import (
	"context"

	"coffeesaf/internal/domain"
)

// Repository is the read-mostly coffee menu store. InsertAll exists for
// first-run seeding and menu imports only.
type Repository interface {
	ListAll(ctx context.Context) ([]domain.CoffeeItem, error)
	ListByCategory(ctx context.Context, category string) ([]domain.CoffeeItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*domain.CoffeeItem, error)
	InsertAll(ctx context.Context, items []domain.CoffeeItem) error
}
