// Package seed carries the built-in coffee menu and inserts it into an
// empty catalog.
package seed

import (
	"context"
	"fmt"

	"coffeesaf/internal/domain"
)

type inserter interface {
	InsertAll(ctx context.Context, items []domain.CoffeeItem) error
}

// Apply upserts the built-in menu. The repository upsert keys on
// (name, type), so re-running the seed is safe.
func Apply(ctx context.Context, repo inserter) error {
	if err := repo.InsertAll(ctx, Menu()); err != nil {
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}
