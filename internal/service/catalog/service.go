// Package catalog exposes the coffee menu to the API and seeds it on first
// run.
package catalog

import (
	"context"
	"io"
	"log"

	"coffeesaf/internal/domain"
)

type repository interface {
	ListAll(ctx context.Context) ([]domain.CoffeeItem, error)
	ListByCategory(ctx context.Context, category string) ([]domain.CoffeeItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*domain.CoffeeItem, error)
	InsertAll(ctx context.Context, items []domain.CoffeeItem) error
}

type Service struct {
	repo   repository
	logger *log.Logger
}

func New(repo repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// EnsureSeeded inserts the built-in menu when the catalog is empty, so a
// fresh database serves drinks on first start.
func (s *Service) EnsureSeeded(ctx context.Context, menu []domain.CoffeeItem) error {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(categories) > 0 {
		return nil
	}
	s.logger.Printf("catalog service: empty catalog, seeding %d items", len(menu))
	return s.repo.InsertAll(ctx, menu)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.CoffeeItem, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.CoffeeItem, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.CoffeeItem, error) {
	return s.repo.GetByID(ctx, id)
}
