package catalog

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"coffeesaf/internal/domain"
	"coffeesaf/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTable(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE coffee_items RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate coffee_items: %v", err)
	}
}

func sampleItems() []domain.CoffeeItem {
	return []domain.CoffeeItem{
		{Name: "Эспрессо", Type: "Классический", PriceS: "90 ₽", PriceM: "120 ₽", PriceL: "150 ₽", Rating: 4.2, Category: "Эспрессо"},
		{Name: "Капучино", Type: "Стандарт", PriceS: "180 ₽", PriceM: "210 ₽", PriceL: "240 ₽", Rating: 4.5, Category: "Капучино"},
	}
}

func TestPostgres_InsertAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTable(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	if err := repo.InsertAll(ctx, sampleItems()); err != nil {
		t.Fatalf("insert: %v", err)
	}

	items, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	byCategory, err := repo.ListByCategory(ctx, "Капучино")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Name != "Капучино" {
		t.Fatalf("unexpected category listing: %+v", byCategory)
	}

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", categories)
	}
}

func TestPostgres_GetByID(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTable(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	if err := repo.InsertAll(ctx, sampleItems()); err != nil {
		t.Fatalf("insert: %v", err)
	}

	items, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	got, err := repo.GetByID(ctx, items[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != items[0].Name || got.PriceM != items[0].PriceM {
		t.Fatalf("unexpected item: %+v", got)
	}

	if _, err := repo.GetByID(ctx, 99999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_InsertAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTable(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	if err := repo.InsertAll(ctx, sampleItems()); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := repo.InsertAll(ctx, sampleItems()); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	items, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("re-seeding duplicated rows: %d", len(items))
	}
}
