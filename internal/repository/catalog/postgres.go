package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeesaf/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const selectColumns = `id, name, type, COALESCE(description, ''), COALESCE(ingredients, ''), COALESCE(image_uri, ''), price_s, price_m, price_l, rating, category`

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.CoffeeItem, error) {
	q := `SELECT ` + selectColumns + ` FROM coffee_items ORDER BY id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()
	items, err := scanItems(rows)
	if err != nil {
		r.logger.Printf("catalog repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("catalog repo: list count=%d", len(items))
	return items, nil
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.CoffeeItem, error) {
	q := `SELECT ` + selectColumns + ` FROM coffee_items WHERE category = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, q, category)
	if err != nil {
		r.logger.Printf("catalog repo: list category=%s error=%v", category, err)
		return nil, err
	}
	defer rows.Close()
	items, err := scanItems(rows)
	if err != nil {
		r.logger.Printf("catalog repo: list rows category=%s error=%v", category, err)
		return nil, err
	}
	r.logger.Printf("catalog repo: list category=%s count=%d", category, len(items))
	return items, nil
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT category FROM coffee_items ORDER BY category`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: categories error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("catalog repo: categories rows error=%v", err)
		return nil, err
	}
	return categories, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.CoffeeItem, error) {
	q := `SELECT ` + selectColumns + ` FROM coffee_items WHERE id = $1`
	var item domain.CoffeeItem
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&item.ID, &item.Name, &item.Type, &item.Description, &item.Ingredients,
		&item.ImageURI, &item.PriceS, &item.PriceM, &item.PriceL, &item.Rating, &item.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("catalog repo: get id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("catalog repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) InsertAll(ctx context.Context, items []domain.CoffeeItem) error {
	const q = `
INSERT INTO coffee_items (name, type, description, ingredients, image_uri, price_s, price_m, price_l, rating, category)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10)
ON CONFLICT (name, type) DO UPDATE SET
    description = EXCLUDED.description,
    ingredients = EXCLUDED.ingredients,
    image_uri = EXCLUDED.image_uri,
    price_s = EXCLUDED.price_s,
    price_m = EXCLUDED.price_m,
    price_l = EXCLUDED.price_l,
    rating = EXCLUDED.rating,
    category = EXCLUDED.category
`
	for _, item := range items {
		_, err := r.pool.Exec(ctx, q,
			item.Name, item.Type, item.Description, item.Ingredients, item.ImageURI,
			item.PriceS, item.PriceM, item.PriceL, item.Rating, item.Category,
		)
		if err != nil {
			r.logger.Printf("catalog repo: insert name=%s type=%s error=%v", item.Name, item.Type, err)
			return err
		}
	}
	r.logger.Printf("catalog repo: inserted count=%d", len(items))
	return nil
}

func scanItems(rows pgx.Rows) ([]domain.CoffeeItem, error) {
	var items []domain.CoffeeItem
	for rows.Next() {
		var item domain.CoffeeItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Type, &item.Description, &item.Ingredients,
			&item.ImageURI, &item.PriceS, &item.PriceM, &item.PriceL, &item.Rating, &item.Category,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
