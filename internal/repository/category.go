package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
)

type CategoryRepo interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

type categoryRepo struct{ db *pgxpool.Pool }

func NewCategoryRepo(db *pgxpool.Pool) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	const q = `
		SELECT id, slug, name, description, icon, gradient, created_at
		FROM categories ORDER BY name
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.Icon, &c.Gradient, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const q = `
		SELECT id, slug, name, description, icon, gradient, created_at
		FROM categories WHERE slug=$1
	`
	var c models.Category
	if err := r.db.QueryRow(ctx, q, slug).Scan(
		&c.ID, &c.Slug, &c.Name, &c.Description, &c.Icon, &c.Gradient, &c.CreatedAt,
	); err != nil {
		return nil, wrapNoRows(err)
	}
	return &c, nil
}
