package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
)

type ImageRepo interface {
	Save(ctx context.Context, img *models.Image) error
	GetByPath(ctx context.Context, path string) (*models.Image, error)
}

type imageRepo struct{ db *pgxpool.Pool }

func NewImageRepo(db *pgxpool.Pool) ImageRepo { return &imageRepo{db: db} }

func (r *imageRepo) Save(ctx context.Context, img *models.Image) error {
	const q = `
		INSERT INTO images (path, mime, data) VALUES ($1,$2,$3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, q, img.Path, img.Mime, img.Data).Scan(&img.ID, &img.CreatedAt)
}

func (r *imageRepo) GetByPath(ctx context.Context, path string) (*models.Image, error) {
	const q = `SELECT id, path, mime, data, created_at FROM images WHERE path=$1`
	var img models.Image
	if err := r.db.QueryRow(ctx, q, path).Scan(&img.ID, &img.Path, &img.Mime, &img.Data, &img.CreatedAt); err != nil {
		return nil, wrapNoRows(err)
	}
	return &img, nil
}
