package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
)

type PostRepo interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	List(ctx context.Context, f models.PostListFilter) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type postRepo struct{ db *pgxpool.Pool }

func NewPostRepo(db *pgxpool.Pool) PostRepo { return &postRepo{db: db} }

const postColumns = `id, title, slug, excerpt, content, category_slug, author_id, tags, created_at, updated_at`

func (r *postRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	tagsJSON, _ := json.Marshal(p.Tags)

	const q = `
		INSERT INTO posts (id, title, slug, excerpt, content, category_slug, author_id, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8::jsonb)
		RETURNING ` + postColumns

	return r.scanOne(r.db.QueryRow(ctx, q,
		p.ID,
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.CategorySlug, // *string (nullable)
		p.AuthorID,     // *string (nullable)
		tagsJSON,
	))
}

func (r *postRepo) List(ctx context.Context, f models.PostListFilter) ([]*models.Post, error) {
	sql := `SELECT ` + postColumns + ` FROM posts`
	where := []string{}
	args := []interface{}{}
	i := 1

	if f.CategorySlug != "" {
		where = append(where, fmt.Sprintf("category_slug = $%d", i))
		args = append(args, f.CategorySlug)
		i++
	}
	if f.AuthorID != "" {
		where = append(where, fmt.Sprintf("author_id = $%d", i))
		args = append(args, f.AuthorID)
		i++
	}
	if f.Tag != "" {
		// tags — jsonb-массив строк: ["a","b"]; членство с учётом регистра,
		// как хранится (дедупликация без регистра — забота отображения)
		where = append(where, fmt.Sprintf(`
			EXISTS (
				SELECT 1
				FROM jsonb_array_elements_text(tags) AS t(val)
				WHERE t.val = $%d
			)
		`, i))
		args = append(args, f.Tag)
		i++
	}

	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Post
	for rows.Next() {
		var p models.Post
		var tagsRaw []byte
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
			&p.CategorySlug, &p.AuthorID, &tagsRaw, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(tagsRaw, &p.Tags)
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE id=$1`
	return r.scanOne(r.db.QueryRow(ctx, q, id))
}

func (r *postRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE slug=$1`
	return r.scanOne(r.db.QueryRow(ctx, q, slug))
}

func (r *postRepo) Update(ctx context.Context, p *models.Post) error {
	tagsJSON, _ := json.Marshal(p.Tags)
	const q = `
		UPDATE posts
		SET title=$1,
		    slug=$2,
		    excerpt=$3,
		    content=$4,
		    category_slug=$5,
		    tags=$6::jsonb,
		    updated_at=NOW()
		WHERE id=$7
	`
	_, err := r.db.Exec(ctx, q, p.Title, p.Slug, p.Excerpt, p.Content, p.CategorySlug, tagsJSON, p.ID)
	return err
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id=$1", id)
	return err
}

func (r *postRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, slug).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func (r *postRepo) scanOne(row rowScanner) (*models.Post, error) {
	var p models.Post
	var tagsRaw []byte
	if err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
		&p.CategorySlug, &p.AuthorID, &tagsRaw, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, wrapNoRows(err)
	}
	_ = json.Unmarshal(tagsRaw, &p.Tags)
	return &p, nil
}
