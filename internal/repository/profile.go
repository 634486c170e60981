package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
)

type ProfileRepo interface {
	Create(ctx context.Context, p *models.Profile) error
	List(ctx context.Context) ([]*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetByAuthorSlug(ctx context.Context, slug string) (*models.Profile, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	AuthorSlugExists(ctx context.Context, slug string) (bool, error)
	SetSuperAdmin(ctx context.Context, id string, flag bool) error
}

type profileRepo struct{ db *pgxpool.Pool }

func NewProfileRepo(db *pgxpool.Pool) ProfileRepo { return &profileRepo{db: db} }

const profileColumns = `id, user_name, author_slug, email, password_hash, is_super_admin, created_at`

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	const q = `
		INSERT INTO profiles (id, user_name, author_slug, email, password_hash, is_super_admin)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	_, err := r.db.Exec(ctx, q, p.ID, p.UserName, p.AuthorSlug, p.Email, p.PasswordHash, p.IsSuperAdmin)
	return err
}

func (r *profileRepo) List(ctx context.Context) ([]*models.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.UserName, &p.AuthorSlug, &p.Email, &p.PasswordHash, &p.IsSuperAdmin, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id=$1`, id)
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE LOWER(email)=LOWER($1)`, email)
}

func (r *profileRepo) GetByAuthorSlug(ctx context.Context, slug string) (*models.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE author_slug=$1`, slug)
}

func (r *profileRepo) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE LOWER(email)=LOWER($1))`, email).Scan(&ok)
	return ok, err
}

func (r *profileRepo) AuthorSlugExists(ctx context.Context, slug string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE author_slug=$1)`, slug).Scan(&ok)
	return ok, err
}

func (r *profileRepo) SetSuperAdmin(ctx context.Context, id string, flag bool) error {
	_, err := r.db.Exec(ctx, `UPDATE profiles SET is_super_admin=$2 WHERE id=$1`, id, flag)
	return err
}

func (r *profileRepo) getOne(ctx context.Context, q string, arg any) (*models.Profile, error) {
	var p models.Profile
	if err := r.db.QueryRow(ctx, q, arg).Scan(
		&p.ID, &p.UserName, &p.AuthorSlug, &p.Email, &p.PasswordHash, &p.IsSuperAdmin, &p.CreatedAt,
	); err != nil {
		return nil, wrapNoRows(err)
	}
	return &p, nil
}
