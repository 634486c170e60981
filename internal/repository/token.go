package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TokenRepo interface {
	SaveRefreshToken(ctx context.Context, userID, token string) error
	IsRefreshTokenValid(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
}

type tokenRepo struct{ db *pgxpool.Pool }

func NewTokenRepo(db *pgxpool.Pool) TokenRepo { return &tokenRepo{db: db} }

func (r *tokenRepo) SaveRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO refresh_tokens (user_id, token) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
		userID, token,
	)
	return err
}

func (r *tokenRepo) IsRefreshTokenValid(ctx context.Context, userID, token string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE user_id=$1 AND token=$2)`,
		userID, token,
	).Scan(&ok)
	return ok, err
}

func (r *tokenRepo) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE user_id=$1 AND token=$2`,
		userID, token,
	)
	return err
}
