package models

import "time"

// Profile — прикладная учётка, 1:1 с аутентификационной identity (общий id).
type Profile struct {
	ID           string    `db:"id"             json:"id"`
	UserName     string    `db:"user_name"      json:"userName"`
	AuthorSlug   string    `db:"author_slug"    json:"authorSlug"`
	Email        string    `db:"email"          json:"-"`
	PasswordHash string    `db:"password_hash"  json:"-"`
	IsSuperAdmin bool      `db:"is_super_admin" json:"isSuperAdmin"`
	CreatedAt    time.Time `db:"created_at"     json:"createdAt"`
}
