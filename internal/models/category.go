package models

import "time"

// Category — справочные данные, заводятся миграцией и в рантайме не меняются.
type Category struct {
	ID          int       `db:"id"          json:"id"`
	Slug        string    `db:"slug"        json:"slug"`
	Name        string    `db:"name"        json:"name"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon"        json:"icon"`
	Gradient    string    `db:"gradient"    json:"gradient"`
	CreatedAt   time.Time `db:"created_at"  json:"createdAt"`
}
