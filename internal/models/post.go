package models

import "time"

type Post struct {
	ID           string    `db:"id"            json:"id"`
	Title        string    `db:"title"         json:"title"`
	Slug         string    `db:"slug"          json:"slug"`
	Excerpt      string    `db:"excerpt"       json:"excerpt"`
	Content      string    `db:"content"       json:"content"`
	CategorySlug *string   `db:"category_slug" json:"categorySlug,omitempty"`
	AuthorID     *string   `db:"author_id"     json:"authorId,omitempty"`
	Tags         []string  `db:"-"             json:"tags"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

// PostView — статья, обогащённая категорией и автором (клиентский join),
// с обложкой, вынесенной из текста.
type PostView struct {
	Post
	Category   *Category `json:"category,omitempty"`
	Author     *Profile  `json:"author,omitempty"`
	CoverImage string    `json:"coverImage,omitempty"`
	CanEdit    bool      `json:"canEdit,omitempty"`
}

// swagger:model CreatePostRequest
type CreatePostRequest struct {
	Title        string   `json:"title"        example:"Introduction à Next.js"`
	Excerpt      string   `json:"excerpt"      example:"Короткое описание для превью"`
	Content      string   `json:"content"      example:"Текст статьи в markdown"`
	CategorySlug string   `json:"categorySlug" example:"developpement"`
	Tags         []string `json:"tags"         example:"Développement,Web"`
	// CoverImage — data-URI картинки; встраивается первой строкой контента.
	CoverImage string `json:"coverImage,omitempty"`
}

// swagger:model UpdatePostRequest
type UpdatePostRequest struct {
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	CategorySlug string   `json:"categorySlug"`
	Tags         []string `json:"tags"`
	CoverImage   string   `json:"coverImage,omitempty"`
	// RemoveCover — убрать обложку без замены.
	RemoveCover bool `json:"removeCover,omitempty"`
}

type PostListFilter struct {
	CategorySlug string
	Tag          string
	AuthorID     string
	Limit        int
	Offset       int
}
