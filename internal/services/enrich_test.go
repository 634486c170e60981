package services

import (
	"context"
	"errors"
	"testing"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/content"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
)

func TestEnrichPosts(t *testing.T) {
	cats := &mockCategoryStore{cats: []*models.Category{
		{Slug: "developpement", Name: "Développement"},
	}}
	profs := &mockProfileListStore{profs: []*models.Profile{
		{ID: "u1", UserName: "corinne", AuthorSlug: "corinne"},
	}}
	service := NewEnrichService(cats, profs)

	catSlug, author := "developpement", "u1"
	absentCat, absentAuthor := "inconnu", "ghost"
	posts := []*models.Post{
		{ID: "p1", CategorySlug: &catSlug, AuthorID: &author},
		{ID: "p2", CategorySlug: &absentCat, AuthorID: &absentAuthor},
		{ID: "p3"},
	}

	views := service.EnrichPosts(context.Background(), posts)
	if len(views) != 3 {
		t.Fatalf("ожидалось 3 представления, получено %d", len(views))
	}

	if views[0].Category == nil || views[0].Category.Slug != "developpement" {
		t.Fatal("категория не прикреплена")
	}
	if views[0].Author == nil || views[0].Author.ID != "u1" {
		t.Fatal("автор не прикреплён")
	}

	// отсутствующая категория/автор — не ошибка, поля пустые
	if views[1].Category != nil || views[1].Author != nil {
		t.Fatal("отсутствующие сущности должны давать nil-поля")
	}
	if views[2].Category != nil || views[2].Author != nil {
		t.Fatal("статья без ссылок должна остаться без обогащения")
	}
}

func TestEnrichPosts_SourceFailureIsSoft(t *testing.T) {
	cats := &mockCategoryStore{err: errors.New("база недоступна")}
	profs := &mockProfileListStore{profs: []*models.Profile{{ID: "u1"}}}
	service := NewEnrichService(cats, profs)

	catSlug, author := "developpement", "u1"
	views := service.EnrichPosts(context.Background(), []*models.Post{
		{ID: "p1", CategorySlug: &catSlug, AuthorID: &author},
	})

	if len(views) != 1 {
		t.Fatalf("ожидалось 1 представление, получено %d", len(views))
	}
	if views[0].Category != nil {
		t.Fatal("категория должна быть пустой при недоступном источнике")
	}
	// падение категорий не должно валить профили
	if views[0].Author == nil {
		t.Fatal("автор должен прикрепиться несмотря на падение категорий")
	}
}

func TestEnrichPosts_Cover(t *testing.T) {
	service := NewEnrichService(&mockCategoryStore{}, &mockProfileListStore{})

	cover := "data:image/png;base64,aGVsbG8="
	views := service.EnrichPosts(context.Background(), []*models.Post{
		{ID: "p1", Content: content.EmbedCover("Статья", cover, "Текст")},
	})

	if views[0].CoverImage != cover {
		t.Fatalf("обложка не извлечена: %q", views[0].CoverImage)
	}
	if views[0].Content != "Текст" {
		t.Fatalf("контент должен быть без маркера: %q", views[0].Content)
	}
}
