package services

import (
	"context"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/content"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EnrichService прикрепляет к сырым статьям категорию и автора — клиентский
// аналог join'а. Вместо линейного перебора на каждую статью индексы строятся
// один раз: map по slug категории и map по id профиля.
type EnrichService struct {
	categories CategoryStore
	profiles   ProfileListStore
}

type CategoryStore interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

type ProfileListStore interface {
	List(ctx context.Context) ([]*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
}

func NewEnrichService(categories CategoryStore, profiles ProfileListStore) *EnrichService {
	return &EnrichService{categories: categories, profiles: profiles}
}

// EnrichPosts строит представления статей с категорией, автором и обложкой.
// Оба индекса тянутся параллельно; падение любого из них — не фатально,
// соответствующие поля просто остаются пустыми.
func (s *EnrichService) EnrichPosts(ctx context.Context, posts []*models.Post) []*models.PostView {
	log := logger.WithCtx(ctx)

	var (
		catIndex  map[string]*models.Category
		profIndex map[string]*models.Profile
		catErr    error
		profErr   error
	)

	var g errgroup.Group
	g.Go(func() error {
		cats, err := s.categories.List(ctx)
		if err != nil {
			catErr = err
			return nil // изоляция: сосед по группе не должен пострадать
		}
		catIndex = make(map[string]*models.Category, len(cats))
		for _, c := range cats {
			catIndex[c.Slug] = c
		}
		return nil
	})
	g.Go(func() error {
		profs, err := s.profiles.List(ctx)
		if err != nil {
			profErr = err
			return nil
		}
		profIndex = make(map[string]*models.Profile, len(profs))
		for _, p := range profs {
			profIndex[p.ID] = p
		}
		return nil
	})
	_ = g.Wait()

	if catErr != nil {
		log.Warn("Обогащение: категории недоступны", zap.Error(catErr))
	}
	if profErr != nil {
		log.Warn("Обогащение: профили недоступны", zap.Error(profErr))
	}

	views := make([]*models.PostView, 0, len(posts))
	for _, p := range posts {
		v := &models.PostView{Post: *p}
		if p.CategorySlug != nil {
			v.Category = catIndex[*p.CategorySlug] // nil при отсутствии — не ошибка
		}
		if p.AuthorID != nil {
			v.Author = profIndex[*p.AuthorID]
		}
		v.CoverImage, v.Content = content.ExtractCover(p.Content)
		views = append(views, v)
	}
	return views
}
