package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/content"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxExcerptLen = 200
	maxTags       = 3
	defaultLimit  = 20
	maxLimit      = 100
)

type PostService struct {
	posts      PostStore
	categories CategoryStore
	profiles   ProfileListStore
	enrich     *EnrichService
}

type PostStore interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	List(ctx context.Context, f models.PostListFilter) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

func NewPostService(posts PostStore, categories CategoryStore, profiles ProfileListStore, enrich *EnrichService) *PostService {
	return &PostService{posts: posts, categories: categories, profiles: profiles, enrich: enrich}
}

// List — список статей с обогащением. Падение обогащения не валит список.
func (s *PostService) List(ctx context.Context, f models.PostListFilter) ([]*models.PostView, error) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	list, err := s.posts.List(ctx, f)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}
	return s.enrich.EnrichPosts(ctx, list), nil
}

// GetBySlug — страница статьи. Сама статья — первичная сущность: её
// отсутствие или ошибка фатальны. Категория и автор тянутся параллельно и
// best-effort: их ошибки только логируются, поля остаются пустыми.
func (s *PostService) GetBySlug(ctx context.Context, slug string, viewerID string, viewer *models.Profile) (*models.PostView, error) {
	log := logger.WithCtx(ctx)

	p, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		log.Warn("Статья не найдена (repo)", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	v := &models.PostView{Post: *p}

	var wg sync.WaitGroup
	if p.CategorySlug != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := s.categories.GetBySlug(ctx, *p.CategorySlug)
			if err != nil {
				log.Warn("Категория статьи недоступна", zap.String("category_slug", *p.CategorySlug), zap.Error(err))
				return
			}
			v.Category = c
		}()
	}
	if p.AuthorID != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := s.profiles.GetByID(ctx, *p.AuthorID)
			if err != nil {
				log.Warn("Автор статьи недоступен", zap.String("author_id", *p.AuthorID), zap.Error(err))
				return
			}
			v.Author = a
		}()
	}
	wg.Wait()

	v.CoverImage, v.Content = content.ExtractCover(p.Content)
	v.CanEdit = CanModifyPost(viewer, viewerID, p)
	return v, nil
}

func (s *PostService) Create(ctx context.Context, authorID string, req models.CreatePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи",
		zap.String("author_id", authorID),
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.Int("tags_count", len(req.Tags)),
	)

	title, excerpt, body, tags, err := s.validate(ctx, req.Title, req.Excerpt, req.Content, req.CategorySlug, req.Tags)
	if err != nil {
		log.Warn("Валидация не пройдена", zap.Error(err))
		return nil, err
	}

	if req.CoverImage != "" {
		if !strings.HasPrefix(req.CoverImage, "data:image/") {
			return nil, fmt.Errorf("%w: обложка должна быть data-URI картинки", ErrValidation)
		}
		body = content.EmbedCover(title, req.CoverImage, body)
	}

	slug, err := s.uniqueSlug(ctx, title)
	if err != nil {
		log.Error("Ошибка проверки слага", zap.Error(err))
		return nil, err
	}

	p := &models.Post{
		ID:           uuid.NewString(),
		Title:        title,
		Slug:         slug,
		Excerpt:      excerpt,
		Content:      body,
		CategorySlug: &req.CategorySlug,
		AuthorID:     &authorID,
		Tags:         tags,
	}

	created, err := s.posts.Create(ctx, p)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана", zap.String("id", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id, actorID string, actor *models.Profile, req models.UpdatePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи", zap.String("id", id), zap.String("actor_id", actorID))

	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья для обновления не найдена (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// Авторизация — до любых изменений; при отказе до репозитория не доходим.
	if !CanModifyPost(actor, actorID, p) {
		log.Warn("Отказ в правке статьи", zap.String("id", id), zap.String("actor_id", actorID))
		return nil, ErrForbidden
	}

	title, excerpt, body, tags, err := s.validate(ctx, req.Title, req.Excerpt, req.Content, req.CategorySlug, req.Tags)
	if err != nil {
		log.Warn("Валидация не пройдена", zap.Error(err))
		return nil, err
	}

	prevCover, _ := content.ExtractCover(p.Content)

	// Обложка: новая — вычищаем старые маркеры и клеим новую; удаление —
	// только вычищаем; иначе — переносим прежнюю на новый текст.
	switch {
	case req.CoverImage != "":
		if !strings.HasPrefix(req.CoverImage, "data:image/") {
			return nil, fmt.Errorf("%w: обложка должна быть data-URI картинки", ErrValidation)
		}
		body = content.EmbedCover(title, req.CoverImage, content.StripCoverLines(body))
	case req.RemoveCover:
		body = content.StripCoverLines(body)
	case prevCover != "":
		body = content.EmbedCover(title, prevCover, content.StripCoverLines(body))
	}

	// Смена заголовка — новый слаг по тому же правилу коллизий.
	if title != p.Title {
		slug := content.Slugify(title)
		if slug != p.Slug {
			exists, err := s.posts.SlugExists(ctx, slug)
			if err != nil {
				return nil, err
			}
			if exists {
				slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
			}
			p.Slug = slug
		}
	}

	p.Title = title
	p.Excerpt = excerpt
	p.Content = body
	p.CategorySlug = &req.CategorySlug
	p.Tags = tags

	if err := s.posts.Update(ctx, p); err != nil {
		log.Error("Ошибка обновления статьи (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Статья обновлена", zap.String("id", id), zap.String("slug", p.Slug))
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id, actorID string, actor *models.Profile) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.String("id", id), zap.String("actor_id", actorID))

	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья для удаления не найдена (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	if !CanModifyPost(actor, actorID, p) {
		log.Warn("Отказ в удалении статьи", zap.String("id", id), zap.String("actor_id", actorID))
		return ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Статья удалена", zap.String("id", id))
	return nil
}

// Dashboard — статьи пользователя (супер-админ видит все) с флагом canEdit.
func (s *PostService) Dashboard(ctx context.Context, userID string, viewer *models.Profile) ([]*models.PostView, error) {
	f := models.PostListFilter{Limit: maxLimit}
	if viewer == nil || !viewer.IsSuperAdmin {
		f.AuthorID = userID
	}

	list, err := s.posts.List(ctx, f)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения статей дашборда (repo)", zap.Error(err))
		return nil, err
	}

	views := s.enrich.EnrichPosts(ctx, list)
	for i := range views {
		views[i].CanEdit = CanModifyPost(viewer, userID, list[i])
	}
	return views, nil
}

// validate — общая проверка формы создания/правки. До репозитория ошибки
// валидации не доходят.
func (s *PostService) validate(ctx context.Context, rawTitle, rawExcerpt, rawContent, categorySlug string, rawTags []string) (title, excerpt, body string, tags []string, err error) {
	title = strings.TrimSpace(rawTitle)
	excerpt = strings.TrimSpace(rawExcerpt)
	body = strings.TrimSpace(rawContent)

	if title == "" {
		return "", "", "", nil, fmt.Errorf("%w: заголовок обязателен", ErrValidation)
	}
	if excerpt == "" {
		return "", "", "", nil, fmt.Errorf("%w: аннотация обязательна", ErrValidation)
	}
	if utf8.RuneCountInString(excerpt) > maxExcerptLen {
		return "", "", "", nil, fmt.Errorf("%w: аннотация не должна превышать %d символов", ErrValidation, maxExcerptLen)
	}
	if categorySlug == "" {
		return "", "", "", nil, fmt.Errorf("%w: категория обязательна", ErrValidation)
	}
	if body == "" {
		return "", "", "", nil, fmt.Errorf("%w: контент обязателен", ErrValidation)
	}

	if _, err := s.categories.GetBySlug(ctx, categorySlug); err != nil {
		if err == repository.ErrNotFound {
			return "", "", "", nil, fmt.Errorf("%w: неизвестная категория %q", ErrValidation, categorySlug)
		}
		return "", "", "", nil, err
	}

	tags = content.NormalizeTags(rawTags)
	if len(tags) > maxTags {
		return "", "", "", nil, fmt.Errorf("%w: максимум %d тега", ErrValidation, maxTags)
	}
	if len(tags) > 0 {
		cats, err := s.categories.List(ctx)
		if err != nil {
			return "", "", "", nil, err
		}
		names := make(map[string]struct{}, len(cats))
		for _, c := range cats {
			names[strings.ToLower(c.Name)] = struct{}{}
		}
		for _, t := range tags {
			if _, ok := names[strings.ToLower(t)]; !ok {
				return "", "", "", nil, fmt.Errorf("%w: тег %q не соответствует ни одной категории", ErrValidation, t)
			}
		}
	}

	return title, excerpt, body, tags, nil
}

// uniqueSlug — слаг из заголовка; коллизия решается на записи суффиксом из
// текущего времени (сам генератор про коллизии не знает).
func (s *PostService) uniqueSlug(ctx context.Context, title string) (string, error) {
	slug := content.Slugify(title)
	if slug == "" {
		slug = fmt.Sprintf("post-%d", time.Now().UnixMilli())
		return slug, nil
	}
	exists, err := s.posts.SlugExists(ctx, slug)
	if err != nil {
		return "", err
	}
	if exists {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}
	return slug, nil
}
