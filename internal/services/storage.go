package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxImageSize = 5 << 20 // 5 МБ

// StorageService — блоб-хранилище картинок под путём. Активный сценарий
// публикации обложек — inline base64 в тексте статьи; загрузка по пути
// оставлена для внешних ссылок.
type StorageService struct {
	images ImageStore
}

type ImageStore interface {
	Save(ctx context.Context, img *models.Image) error
	GetByPath(ctx context.Context, path string) (*models.Image, error)
}

func NewStorageService(images ImageStore) *StorageService {
	return &StorageService{images: images}
}

func (s *StorageService) Upload(ctx context.Context, filename, mime string, data []byte) (*models.Image, error) {
	log := logger.WithCtx(ctx)

	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: допускаются только картинки", ErrValidation)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: пустой файл", ErrValidation)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("%w: файл больше 5 МБ", ErrValidation)
	}

	img := &models.Image{
		Path: uuid.NewString() + strings.ToLower(filepath.Ext(filename)),
		Mime: mime,
		Data: data,
	}
	if err := s.images.Save(ctx, img); err != nil {
		log.Error("Ошибка сохранения картинки (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Картинка загружена", zap.String("path", img.Path), zap.Int("size", len(data)))
	return img, nil
}

func (s *StorageService) Get(ctx context.Context, path string) (*models.Image, error) {
	img, err := s.images.GetByPath(ctx, path)
	if err != nil {
		logger.WithCtx(ctx).Warn("Картинка не найдена (repo)", zap.String("path", path), zap.Error(err))
	}
	return img, err
}
