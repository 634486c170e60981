package services

import (
	"bytes"
	"context"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
)

// PreviewService рендерит markdown статьи в HTML для предпросмотра
// (без сохранения в БД) и прогоняет результат через санитайзер.
type PreviewService struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewPreviewService() *PreviewService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	// обложки встраиваются как data-URI — разрешаем их явно
	p.AllowDataURIImages()

	return &PreviewService{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: p,
	}
}

func (s *PreviewService) Render(ctx context.Context, markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		logger.WithCtx(ctx).Error("Ошибка рендера markdown", zap.Error(err))
		return "", err
	}

	clean := s.policy.Sanitize(buf.String())
	// безопасно логируем только длины
	logger.WithCtx(ctx).Debug("Предпросмотр статьи (render+sanitize)",
		zap.Int("raw_len", len(markdown)),
		zap.Int("clean_len", len(clean)),
	)
	return clean, nil
}
