package services

import (
	"context"
	"strings"
	"testing"
)

func TestPreviewRender(t *testing.T) {
	service := NewPreviewService()

	html, err := service.Render(context.Background(), "# Заголовок\n\nАбзац **жирный**")
	if err != nil {
		t.Fatalf("ошибка рендера: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>") {
		t.Fatalf("markdown не отрендерен: %q", html)
	}
}

func TestPreviewRender_SanitizesScript(t *testing.T) {
	service := NewPreviewService()

	html, err := service.Render(context.Background(), "текст <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("ошибка рендера: %v", err)
	}
	if strings.Contains(html, "<script") {
		t.Fatalf("script пережил санитайзер: %q", html)
	}
}

func TestPreviewRender_KeepsDataURIImage(t *testing.T) {
	service := NewPreviewService()

	html, err := service.Render(context.Background(), "![обложка](data:image/png;base64,aGVsbG8=)")
	if err != nil {
		t.Fatalf("ошибка рендера: %v", err)
	}
	if !strings.Contains(html, "data:image/png;base64,aGVsbG8=") {
		t.Fatalf("data-URI картинка вырезана: %q", html)
	}
}
