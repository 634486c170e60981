package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/config"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/middleware"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	svc     *services.PostService
	auth    *services.AuthService
	preview *services.PreviewService
	cfg     *config.Config
}

func NewPostHandler(svc *services.PostService, auth *services.AuthService, preview *services.PreviewService, cfg *config.Config) *PostHandler {
	return &PostHandler{svc: svc, auth: auth, preview: preview, cfg: cfg}
}

// List
// @Summary      Список статей
// @Description  Свежие статьи, обогащённые категорией и автором. Фильтры: category, tag, author, limit, offset.
// @Tags         posts
// @Produce      json
// @Success      200  {array}  models.PostView
// @Router       /api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	f := models.PostListFilter{
		CategorySlug: q.Get("category"),
		Tag:          q.Get("tag"),
		AuthorID:     q.Get("author"),
		Limit:        limit,
		Offset:       offset,
	}

	views, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, views)
}

// GetBySlug
// @Summary      Статья по слагу
// @Description  Категория и автор подтягиваются best-effort; их отсутствие страницу не валит. Обложка отдаётся отдельным полем.
// @Tags         posts
// @Produce      json
// @Param        slug  path  string  true  "Слаг статьи"
// @Success      200   {object}  models.PostView
// @Failure      404   {object}  helpres.Response
// @Router       /api/posts/{slug} [get]
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	viewerID, viewer := h.optionalViewer(r)

	view, err := h.svc.GetBySlug(r.Context(), slug, viewerID, viewer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, view)
}

// Create
// @Summary      Создать статью
// @Description  Слаг генерируется из заголовка; коллизия решается суффиксом. До 3 тегов, каждый должен совпадать с именем категории.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body   models.CreatePostRequest  true  "Данные статьи"
// @Success      201   {object}  models.Post
// @Failure      400   {object}  helpres.Response
// @Security     ApiKeyAuth
// @Router       /api/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		helpres.Error(w, http.StatusUnauthorized, "нет аутентификации")
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Error("ошибка декодирования JSON при создании статьи", zap.Error(err))
		helpres.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	post, err := h.svc.Create(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusCreated, post)
}

// Update
// @Summary      Обновить статью
// @Description  Доступно автору и супер-админу. Замена обложки вычищает прежние маркеры.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path   string                    true  "ID статьи"
// @Param        body  body   models.UpdatePostRequest  true  "Новые данные"
// @Success      200   {object}  models.Post
// @Failure      403   {object}  helpres.Response
// @Security     ApiKeyAuth
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		helpres.Error(w, http.StatusUnauthorized, "нет аутентификации")
		return
	}

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpres.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	viewer, _ := h.auth.GetProfileByID(r.Context(), userID)

	post, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], userID, viewer, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, post)
}

// Delete
// @Summary      Удалить статью
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "ID статьи"
// @Success      200  {object}  helpres.Response
// @Failure      403  {object}  helpres.Response
// @Security     ApiKeyAuth
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		helpres.Error(w, http.StatusUnauthorized, "нет аутентификации")
		return
	}

	viewer, _ := h.auth.GetProfileByID(r.Context(), userID)

	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"], userID, viewer); err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Preview
// @Summary      Предпросмотр статьи
// @Description  Рендерит markdown в очищенный HTML (без сохранения в БД).
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body   map[string]string  true  "Markdown статьи"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  helpres.Response
// @Security     ApiKeyAuth
// @Router       /api/posts/preview [post]
func (h *PostHandler) Preview(w http.ResponseWriter, r *http.Request) {
	type reqT struct {
		Content string `json:"content"`
	}
	var req reqT
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Error("ошибка декодирования JSON при предпросмотре статьи", zap.Error(err))
		helpres.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	html, err := h.preview.Render(r.Context(), req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, map[string]string{"html": html})
}

// optionalViewer — публичные страницы не требуют токена, но если валидный
// Bearer есть, наружу уйдёт честный canEdit.
func (h *PostHandler) optionalViewer(r *http.Request) (string, *models.Profile) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", nil
	}

	userID, _, tokenType, err := utils.ParseToken(h.cfg.JWTSecret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil || tokenType != "access" {
		return "", nil
	}

	viewer, err := h.auth.GetProfileByID(r.Context(), userID)
	if err != nil {
		return userID, nil
	}
	return userID, viewer
}
