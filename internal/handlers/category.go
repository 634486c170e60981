package handlers

import (
	"net/http"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils/helpres"

	"github.com/gorilla/mux"
)

type CategoryHandler struct {
	categories services.CategoryStore
	posts      *services.PostService
}

func NewCategoryHandler(categories services.CategoryStore, posts *services.PostService) *CategoryHandler {
	return &CategoryHandler{categories: categories, posts: posts}
}

// List
// @Summary      Список категорий
// @Tags         categories
// @Produce      json
// @Success      200  {array}  models.Category
// @Router       /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.categories.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpres.JSON(w, http.StatusOK, list)
}

// GetBySlug
// @Summary      Категория и её статьи
// @Description  Категория — первичная сущность страницы: её отсутствие — 404. Статьи — вторичные.
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "Слаг категории"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  helpres.Response
// @Router       /api/categories/{slug} [get]
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.categories.GetBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	posts, err := h.posts.List(r.Context(), models.PostListFilter{CategorySlug: slug})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"posts":    posts,
	})
}
