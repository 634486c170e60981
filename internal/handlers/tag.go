package handlers

import (
	"net/http"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils/helpres"

	"github.com/gorilla/mux"
)

// TagHandler — тег не хранимая сущность: страница тега — это фильтр по
// массиву tags всех статей (членство с учётом регистра, как хранится).
type TagHandler struct {
	posts *services.PostService
}

func NewTagHandler(posts *services.PostService) *TagHandler {
	return &TagHandler{posts: posts}
}

// GetByTag
// @Summary      Статьи по тегу
// @Tags         tags
// @Produce      json
// @Param        tag  path  string  true  "Тег"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/tags/{tag} [get]
func (h *TagHandler) GetByTag(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]

	posts, err := h.posts.List(r.Context(), models.PostListFilter{Tag: tag})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, map[string]interface{}{
		"tag":   tag,
		"posts": posts,
	})
}
