package handlers

import (
	"net/http"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/repository"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils/helpres"

	"github.com/gorilla/mux"
)

type AuthorHandler struct {
	profiles repository.ProfileRepo
	posts    *services.PostService
}

func NewAuthorHandler(profiles repository.ProfileRepo, posts *services.PostService) *AuthorHandler {
	return &AuthorHandler{profiles: profiles, posts: posts}
}

// GetBySlug
// @Summary      Публичная страница автора
// @Description  Профиль по author_slug и его статьи.
// @Tags         authors
// @Produce      json
// @Param        authorSlug  path  string  true  "Слаг автора"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  helpres.Response
// @Router       /api/authors/{authorSlug} [get]
func (h *AuthorHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["authorSlug"]

	author, err := h.profiles.GetByAuthorSlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	posts, err := h.posts.List(r.Context(), models.PostListFilter{AuthorID: author.ID})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, map[string]interface{}{
		"author": author,
		"posts":  posts,
	})
}
