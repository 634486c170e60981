package handlers

import (
	"net/http"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/middleware"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils/helpres"
)

type DashboardHandler struct {
	posts *services.PostService
	auth  *services.AuthService
}

func NewDashboardHandler(posts *services.PostService, auth *services.AuthService) *DashboardHandler {
	return &DashboardHandler{posts: posts, auth: auth}
}

// Dashboard
// @Summary      Личный кабинет
// @Description  Статьи пользователя (супер-админ видит все) с флагом canEdit.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  helpres.Response
// @Security     ApiKeyAuth
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		helpres.Error(w, http.StatusUnauthorized, "нет аутентификации")
		return
	}

	viewer, err := h.auth.GetProfileByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	posts, err := h.posts.Dashboard(r.Context(), userID, viewer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, map[string]interface{}{
		"profile": viewer,
		"posts":   posts,
	})
}
