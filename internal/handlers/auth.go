package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/config"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/middleware"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils/helpres"

	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *services.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// Register
// @Summary      Регистрация
// @Description  Создаёт identity и парный профиль автора (общий id).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   models.RegisterRequest  true  "Данные регистрации"
// @Success      201   {object}  models.Profile
// @Failure      400   {object}  helpres.Response
// @Router       /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Error("ошибка декодирования JSON при регистрации", zap.Error(err))
		helpres.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.svc.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusCreated, p)
}

// Login
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   models.LoginRequest  true  "Почта и пароль"
// @Success      200   {object}  models.TokenPair
// @Failure      401   {object}  helpres.Response
// @Router       /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Error("ошибка декодирования JSON при входе", zap.Error(err))
		helpres.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	access, refresh, _, err := h.svc.Login(
		r.Context(),
		req.Email, req.Password,
		h.cfg.JWTSecret, h.cfg.AccessTokenTTL, h.cfg.RefreshTokenTTL,
	)
	if err != nil {
		helpres.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	helpres.JSON(w, http.StatusOK, models.TokenPair{AccessToken: access, RefreshToken: refresh})
}

// Refresh
// @Summary      Обновление пары токенов
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   models.RefreshRequest  true  "Refresh-токен"
// @Success      200   {object}  models.TokenPair
// @Failure      401   {object}  helpres.Response
// @Router       /api/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpres.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	access, refresh, err := h.svc.Refresh(
		r.Context(),
		req.RefreshToken,
		h.cfg.JWTSecret, h.cfg.AccessTokenTTL, h.cfg.RefreshTokenTTL,
	)
	if err != nil {
		helpres.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	helpres.JSON(w, http.StatusOK, models.TokenPair{AccessToken: access, RefreshToken: refresh})
}

// Logout
// @Summary      Выход (отзыв refresh-токена)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   models.RefreshRequest  true  "Refresh-токен"
// @Success      200   {object}  helpres.Response
// @Security     ApiKeyAuth
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		helpres.Error(w, http.StatusUnauthorized, "нет аутентификации")
		return
	}

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpres.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.svc.Logout(r.Context(), userID, req.RefreshToken); err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Profile
// @Summary      Текущий профиль
// @Tags         auth
// @Produce      json
// @Success      200   {object}  models.Profile
// @Failure      401   {object}  helpres.Response
// @Security     ApiKeyAuth
// @Router       /api/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		helpres.Error(w, http.StatusUnauthorized, "нет аутентификации")
		return
	}

	p, err := h.svc.GetProfileByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusOK, p)
}
