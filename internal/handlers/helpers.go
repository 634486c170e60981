package handlers

import (
	"errors"
	"net/http"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/repository"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils/helpres"
)

// writeServiceError — единая раскладка ошибок сервисов по HTTP-статусам:
// не найдено / запрещено / валидация / всё остальное.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		helpres.Error(w, http.StatusNotFound, "не найдено")
	case errors.Is(err, services.ErrForbidden):
		helpres.Error(w, http.StatusForbidden, "у вас нет прав на это действие")
	case errors.Is(err, services.ErrValidation):
		helpres.Error(w, http.StatusBadRequest, err.Error())
	default:
		helpres.Error(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}
