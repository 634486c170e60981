package handlers

import (
	"io"
	"net/http"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// UploadHandler — загрузка/отдача картинок по пути. Активный сценарий
// обложек — inline base64 в контенте; этот канал оставлен для внешних ссылок.
type UploadHandler struct {
	storage *services.StorageService
}

func NewUploadHandler(storage *services.StorageService) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload
// @Summary      Загрузить картинку
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Файл картинки"
// @Success      201   {object}  models.Image
// @Failure      400   {object}  helpres.Response
// @Security     ApiKeyAuth
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		helpres.Error(w, http.StatusBadRequest, "файл не передан")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 6<<20))
	if err != nil {
		logger.WithCtx(r.Context()).Error("ошибка чтения файла", zap.Error(err))
		helpres.Error(w, http.StatusBadRequest, "не удалось прочитать файл")
		return
	}

	img, err := h.storage.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpres.JSON(w, http.StatusCreated, img)
}

// Serve отдаёт загруженную картинку по её пути.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	img, err := h.storage.Get(r.Context(), mux.Vars(r)["path"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", img.Mime)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(img.Data)
}
