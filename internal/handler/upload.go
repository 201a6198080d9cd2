package handler

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hankookn/teamblog/internal/storage"
	"github.com/hankookn/teamblog/internal/validation"
)

// UploadHandler stores featured images for the admin editor.
type UploadHandler struct {
	storage storage.Storage
}

func NewUploadHandler(st storage.Storage) *UploadHandler {
	return &UploadHandler{storage: st}
}

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// UploadImage accepts a multipart "file" field, validates it as an image
// and stores it under a fresh key.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(validation.MaxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	if err := validation.ValidateImage(header); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := "images/" + uuid.NewString() + ext

	contentType := header.Header.Get("Content-Type")
	if err := h.storage.Save(r.Context(), key, contentType, file); err != nil {
		slog.Error("image upload failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Success: true,
		URL:     h.storage.URL(key),
	})
}
