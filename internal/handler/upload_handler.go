package handler

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/acesite/backend/internal/storage"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadHandler stores admin-uploaded images (project photos, hero and
// about images). Routes are mounted behind auth.RequireAdmin.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates an UploadHandler backed by the given store.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// Upload handles POST /api/admin/upload with a multipart "image" field and
// responds with the public URL of the stored file.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "File is too large"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "An image file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "File is too large"})
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Only JPEG, PNG and WebP images are allowed"})
		return
	}

	key := path.Join("media", uuid.NewString()+ext)
	url, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("image upload failed", "error", err, "key", key)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to store the image"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
