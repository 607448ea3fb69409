package handlers

import (
	"net/http"

	"ngoportal/internal/service"
)

type UploadHandler struct {
	upload  service.UploadService
	maxSize int64
}

func NewUploadHandler(upload service.UploadService, maxSize int64) *UploadHandler {
	return &UploadHandler{upload: upload, maxSize: maxSize}
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// hard cap on the request body, with headroom for multipart framing
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+64*1024)

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		writeError(w, "file too large", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageURL, err := h.upload.Store(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, map[string]string{"imageUrl": imageURL}, http.StatusCreated)
}
