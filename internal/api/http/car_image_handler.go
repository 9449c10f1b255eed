package http

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
)

// UploadCarImage handles PUT /cars/{id}/image. Admin only; the raw image
// bytes come in the body, typed by the Content-Type header.
func (h *CarHandler) UploadCarImage(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	id, err := parseInt32(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid car id")
		return
	}

	car, err := h.cars.UploadImage(r.Context(), actor, id, r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

// GetCarImage handles GET /cars/{id}/image. Unauthenticated; streams the
// stored photo.
func (h *CarHandler) GetCarImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt32(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid car id")
		return
	}

	file, contentType, err := h.cars.OpenImage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := io.Copy(w, file); err != nil {
		logger.Warn("failed to stream car image", "car_id", id, "error", err)
	}
}
