package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/diewo77/go-documents/httpx"
	"github.com/diewo77/go-documents/internal/logger"
	"github.com/diewo77/go-documents/internal/services"
)

type DocumentHandler struct {
	svc *services.DocumentService
}

func NewDocumentHandler(svc *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// List returns the stored documents as JSON.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.List(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("list documents", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, docs)
}

// PDF renders a stored document.
func (h *DocumentHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}

	res, err := h.svc.Render(r.Context(), uint(id))
	switch {
	case errors.Is(err, services.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	case err != nil:
		httpx.JSONError(w, http.StatusInternalServerError, "render_failed", nil)
		return
	}
	httpx.PDF(w, res.Filename, res.Data, res.Pages)
}
