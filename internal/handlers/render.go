package handlers

import (
	"net/http"

	"github.com/diewo77/go-documents/httpx"
	"github.com/diewo77/go-documents/i18n"
	"github.com/diewo77/go-documents/internal/services"
	"github.com/diewo77/go-documents/pdf"
	"github.com/diewo77/go-documents/validation"
)

// RenderHandler renders records posted as JSON.
type RenderHandler struct {
	renderer services.Renderer
}

func NewRenderHandler(renderer services.Renderer) *RenderHandler {
	return &RenderHandler{renderer: renderer}
}

// Render handles POST /render/{variant}.
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	variant, ok := pdf.ParseVariant(r.PathValue("variant"))
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "unknown_variant", map[string]string{"variant": r.PathValue("variant")})
		return
	}

	rec := pdf.NewRecord(variant)
	if err := httpx.DecodeJSON(w, r, rec); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if q, ok := rec.(*pdf.QuoteInvoiceRecord); ok {
		q.Kind = variant
	}

	if v := validation.Record(rec); !v.Empty() {
		lang := i18n.LangFromContext(r.Context())
		httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid_record", v.Translate(i18n.Translator(lang)))
		return
	}

	res, err := h.renderer.Render(r.Context(), rec)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "render_failed", nil)
		return
	}
	httpx.PDF(w, res.Filename, res.Data, res.Pages)
}
