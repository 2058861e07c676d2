package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/go-documents/i18n"
	"github.com/diewo77/go-documents/internal/db"
	"github.com/diewo77/go-documents/internal/models"
	"github.com/diewo77/go-documents/internal/services"
	"github.com/diewo77/go-documents/pdf"
)

// setupTestDB creates a seeded SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.Migrate(d); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := db.Seed(d); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return d
}

func testRenderers() services.ByLanguage {
	now := func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	return services.ByLanguage{
		"fr": pdf.NewRenderer(pdf.Options{Lang: "fr", Issuer: pdf.Issuer{Name: "Sono"}, Now: now}),
		"en": pdf.NewRenderer(pdf.Options{Lang: "en", Issuer: pdf.Issuer{Name: "Sono"}, Now: now}),
	}
}

func TestDocumentHandler_List(t *testing.T) {
	h := NewDocumentHandler(services.NewDocumentService(setupTestDB(t), testRenderers()))

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/documents", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var docs []services.DocumentSummary
	if err := json.Unmarshal(rr.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(docs) != 4 {
		t.Errorf("expected 4 documents, got %d", len(docs))
	}
}

func TestDocumentHandler_PDF(t *testing.T) {
	d := setupTestDB(t)
	h := NewDocumentHandler(services.NewDocumentService(d, testRenderers()))
	var doc models.Document
	d.Where("number = ?", "BL-2025-0001").First(&doc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /documents/{id}/pdf", h.PDF)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"ok", "/documents/" + strconv.FormatUint(uint64(doc.ID), 10) + "/pdf", http.StatusOK},
		{"not found", "/documents/9999/pdf", http.StatusNotFound},
		{"bad id", "/documents/abc/pdf", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rr.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, rr.Code, rr.Body.String())
			}
			if tt.code != http.StatusOK {
				return
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
				t.Errorf("content type = %q", ct)
			}
			if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "BL_BL-2025-0001_Agence_Garonne_Events_21-06-2025.pdf") {
				t.Errorf("content disposition = %q", cd)
			}
			if rr.Header().Get("X-Page-Count") != "1" {
				t.Errorf("page count header = %q", rr.Header().Get("X-Page-Count"))
			}
			if n, err := pdf.PageCount(rr.Body.Bytes()); err != nil || n != 1 {
				t.Errorf("PageCount = %d, %v", n, err)
			}
		})
	}
}

func TestRenderHandler_Render(t *testing.T) {
	h := NewRenderHandler(testRenderers())
	mux := http.NewServeMux()
	mux.HandleFunc("POST /render/{variant}", h.Render)

	valid := `{"id":"DEV-9","party_name":"Acme","date":"01/02/2025","tax_rate":0.2,
		"items":[{"designation":"Enceinte","quantity_ordered":2,"unit_price":45}]}`
	tests := []struct {
		name     string
		path     string
		body     string
		lang     string
		code     int
		errCode  string
		filename string
	}{
		{name: "quote", path: "/render/quote", body: valid, code: http.StatusOK, filename: "Devis_DEV-9_Acme_01-02-2025.pdf"},
		{name: "invoice alias", path: "/render/facture", body: valid, code: http.StatusOK, filename: "Facture_DEV-9_Acme_01-02-2025.pdf"},
		{name: "delivery note", path: "/render/delivery-note", body: `{"id":"BL-9","party_name":"Acme","items":[]}`, code: http.StatusOK, filename: "BL_BL-9_Acme.pdf"},
		{name: "unknown variant", path: "/render/receipt", body: valid, code: http.StatusNotFound, errCode: "unknown_variant"},
		{name: "bad json", path: "/render/quote", body: `{"id":`, code: http.StatusBadRequest, errCode: "invalid_json"},
		{name: "unknown field", path: "/render/event-report", body: `{"id":"E","party_name":"A","tax_rate":0.2}`, code: http.StatusBadRequest, errCode: "invalid_json"},
		{name: "invalid", path: "/render/quote", body: `{"party_name":"Acme","tax_rate":3}`, lang: "en", code: http.StatusUnprocessableEntity, errCode: "invalid_record"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.lang != "" {
				req = req.WithContext(i18n.WithLang(req.Context(), tt.lang))
			}
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, rr.Code, rr.Body.String())
			}
			if tt.errCode != "" {
				var body struct {
					Error   string          `json:"error"`
					Details json.RawMessage `json:"details"`
				}
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if body.Error != tt.errCode {
					t.Errorf("error = %q, want %q", body.Error, tt.errCode)
				}
				if tt.errCode == "invalid_record" {
					var details map[string]string
					_ = json.Unmarshal(body.Details, &details)
					if details["id"] != "Required" || details["tax_rate"] != "Out of range" {
						t.Errorf("details = %v", details)
					}
				}
				return
			}
			if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, tt.filename) {
				t.Errorf("content disposition = %q, want %q", cd, tt.filename)
			}
			if !bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF-")) {
				t.Error("body is not a PDF")
			}
		})
	}
}
