package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/diewo77/go-documents/httpx"
	"github.com/diewo77/go-documents/i18n"
	"github.com/diewo77/go-documents/internal/config"
	"github.com/diewo77/go-documents/internal/handlers"
	"github.com/diewo77/go-documents/internal/services"
	"github.com/diewo77/go-documents/pdf"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux  *http.ServeMux
	db   *gorm.DB
	lang string
}

// NewApp builds one renderer per supported language, using the stored
// company as issuer, and configures all routes.
func NewApp(ctx context.Context, db *gorm.DB, cfg *config.Config, log *zap.Logger) (*App, error) {
	issuer, err := services.LoadIssuer(ctx, db)
	if err != nil {
		return nil, err
	}

	var store pdf.Store
	if cfg.Render.OutputDir != "" {
		store = pdf.DirStore{Dir: cfg.Render.OutputDir}
	}
	renderers := services.ByLanguage{}
	for _, lang := range []string{"fr", "en"} {
		renderers[lang] = pdf.NewRenderer(pdf.Options{
			Issuer:   issuer,
			Lang:     lang,
			Currency: cfg.Render.Currency,
			Logger:   log,
			Store:    store,
			Validate: cfg.Render.Validate,
		})
	}
	if !i18n.Supported(cfg.Render.Lang) {
		return nil, fmt.Errorf("unsupported RENDER_LANG %q", cfg.Render.Lang)
	}

	app := &App{mux: http.NewServeMux(), db: db, lang: cfg.Render.Lang}
	app.setupRoutes(
		handlers.NewDocumentHandler(services.NewDocumentService(db, renderers)),
		handlers.NewRenderHandler(renderers),
	)
	return app, nil
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withPreferences(a.mux, a.lang).ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes(dh *handlers.DocumentHandler, rh *handlers.RenderHandler) {
	a.mux.HandleFunc("GET /healthz", a.health)

	a.mux.HandleFunc("GET /documents", dh.List)
	a.mux.HandleFunc("GET /documents/{id}/pdf", dh.PDF)

	a.mux.HandleFunc("POST /render/{variant}", rh.Render)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "database_unavailable", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withPreferences picks the document language from the query, the lang
// cookie or the Accept-Language header, in that order, and uses fallback
// when none names a supported language. A query value is kept in the
// cookie for 30 days.
func withPreferences(next http.Handler, fallback string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ""
		if c, err := r.Cookie("lang"); err == nil && i18n.Supported(c.Value) {
			lang = c.Value
		}
		if q := r.URL.Query().Get("lang"); i18n.Supported(q) {
			lang = q
			http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/", MaxAge: 86400 * 30})
		}
		if lang == "" {
			if detected, ok := i18n.MatchLanguage(r.Header.Get("Accept-Language")); ok {
				lang = detected
			} else {
				lang = fallback
			}
		}
		next.ServeHTTP(w, r.WithContext(i18n.WithLang(r.Context(), lang)))
	})
}
