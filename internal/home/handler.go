package home

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/academia/internal/metrics"
	"github.com/bornholm/academia/internal/site"
	"github.com/bornholm/academia/internal/ui"
	"github.com/bornholm/academia/pkg/log"
	"github.com/pkg/errors"
)

const pageName = "home"

type Handler struct {
	site    *site.Site
	metrics *metrics.Metrics
	mux     *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(s *site.Site, m *metrics.Metrics) *Handler {
	handler := &Handler{
		site:    s,
		metrics: m,
		mux:     &http.ServeMux{},
	}

	handler.mux.HandleFunc("GET /{$}", handler.serveIndex)

	return handler
}

// serveIndex renders the homepage sections in order: navbar, hero,
// categories, about and footer
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state := ui.ParseNavbarState(r.URL.Query())

	data := HomeTemplateData{
		PageTemplateData: ui.NewPageTemplateData(h.site, "Inicio", r.URL.Path, state),
		Hero:             h.site.Hero,
		Categories:       h.site.Categories,
		About:            h.site.About,
	}

	h.metrics.PageViewed(pageName)

	if err := templates.ExecuteTemplate(w, "index", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

var _ http.Handler = &Handler{}
