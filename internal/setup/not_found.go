package setup

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/academia/internal/metrics"
	"github.com/bornholm/academia/internal/site"
	"github.com/bornholm/academia/internal/ui"
	"github.com/bornholm/academia/pkg/log"
	"github.com/pkg/errors"
)

// NotFoundTemplateData contains the data needed to render the page of an
// unknown path
type NotFoundTemplateData struct {
	ui.PageTemplateData
	Path string
}

// NewNotFoundHandler renders a page keeping the navbar and the footer
// for every path reaching it.
func NewNotFoundHandler(s *site.Site, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		state := ui.ParseNavbarState(r.URL.Query())

		data := NotFoundTemplateData{
			PageTemplateData: ui.NewPageTemplateData(s, "Página no encontrada", r.URL.Path, state),
			Path:             r.URL.Path,
		}

		m.PageViewed("not_found")

		w.WriteHeader(http.StatusNotFound)

		if err := templates.ExecuteTemplate(w, "not_found", data); err != nil {
			slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
			return
		}
	})
}
