package debug

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler exposes the runtime profiles under prefix/pprof, the published
// variables under prefix/vars and the collected metrics under prefix/metrics.
func NewHandler(prefix string, metrics http.Handler) *Handler {
	mux := &http.ServeMux{}

	mux.HandleFunc(fmt.Sprintf("%s/pprof/", prefix), pprof.Index)
	mux.HandleFunc(fmt.Sprintf("%s/pprof/cmdline", prefix), pprof.Cmdline)
	mux.HandleFunc(fmt.Sprintf("%s/pprof/profile", prefix), pprof.Profile)
	mux.HandleFunc(fmt.Sprintf("%s/pprof/symbol", prefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("%s/pprof/trace", prefix), pprof.Trace)
	mux.Handle(fmt.Sprintf("%s/vars", prefix), expvar.Handler())

	mux.HandleFunc(fmt.Sprintf("%s/pprof/{name}", prefix), func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		pprof.Handler(name).ServeHTTP(w, r)
	})

	if metrics != nil {
		mux.Handle(fmt.Sprintf("GET %s/metrics", prefix), metrics)
	}

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
