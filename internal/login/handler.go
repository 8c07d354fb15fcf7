package login

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/academia/internal/metrics"
	"github.com/bornholm/academia/internal/site"
	"github.com/bornholm/academia/internal/ui"
	"github.com/bornholm/academia/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const (
	pageName       = "login"
	sessionKeyForm = "form"
	// Interval between two reloads of a page waiting for its resolution
	pendingRefreshSeconds = 1
)

type Handler struct {
	mux          *http.ServeMux
	site         *site.Site
	forms        *Forms
	sessionStore sessions.Store
	sessionName  string
	prefix       string
	metrics      *metrics.Metrics
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(s *site.Site, forms *Forms, sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:          http.NewServeMux(),
		site:         s,
		forms:        forms,
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		prefix:       opts.Prefix,
		metrics:      opts.Metrics,
	}

	h.mux.HandleFunc(fmt.Sprintf("GET %s/login", h.prefix), h.getLoginPage)
	h.mux.HandleFunc(fmt.Sprintf("POST %s/login", h.prefix), h.handleSubmit)

	return h
}

func (h *Handler) LoginPath() string {
	return h.prefix + "/login"
}

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := h.sessionFormID(w, r, true)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve login form session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	form := h.forms.Mount(id)

	data := LoginTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Acceso a la Academia - " + h.site.Title,
		},
		Logo:              h.site.Logo,
		Action:            h.LoginPath(),
		Form:              form,
		ForgotPasswordURL: "/recuperar-contrasena",
	}

	if form.IsLoading() {
		data.RefreshSeconds = pendingRefreshSeconds
	}

	h.metrics.PageViewed(pageName)

	if err := templates.ExecuteTemplate(w, "login", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, err := h.sessionFormID(w, r, true)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve login form session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	ctx = log.WithAttrs(ctx, slog.String("form", id))

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if _, err := h.forms.Submit(ctx, id, email, password); err != nil {
		// A submission while another one is pending is dropped: the page
		// displays the pending one.
		if !errors.Is(err, ErrAlreadySubmitting) {
			slog.ErrorContext(ctx, "could not submit login form", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
	}

	http.Redirect(w, r, h.LoginPath(), http.StatusSeeOther)
}

// UnmountOnLeave discards the login form of the visitor before serving any
// other page with next. Subresource requests, like the favicon fetched
// while the login page is displayed, leave the form untouched.
func (h *Handler) UnmountOnLeave(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isNavigation(r) {
			next.ServeHTTP(w, r)
			return
		}

		id, err := h.sessionFormID(w, r, false)
		if err != nil {
			slog.WarnContext(r.Context(), "could not retrieve login form session", log.Error(errors.WithStack(err)))
		}

		if id != "" && h.forms.Unmount(id) {
			slog.DebugContext(r.Context(), "login form unmounted", slog.String("form", id))
		}

		next.ServeHTTP(w, r)
	})
}

func isNavigation(r *http.Request) bool {
	if dest := r.Header.Get("Sec-Fetch-Dest"); dest != "" {
		return dest == "document"
	}

	// Without fetch metadata only an explicit HTML preference counts, as
	// subresource requests also accept */*
	accept := r.Header.Get("Accept")

	return accept == "" || strings.Contains(accept, "text/html")
}

// sessionFormID returns the form identifier bound to the visitor session.
// When create is true and no identifier exists yet, a new one is bound.
func (h *Handler) sessionFormID(w http.ResponseWriter, r *http.Request, create bool) (string, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// An undecodable cookie yields a fresh session, which is used as is
		slog.DebugContext(r.Context(), "could not decode session, starting a new one", log.Error(err))
	}

	if sess == nil {
		return "", errors.New("no session available")
	}

	id, _ := sess.Values[sessionKeyForm].(string)
	if id != "" || !create {
		return id, nil
	}

	id = xid.New().String()
	sess.Values[sessionKeyForm] = id

	if err := sess.Save(r, w); err != nil {
		return "", errors.WithStack(err)
	}

	return id, nil
}

var _ http.Handler = &Handler{}
