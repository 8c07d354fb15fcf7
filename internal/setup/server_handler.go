package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/academia/internal/config"
	"github.com/bornholm/academia/internal/debug"
	"github.com/bornholm/academia/internal/home"
	"github.com/bornholm/academia/internal/login"
	"github.com/bornholm/academia/internal/ratelimit"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	m, err := NewMetricsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	forms, err := NewFormsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	site := &conf.Site

	loginHandler := login.NewHandler(site, forms, sessionStore, login.WithHandlerMetrics(m))

	rateLimiter := ratelimit.New(rate.Limit(conf.Login.RateLimit.Rate), int(conf.Login.RateLimit.Burst))
	rateLimiterMiddleware := rateLimiter.Middleware(ratelimit.RemoteAddr)

	mux.Handle("GET /login", loginHandler)
	mux.Handle("POST /login", rateLimiterMiddleware(loginHandler))

	// Leaving the login page for any other page discards its form
	mux.Handle("GET /{$}", loginHandler.UnmountOnLeave(home.NewHandler(site, m)))
	mux.Handle("/", loginHandler.UnmountOnLeave(NewNotFoundHandler(site, m)))

	assetsHandler, err := NewAssetsHandlerFromConfig(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle("GET /assets/", assetsHandler)

	if conf.Debug.Enabled {
		mux.Handle("/debug/", debug.NewHandler("/debug", m.Handler()))
	}

	return slogMiddleware(mux), nil
}
