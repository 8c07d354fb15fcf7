package setup

import (
	"context"
	"time"

	"github.com/bornholm/academia/internal/config"
	"github.com/bornholm/academia/internal/login"
	"github.com/bornholm/academia/internal/metrics"
	"github.com/pkg/errors"

	_ "github.com/bornholm/academia/internal/login/mock"
)

func NewAuthenticatorFromConfig(ctx context.Context, conf *config.Config) (login.Authenticator, error) {
	var options any
	if conf.Login.Authenticator.Options != nil {
		options = conf.Login.Authenticator.Options.Data
	}

	auth, err := login.NewAuthenticator(login.Type(conf.Login.Authenticator.Type), options)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create authenticator '%s'", conf.Login.Authenticator.Type)
	}

	return auth, nil
}

var NewMetricsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*metrics.Metrics, error) {
	return metrics.New(), nil
})

// NewFormsFromConfig returns the login forms registry shared by the login
// handler and the process lifecycle.
var NewFormsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*login.Forms, error) {
	auth, err := NewAuthenticatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	m, err := NewMetricsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs := []login.FormsOptionFunc{
		login.WithMetrics(m),
	}

	if conf.Login.Delay != nil {
		funcs = append(funcs, login.WithDelay(time.Duration(*conf.Login.Delay)))
	}

	if conf.Login.TTL != nil {
		funcs = append(funcs, login.WithTTL(time.Duration(*conf.Login.TTL)))
	}

	return login.NewForms(auth, funcs...), nil
})
