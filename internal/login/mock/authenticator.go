// Package mock provides an authenticator that only checks the shape of the
// credentials. It does not verify them against anything.
package mock

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/academia/internal/login"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const Type login.Type = "mock"

func init() {
	login.Register(Type, CreateAuthenticatorFromOptions)
}

type Options struct {
	MinPasswordLength int    `mapstructure:"minPasswordLength" yaml:"minPasswordLength"`
	RequiredChar      string `mapstructure:"requiredChar" yaml:"requiredChar"`
}

func NewDefaultOptions() Options {
	return Options{
		MinPasswordLength: 6,
		RequiredChar:      "@",
	}
}

type Authenticator struct {
	minPasswordLength int
	requiredChar      string
}

// Authenticate implements login.Authenticator.
func (a *Authenticator) Authenticate(ctx context.Context, email string, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.WithStack(err)
	}

	if !strings.Contains(email, a.requiredChar) {
		return false, nil
	}

	return utf8.RuneCountInString(password) >= a.minPasswordLength, nil
}

var _ login.Authenticator = &Authenticator{}

func NewAuthenticator(opts Options) *Authenticator {
	return &Authenticator{
		minPasswordLength: opts.MinPasswordLength,
		requiredChar:      opts.RequiredChar,
	}
}

func CreateAuthenticatorFromOptions(options any) (login.Authenticator, error) {
	opts := NewDefaultOptions()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create '%s' authenticator options decoder", Type)
	}

	if options != nil {
		if err := decoder.Decode(options); err != nil {
			return nil, errors.Wrapf(err, "could not parse '%s' authenticator options", Type)
		}
	}

	if opts.MinPasswordLength < 0 {
		return nil, errors.Errorf("invalid '%s' authenticator option minPasswordLength: %d", Type, opts.MinPasswordLength)
	}

	return NewAuthenticator(opts), nil
}
