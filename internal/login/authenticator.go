package login

import (
	"context"
	"slices"
	"sync"

	"github.com/pkg/errors"
)

// Authenticator checks a pair of credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, email string, password string) (bool, error)
}

type AuthenticateFunc func(ctx context.Context, email string, password string) (bool, error)

func (fn AuthenticateFunc) Authenticate(ctx context.Context, email string, password string) (bool, error) {
	return fn(ctx, email, password)
}

type Type string

type CreateAuthenticatorFunc func(options any) (Authenticator, error)

var ErrNotRegistered = errors.New("authenticator type not registered")

var (
	registryMutex sync.RWMutex
	registry      = map[Type]CreateAuthenticatorFunc{}
)

func Register(authType Type, fn CreateAuthenticatorFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[authType] = fn
}

func Registered() []Type {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}

func NewAuthenticator(authType Type, options any) (Authenticator, error) {
	registryMutex.RLock()
	create, exists := registry[authType]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrNotRegistered, "could not find authenticator '%s'", authType)
	}

	auth, err := create(options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return auth, nil
}
