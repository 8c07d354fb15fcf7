package setup

import (
	"context"
	"sync"

	"github.com/bornholm/academia/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes factory: every call shares the service built
// by the first one.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once    sync.Once
		service T
		err     error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			service, err = factory(ctx, conf)
		})
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		return service, nil
	}
}
