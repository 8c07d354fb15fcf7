package login

import "github.com/bornholm/academia/internal/metrics"

type Options struct {
	SessionName string
	Prefix      string
	Metrics     *metrics.Metrics
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName: "academia_login",
		Prefix:      "",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

func WithHandlerMetrics(m *metrics.Metrics) OptionFunc {
	return func(opts *Options) {
		opts.Metrics = m
	}
}
