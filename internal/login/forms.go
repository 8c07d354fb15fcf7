package login

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bornholm/academia/internal/metrics"
	"github.com/bornholm/academia/pkg/log"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"
)

var ErrClosed = errors.New("forms registry closed")

type mountedForm struct {
	mu       sync.Mutex
	form     Form
	lastSeen time.Time
	// cancel aborts the pending resolution, if any.
	cancel context.CancelFunc
}

// Forms keeps the login form of each visitor while it is displayed. A
// submission resolves after a fixed delay unless the form is unmounted first.
type Forms struct {
	entries       *xsync.MapOf[string, *mountedForm]
	authenticator Authenticator
	delay         time.Duration
	ttl           time.Duration
	metrics       *metrics.Metrics
	now           func() time.Time

	// closing guards closed and tasks.Add against a concurrent Close
	closing sync.RWMutex
	closed  bool
	ctx     context.Context
	cancel  context.CancelFunc
	tasks   sync.WaitGroup
}

func NewForms(authenticator Authenticator, funcs ...FormsOptionFunc) *Forms {
	opts := NewFormsOptions(funcs...)

	ctx, cancel := context.WithCancel(context.Background())

	return &Forms{
		entries:       xsync.NewMapOf[string, *mountedForm](),
		authenticator: authenticator,
		delay:         opts.Delay,
		ttl:           opts.TTL,
		metrics:       opts.Metrics,
		now:           opts.Now,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Mount returns the form identified by id, creating an idle one if needed.
func (f *Forms) Mount(id string) Form {
	entry := f.mount(id)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.lastSeen = f.now()

	return entry.form
}

func (f *Forms) mount(id string) *mountedForm {
	entry, _ := f.entries.LoadOrCompute(id, func() *mountedForm {
		return &mountedForm{lastSeen: f.now()}
	})

	return entry
}

// Get returns the form identified by id without mounting it.
func (f *Forms) Get(id string) (Form, bool) {
	entry, exists := f.entries.Load(id)
	if !exists {
		return Form{}, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.form, true
}

// Unmount discards the form identified by id. A pending resolution is
// cancelled and will not touch the form.
func (f *Forms) Unmount(id string) bool {
	entry, exists := f.entries.LoadAndDelete(id)
	if !exists {
		return false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.cancel != nil {
		entry.cancel()
		entry.cancel = nil
	}

	return true
}

// Submit submits the form identified by id, mounting it if needed. When the
// credentials are complete the form enters the submitting phase and is
// resolved by the authenticator once the delay has elapsed.
func (f *Forms) Submit(ctx context.Context, id string, email string, password string) (Form, error) {
	f.closing.RLock()
	defer f.closing.RUnlock()

	if f.closed {
		return Form{}, errors.WithStack(ErrClosed)
	}

	entry := f.mount(id)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.lastSeen = f.now()

	pending, err := entry.form.Submit(email, password)
	if err != nil {
		return entry.form, errors.WithStack(err)
	}

	if !pending {
		f.metrics.LoginSubmitted(metrics.LoginOutcomeMissingFields)
		return entry.form, nil
	}

	taskCtx, cancel := context.WithCancel(log.WithAttrs(f.ctx, log.ContextAttrs(ctx)...))
	entry.cancel = cancel

	f.metrics.LoginPending(1)
	f.tasks.Add(1)

	go f.resolve(taskCtx, entry, email, password)

	slog.DebugContext(ctx, "login form submitted", slog.String("form", id))

	return entry.form, nil
}

func (f *Forms) resolve(ctx context.Context, entry *mountedForm, email string, password string) {
	defer f.tasks.Done()
	defer f.metrics.LoginPending(-1)

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		f.metrics.LoginSubmitted(metrics.LoginOutcomeCancelled)
		return
	case <-timer.C:
	}

	outcome := metrics.LoginOutcomeFailure

	authenticated, err := f.authenticator.Authenticate(ctx, email, password)
	switch {
	case err != nil && ctx.Err() == nil:
		slog.ErrorContext(ctx, "could not authenticate", log.Error(errors.WithStack(err)))
		outcome = metrics.LoginOutcomeError
		authenticated = false
	case err == nil && authenticated:
		outcome = metrics.LoginOutcomeSuccess
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// The form was unmounted, or the registry closed, while authenticating
	if ctx.Err() != nil {
		f.metrics.LoginSubmitted(metrics.LoginOutcomeCancelled)
		return
	}

	if err := entry.form.Resolve(authenticated); err != nil {
		slog.ErrorContext(ctx, "could not resolve login form", log.Error(errors.WithStack(err)))
		return
	}

	entry.cancel()
	entry.cancel = nil

	f.metrics.LoginSubmitted(outcome)

	slog.DebugContext(ctx, "login form resolved", slog.String("phase", entry.form.Phase.String()))
}

// Sweep unmounts the forms not seen since ttl before now and returns how many
// were removed.
func (f *Forms) Sweep(now time.Time) int {
	removed := 0

	f.entries.Range(func(id string, entry *mountedForm) bool {
		entry.mu.Lock()
		expired := now.Sub(entry.lastSeen) > f.ttl
		entry.mu.Unlock()

		if expired && f.Unmount(id) {
			removed++
		}

		return true
	})

	return removed
}

// Run sweeps expired forms until ctx is done.
func (f *Forms) Run(ctx context.Context) {
	interval := f.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-f.ctx.Done():
			return
		case <-ticker.C:
			if removed := f.Sweep(f.now()); removed > 0 {
				slog.DebugContext(ctx, "expired login forms unmounted", slog.Int("count", removed))
			}
		}
	}
}

// Close cancels every pending resolution and waits for them to stop.
func (f *Forms) Close() {
	f.closing.Lock()
	f.closed = true
	f.cancel()
	f.closing.Unlock()

	f.tasks.Wait()
}

type FormsOptions struct {
	Delay   time.Duration
	TTL     time.Duration
	Metrics *metrics.Metrics
	Now     func() time.Time
}

type FormsOptionFunc func(opts *FormsOptions)

func NewFormsOptions(funcs ...FormsOptionFunc) *FormsOptions {
	opts := &FormsOptions{
		Delay: 1500 * time.Millisecond,
		TTL:   30 * time.Minute,
		Now:   time.Now,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithDelay(delay time.Duration) FormsOptionFunc {
	return func(opts *FormsOptions) {
		opts.Delay = delay
	}
}

func WithTTL(ttl time.Duration) FormsOptionFunc {
	return func(opts *FormsOptions) {
		opts.TTL = ttl
	}
}

func WithMetrics(m *metrics.Metrics) FormsOptionFunc {
	return func(opts *FormsOptions) {
		opts.Metrics = m
	}
}

func WithNow(now func() time.Time) FormsOptionFunc {
	return func(opts *FormsOptions) {
		opts.Now = now
	}
}
