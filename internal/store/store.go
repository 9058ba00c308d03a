// Package store holds the in-memory state tree of the conference site, mirrors it into a
// key-value backend after every mutation and exposes one repository per entity kind.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"agtechsummit/internal/domain"
	"agtechsummit/internal/events"
	"agtechsummit/internal/metrics"
)

const defaultPersistTimeout = 10 * time.Second

// Store owns the state tree. All repository calls go through its mutex; backend I/O and
// listener notification happen after the mutex is released.
type Store struct {
	mu    sync.Mutex
	state *State
	rev   uint64

	persistMu sync.Mutex
	savedRev  uint64
	degraded  atomic.Bool

	// loadErr is set during New when the backend could not be read. Saves are refused
	// while it is set so the stored snapshot is never replaced by the seed.
	loadErr error

	backend        domain.StateBackend
	bus            *events.Bus
	logger         *slog.Logger
	metrics        *metrics.StoreMetrics
	now            func() time.Time
	newID          func() string
	persistTimeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persistence warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the record id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithMetrics records mutations and persistence outcomes.
func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithBus publishes change notifications on an existing bus.
func WithBus(b *events.Bus) Option {
	return func(s *Store) { s.bus = b }
}

// WithPersistTimeout bounds each backend save.
func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) { s.persistTimeout = d }
}

// New builds the seed state and loads any stored snapshot from backend over it.
// A nil backend keeps the store purely in memory. Load problems never fail construction:
// they are logged and reflected by Degraded, and a backend read error is kept in LoadErr.
func New(ctx context.Context, backend domain.StateBackend, opts ...Option) *Store {
	s := &Store{
		backend:        backend,
		logger:         slog.Default(),
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
		persistTimeout: defaultPersistTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = events.New()
	}
	s.state = seedState(s.now())
	s.rev = 1
	s.load(ctx)
	return s
}

// Subscribe registers a listener called after every mutation that changed state.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	return s.bus.Subscribe(fn)
}

// LoadErr returns the backend error that prevented the stored snapshot from loading, or nil.
// A store with a load error serves the seed in memory and never saves.
func (s *Store) LoadErr() error {
	return s.loadErr
}

// Degraded reports whether the latest snapshot failed to reach the backend.
func (s *Store) Degraded() bool {
	return s.degraded.Load()
}

// Revision returns the number of state changes since the seed, starting at 1.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// Snapshot returns the JSON encoding of the current state tree.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.state)
}

// Flush saves the current state if it has not been saved yet.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	rev := s.rev
	payload, err := json.Marshal(s.state)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return s.persist(ctx, rev, payload)
}

// read runs fn with the state locked. fn must not retain references into the state.
func (s *Store) read(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// mutate applies fn under the lock. When fn reports a change the new snapshot is saved and
// subscribers are notified, both after the lock is released.
func (s *Store) mutate(ctx context.Context, op string, fn func(st *State) bool) {
	s.mu.Lock()
	if !fn(s.state) {
		s.mu.Unlock()
		return
	}
	s.rev++
	rev := s.rev
	payload, err := json.Marshal(s.state)
	s.mu.Unlock()

	s.metrics.ObserveMutation(op)
	if err != nil {
		s.logger.ErrorContext(ctx, "encode state failed", "op", op, "err", err)
		s.setDegraded(true)
	} else {
		_ = s.persist(ctx, rev, payload)
	}
	s.bus.Publish()
}

// persist saves payload unless a newer revision has already been saved.
func (s *Store) persist(ctx context.Context, rev uint64, payload []byte) error {
	if s.backend == nil {
		return nil
	}
	if s.loadErr != nil {
		s.logger.WarnContext(ctx, "not saving state, stored snapshot was never loaded", "key", StorageKey, "revision", rev)
		s.setDegraded(true)
		return fmt.Errorf("save %s refused: %w", StorageKey, s.loadErr)
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if rev <= s.savedRev {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
	defer cancel()
	start := time.Now()
	err := s.backend.Save(ctx, StorageKey, payload)
	s.metrics.ObservePersist(time.Since(start), err)
	if err != nil {
		s.logger.WarnContext(ctx, "persist state failed", "key", StorageKey, "revision", rev, "err", err)
		s.setDegraded(true)
		return fmt.Errorf("save %s: %w", StorageKey, err)
	}
	s.savedRev = rev
	s.setDegraded(false)
	return nil
}

func (s *Store) setDegraded(v bool) {
	if s.degraded.Swap(v) != v {
		s.metrics.SetDegraded(v)
	}
}

// Repositories returns every repository of the store as domain interfaces.
func (s *Store) Repositories() domain.Repositories {
	return domain.Repositories{
		PaperSubmissions:       s.PaperSubmissions(),
		Enquiries:              s.Enquiries(),
		Speakers:               s.Speakers(),
		LeadershipApplications: s.LeadershipApplications(),
		SpeakerApplications:    s.SpeakerApplications(),
		CommitteeMembers:       s.CommitteeMembers(),
		Sessions:               s.Sessions(),
		Registrations:          s.Registrations(),
		ExitFeedback:           s.ExitFeedback(),
		PassTiers:              s.PassTiers(),
		Stats:                  s.Stats(),
	}
}

// copies returns pointers to copies of items, so callers cannot alias the state tree.
func copies[T any](items []T) []*T {
	out := make([]*T, 0, len(items))
	for i := range items {
		c := items[i]
		out = append(out, &c)
	}
	return out
}

// set assigns *v to *dst when v is non-nil and differs, reporting whether it did.
func set[T comparable](dst *T, v *T) bool {
	if v == nil || *dst == *v {
		return false
	}
	*dst = *v
	return true
}
