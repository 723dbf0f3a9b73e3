package snapshot

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/fidlr/playstats/internal/normalize"
	"github.com/fidlr/playstats/internal/source"
)

// ErrNotReady means no snapshot has been published yet. It is retryable:
// callers should surface "not yet available", not a hard fault.
var ErrNotReady = errors.New("no snapshot published yet")

// ErrThrottled means a rebuild was requested sooner than the store's
// minimum rebuild interval allows.
var ErrThrottled = errors.New("rebuild throttled")

// Store owns the single published snapshot. Publish is an atomic pointer
// swap: readers never block each other or a publishing writer, and a reader
// holding an older snapshot keeps a fully consistent, if stale, view.
// Writers are serialized.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
	limiter *rate.Limiter
}

// NewStore returns an empty store. minRebuildInterval throttles how often
// Rebuild may run; zero disables throttling.
func NewStore(minRebuildInterval time.Duration) *Store {
	limit := rate.Inf
	if minRebuildInterval > 0 {
		limit = rate.Every(minRebuildInterval)
	}
	return &Store{limiter: rate.NewLimiter(limit, 1)}
}

// Current returns the published snapshot, or ErrNotReady before the first
// publish.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap, nil
}

// Publish atomically replaces the published snapshot.
func (s *Store) Publish(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Store(snap)
}

// Rebuild drains the source, runs the aggregation pipeline, and publishes
// the result. Any failure aborts the whole run before publish, so the
// previous snapshot (if any) stays valid.
func (s *Store) Rebuild(src source.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.limiter.Allow() {
		return ErrThrottled
	}

	events, acc, err := normalize.FromSource(src)
	if err != nil {
		return err
	}

	snap := Assemble(events, acc)
	s.current.Store(snap)
	slog.Info("published listening snapshot",
		"events", snap.EventCount,
		"artists", len(snap.Artists),
		"tracks", len(snap.Tracks),
		"genre_buckets", len(snap.GenreTrend))
	return nil
}
