package visit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/cosmic-portfolio/internal/clock"
)

// ErrClosed is returned once the registry has shut down.
var ErrClosed = errors.New("visit: registry closed")

const (
	// DefaultTTL is how long an untouched visit is kept.
	DefaultTTL = 30 * time.Minute
	// DefaultMaxVisits is how many visits are kept at once.
	DefaultMaxVisits = 10000
)

// Registry holds the live visits, keyed by visitor id.
type Registry struct {
	clock clock.Clock
	ttl   time.Duration
	opts  Options
	log   *zap.Logger

	mu     sync.Mutex
	visits map[string]*Visit
	closed bool
}

// NewRegistry returns an empty registry. A ttl <= 0 uses DefaultTTL.
func NewRegistry(c clock.Clock, ttl time.Duration, opts Options, logger *zap.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxVisits <= 0 {
		opts.MaxVisits = DefaultMaxVisits
	}
	return &Registry{
		clock:  clock.OrReal(c),
		ttl:    ttl,
		opts:   opts,
		log:    logger,
		visits: make(map[string]*Visit),
	}
}

// Create starts a visit with a fresh id. When the registry is full the
// least recently seen visit is evicted to make room.
func (r *Registry) Create() (*Visit, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrClosed
	}
	var evicted *Visit
	if len(r.visits) >= r.opts.MaxVisits {
		evicted = r.oldestLocked()
		delete(r.visits, evicted.ID)
	}
	v := newVisit(uuid.NewString(), r.clock, r.opts, r.log)
	r.visits[v.ID] = v
	r.mu.Unlock()

	if evicted != nil {
		evicted.close()
		r.log.Debug("registry full, evicted visit", zap.String("visit", evicted.ID))
	}
	return v, nil
}

func (r *Registry) oldestLocked() *Visit {
	var oldest *Visit
	for _, v := range r.visits {
		if oldest == nil || v.LastSeen().Before(oldest.LastSeen()) {
			oldest = v
		}
	}
	return oldest
}

// Get returns a live visit and marks it as seen.
func (r *Registry) Get(id string) (*Visit, bool) {
	r.mu.Lock()
	v, ok := r.visits[id]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	v.touch()
	return v, true
}

// Resolve returns the visit for id, creating a new one when id is unknown
// or expired.
func (r *Registry) Resolve(id string) (*Visit, error) {
	if id != "" {
		if v, ok := r.Get(id); ok {
			return v, nil
		}
	}
	return r.Create()
}

// Remove ends a visit and unmounts its page.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	v, ok := r.visits[id]
	delete(r.visits, id)
	r.mu.Unlock()
	if ok {
		v.close()
	}
}

// Len reports the number of live visits.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visits)
}

// Sweep evicts visits idle for longer than the ttl and returns how many
// were removed.
func (r *Registry) Sweep() int {
	cutoff := r.clock.Now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Visit
	for id, v := range r.visits {
		if v.LastSeen().Before(cutoff) {
			expired = append(expired, v)
			delete(r.visits, id)
		}
	}
	r.mu.Unlock()

	for _, v := range expired {
		v.close()
	}
	if len(expired) > 0 {
		r.log.Debug("swept idle visits", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close unmounts every visit and refuses new ones.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	visits := r.visits
	r.visits = make(map[string]*Visit)
	r.mu.Unlock()

	for _, v := range visits {
		v.close()
	}
}
