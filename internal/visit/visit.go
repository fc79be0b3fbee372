// Package visit tracks each visitor's mounted page and the components it
// owns. Mounting a page unmounts the previous one, so timers and observers
// never outlive the view that started them.
package visit

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/cosmic-portfolio/internal/clock"
	"github.com/Zachkp/cosmic-portfolio/internal/contact"
	"github.com/Zachkp/cosmic-portfolio/internal/reveal"
	"github.com/Zachkp/cosmic-portfolio/internal/splash"
)

// Routes that own stateful components.
const (
	SplashRoute  = "/"
	ContactRoute = "/contact"
)

// Options configures the registry and the components built for each
// mount.
type Options struct {
	Splash          splash.Config
	Contact         contact.Options
	RevealThreshold float64
	// MaxVisits bounds the registry; 0 uses DefaultMaxVisits.
	MaxVisits int
}

// Mount is one rendered page and its live components. Splash and Contact
// are nil on pages that do not carry them.
type Mount struct {
	Route   string
	Reveal  *reveal.Tracker
	Splash  *splash.Sequencer
	Contact *contact.Simulator

	once sync.Once
}

// Close unmounts the page. It is safe to call more than once.
func (m *Mount) Close() {
	if m == nil {
		return
	}
	m.once.Do(func() {
		if m.Splash != nil {
			m.Splash.Close()
		}
		if m.Contact != nil {
			m.Contact.Close()
		}
		m.Reveal.Disconnect()
	})
}

// Visit is a single visitor's browsing session.
type Visit struct {
	ID   string
	Body *splash.Body

	clock clock.Clock
	opts  Options
	log   *zap.Logger

	mu        sync.Mutex
	mount     *Mount
	lastSeen  time.Time
	navigated []string
}

func newVisit(id string, c clock.Clock, opts Options, logger *zap.Logger) *Visit {
	return &Visit{
		ID:       id,
		Body:     splash.NewBody(),
		clock:    c,
		opts:     opts,
		log:      logger.With(zap.String("visit", id)),
		lastSeen: c.Now(),
	}
}

// Mount replaces the current page with route, observing sections for
// scroll reveals.
func (v *Visit) Mount(route string, sections ...string) (*Mount, error) {
	m := &Mount{Route: route, Reveal: reveal.NewTracker(v.opts.RevealThreshold)}
	m.Reveal.Observe(sections...)

	switch route {
	case SplashRoute:
		seq, err := splash.New(v.opts.Splash, v.clock, v.Body, v.navigate, v.log)
		if err != nil {
			return nil, fmt.Errorf("mount %s: %w", route, err)
		}
		m.Splash = seq
	case ContactRoute:
		m.Contact = contact.NewSimulator(v.clock, v.opts.Contact, v.log)
	}

	v.mu.Lock()
	prev := v.mount
	v.mount = m
	v.lastSeen = v.clock.Now()
	v.mu.Unlock()

	prev.Close()
	if m.Splash != nil {
		m.Splash.Mount()
	}
	return m, nil
}

// Current returns the mounted page, or nil before the first mount.
func (v *Visit) Current() *Mount {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mount
}

// Splash returns the mounted splash sequencer, if the splash is mounted.
func (v *Visit) Splash() (*splash.Sequencer, bool) {
	m := v.Current()
	if m == nil || m.Splash == nil {
		return nil, false
	}
	return m.Splash, true
}

// Contact returns the mounted contact form simulator, if any.
func (v *Visit) Contact() (*contact.Simulator, bool) {
	m := v.Current()
	if m == nil || m.Contact == nil {
		return nil, false
	}
	return m.Contact, true
}

// Navigations lists the routes the visit was sent to by its components.
func (v *Visit) Navigations() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.navigated...)
}

// LastSeen is when the visitor last touched the visit.
func (v *Visit) LastSeen() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

func (v *Visit) touch() {
	v.mu.Lock()
	v.lastSeen = v.clock.Now()
	v.mu.Unlock()
}

func (v *Visit) navigate(route string) {
	v.mu.Lock()
	v.navigated = append(v.navigated, route)
	v.mu.Unlock()
}

func (v *Visit) close() {
	v.mu.Lock()
	m := v.mount
	v.mount = nil
	v.mu.Unlock()
	m.Close()
}
