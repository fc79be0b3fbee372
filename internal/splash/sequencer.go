// Package splash runs the splash screen entry sequence and hands the
// visitor off to the home page once it has played.
package splash

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/cosmic-portfolio/internal/anim"
	"github.com/Zachkp/cosmic-portfolio/internal/clock"
)

// Phase is a stage of the entry sequence.
type Phase int

const (
	Idle Phase = iota
	Sequencing
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Sequencing:
		return "sequencing"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// HomeRoute is where the splash hands off to by default.
const HomeRoute = "/home"

// Navigator performs the route change at the end of the sequence.
type Navigator func(route string)

// Config tunes a sequencer. Zero values take the defaults.
type Config struct {
	Timeline     []anim.Step
	HandOffDelay time.Duration
	HomeRoute    string
}

// Snapshot is a point-in-time view of a sequencer.
type Snapshot struct {
	Phase    Phase         `json:"-"`
	State    string        `json:"phase"`
	Elapsed  time.Duration `json:"elapsed"`
	Started  []string      `json:"started"`
	Route    string        `json:"route,omitempty"`
	Schedule anim.Schedule `json:"schedule"`
}

// Sequencer is a one-shot splash sequence bound to a single mount.
type Sequencer struct {
	clock    clock.Clock
	doc      Document
	navigate Navigator
	log      *zap.Logger
	handOff  time.Duration
	home     string
	player   *anim.Player

	mu        sync.Mutex
	phase     Phase
	takeover  *Takeover
	started   []string
	navTimer  clock.Timer
	navigated string
	closed    bool
}

// New compiles the timeline and returns an idle sequencer.
func New(cfg Config, c clock.Clock, doc Document, navigate Navigator, logger *zap.Logger) (*Sequencer, error) {
	if doc == nil {
		return nil, fmt.Errorf("splash: document is required")
	}
	if navigate == nil {
		return nil, fmt.Errorf("splash: navigator is required")
	}
	steps := cfg.Timeline
	if len(steps) == 0 {
		steps = DefaultTimeline()
	}
	schedule, err := anim.Compile(steps)
	if err != nil {
		return nil, fmt.Errorf("compile splash timeline: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Sequencer{
		clock:    clock.OrReal(c),
		doc:      doc,
		navigate: navigate,
		log:      logger,
		handOff:  cfg.HandOffDelay,
		home:     cfg.HomeRoute,
	}
	if s.handOff < 0 {
		s.handOff = 0
	}
	if s.home == "" {
		s.home = HomeRoute
	}
	s.player = anim.NewPlayer(s.clock, schedule, anim.Handlers{
		OnStep:     s.onStep,
		OnComplete: s.onComplete,
	})
	return s, nil
}

// Mount takes over the document for the full-screen splash.
func (s *Sequencer) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.takeover != nil {
		return
	}
	s.takeover = Acquire(s.doc)
}

// Enter starts the sequence. Only the first call on an idle sequencer has
// any effect; it reports whether this call started the sequence.
func (s *Sequencer) Enter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.phase != Idle {
		return false
	}
	if err := s.player.Play(); err != nil {
		s.log.Warn("splash player refused to start", zap.Error(err))
		return false
	}
	s.phase = Sequencing
	s.log.Debug("splash sequence started", zap.Duration("total", s.player.Schedule().Total))
	return true
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Snapshot reports the sequence state for rendering.
func (s *Sequencer) Snapshot() Snapshot {
	elapsed := s.player.Elapsed()
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Phase:    s.phase,
		State:    s.phase.String(),
		Elapsed:  elapsed,
		Started:  append([]string(nil), s.started...),
		Route:    s.navigated,
		Schedule: s.player.Schedule(),
	}
}

// Close tears the sequencer down: pending animation and hand-off timers
// are cancelled and the document is restored, whatever the phase.
func (s *Sequencer) Close() {
	s.player.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.navTimer != nil {
		s.navTimer.Stop()
		s.navTimer = nil
	}
	s.takeover.Release()
}

func (s *Sequencer) onStep(e anim.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.started = append(s.started, e.Name)
	s.log.Debug("splash step", zap.String("step", e.Name), zap.Duration("at", e.Start))
}

func (s *Sequencer) onComplete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.phase != Sequencing {
		return
	}
	s.phase = Completed
	s.navTimer = s.clock.AfterFunc(s.handOff, s.handOffNow)
}

func (s *Sequencer) handOffNow() {
	s.mu.Lock()
	if s.closed || s.navigated != "" {
		s.mu.Unlock()
		return
	}
	s.navTimer = nil
	s.navigated = s.home
	s.takeover.Release()
	route := s.home
	s.mu.Unlock()

	s.log.Info("splash handed off", zap.String("route", route))
	s.navigate(route)
}
