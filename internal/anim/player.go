package anim

import (
	"errors"
	"sync"
	"time"

	"github.com/Zachkp/cosmic-portfolio/internal/clock"
)

var (
	ErrAlreadyPlayed = errors.New("player already started")
	ErrStopped       = errors.New("player stopped")
)

// Handlers receive playback events. Both are optional.
type Handlers struct {
	OnStep     func(Entry)
	OnComplete func()
}

// Player runs a Schedule against a clock. Exactly one timer is pending at a
// time and the next one is armed only after the current callback returns,
// so step events are delivered in declared order even when starts tie.
type Player struct {
	clock    clock.Clock
	schedule Schedule
	handlers Handlers

	mu      sync.Mutex
	started time.Time
	playing bool
	stopped bool
	done    bool
	next    int
	timer   clock.Timer
}

// NewPlayer returns an idle player for s.
func NewPlayer(c clock.Clock, s Schedule, h Handlers) *Player {
	return &Player{clock: clock.OrReal(c), schedule: s, handlers: h}
}

// Play starts playback. A player plays once.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return ErrStopped
	}
	if p.playing || p.done {
		return ErrAlreadyPlayed
	}
	p.playing = true
	p.started = p.clock.Now()
	p.armLocked()
	return nil
}

// Stop cancels any pending event. Stop is safe to call more than once.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	p.playing = false
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// Elapsed is the time since Play, capped at the schedule total.
func (p *Player) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started.IsZero() {
		return 0
	}
	if p.done {
		return p.schedule.Total
	}
	elapsed := p.clock.Now().Sub(p.started)
	if elapsed > p.schedule.Total {
		elapsed = p.schedule.Total
	}
	return elapsed
}

// Done reports whether the schedule played to completion.
func (p *Player) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Schedule returns the schedule being played.
func (p *Player) Schedule() Schedule {
	return p.schedule
}

// armLocked schedules the next pending event: the next step start, or the
// completion once every step has started.
func (p *Player) armLocked() {
	at := p.schedule.Total
	if p.next < len(p.schedule.Entries) {
		at = p.schedule.Entries[p.next].Start
	}
	wait := at - p.clock.Now().Sub(p.started)
	if wait < 0 {
		wait = 0
	}
	p.timer = p.clock.AfterFunc(wait, p.fire)
}

func (p *Player) fire() {
	p.mu.Lock()
	if !p.playing {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	if p.next >= len(p.schedule.Entries) {
		p.playing = false
		p.done = true
		p.mu.Unlock()
		if p.handlers.OnComplete != nil {
			p.handlers.OnComplete()
		}
		return
	}
	entry := p.schedule.Entries[p.next]
	p.next++
	p.mu.Unlock()

	if p.handlers.OnStep != nil {
		p.handlers.OnStep(entry)
	}

	p.mu.Lock()
	if p.playing {
		p.armLocked()
	}
	p.mu.Unlock()
}
