// Package reveal tracks the one-shot scroll reveal of page sections.
//
// Each section moves through Unobserved -> Pending -> Revealed. Once
// revealed a section stays revealed for the life of the tracker; scrolling
// it out of view and back does not replay the transition.
package reveal

import (
	"fmt"
	"sync"
)

// State is a section's reveal state.
type State int

const (
	Unobserved State = iota
	Pending
	Revealed
)

func (s State) String() string {
	switch s {
	case Unobserved:
		return "unobserved"
	case Pending:
		return "pending"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DefaultThreshold is the visible fraction that counts as entering view.
const DefaultThreshold = 0.1

// HiddenOffset is the vertical offset, in pixels, of a section before it is
// revealed.
const HiddenOffset = 30

// Style is the visual state applied to a section.
type Style struct {
	Opacity    float64 `json:"opacity"`
	TranslateY float64 `json:"translateY"`
}

// CSS renders the style as inline declarations.
func (s Style) CSS() string {
	return fmt.Sprintf("opacity: %g; transform: translateY(%gpx);", s.Opacity, s.TranslateY)
}

var (
	hidden   = Style{Opacity: 0, TranslateY: HiddenOffset}
	revealed = Style{Opacity: 1, TranslateY: 0}
)

// Entry is one intersection observation.
type Entry struct {
	ID    string
	Ratio float64
}

// Tracker observes sections of one mounted page.
type Tracker struct {
	threshold float64

	mu           sync.Mutex
	states       map[string]State
	order        []string
	disconnected bool
}

// NewTracker returns a tracker; a threshold <= 0 uses DefaultThreshold.
func NewTracker(threshold float64) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold, states: make(map[string]State)}
}

// Observe registers sections. Registering a section twice is a no-op.
func (t *Tracker) Observe(ids ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.disconnected {
		return
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := t.states[id]; ok {
			continue
		}
		t.states[id] = Pending
		t.order = append(t.order, id)
	}
}

// Intersect applies observations and returns the ids this call revealed.
func (t *Tracker) Intersect(entries ...Entry) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.disconnected {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.Ratio <= 0 || e.Ratio < t.threshold {
			continue
		}
		if t.states[e.ID] != Pending {
			continue
		}
		t.states[e.ID] = Revealed
		out = append(out, e.ID)
	}
	return out
}

// State returns a section's state; unknown sections are Unobserved.
func (t *Tracker) State(id string) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[id]
}

// Style returns the style to render for a section. Sections the tracker
// does not know about render in their final state.
func (t *Tracker) Style(id string) Style {
	switch t.State(id) {
	case Pending:
		return hidden
	default:
		return revealed
	}
}

// Sections lists observed sections in registration order.
func (t *Tracker) Sections() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// Disconnect stops observing. Revealed sections stay revealed; later
// observations are ignored.
func (t *Tracker) Disconnect() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.disconnected = true
}
