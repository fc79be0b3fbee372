// Package anim describes scripted animation sequences as ordered lists of
// timed steps and plays them on a clock.
package anim

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyTimeline    = errors.New("timeline has no steps")
	ErrNegativeDuration = errors.New("step duration is negative")
	ErrNegativeStart    = errors.New("step starts before the timeline")
	ErrDuplicateStep    = errors.New("duplicate step name")
	ErrOutOfOrder       = errors.New("step starts before its predecessor")
)

// Anchor selects the reference point a step's offset is measured from.
type Anchor int

const (
	// End anchors to the end of everything scheduled so far.
	End Anchor = iota
	// WithPrevious anchors to the start of the previous step.
	WithPrevious
	// AfterPrevious anchors to the end of the previous step.
	AfterPrevious
)

func (a Anchor) String() string {
	switch a {
	case End:
		return "end"
	case WithPrevious:
		return "with-previous"
	case AfterPrevious:
		return "after-previous"
	default:
		return fmt.Sprintf("anchor(%d)", int(a))
	}
}

// Position places a step relative to an anchor. Offset may be negative to
// overlap the tail of what came before.
type Position struct {
	Anchor Anchor
	Offset time.Duration
}

// At is shorthand for a position anchored to the timeline end.
func At(offset time.Duration) Position {
	return Position{Anchor: End, Offset: offset}
}

// With is shorthand for a position anchored to the previous step start.
func With(offset time.Duration) Position {
	return Position{Anchor: WithPrevious, Offset: offset}
}

// Step is one declared visual action.
type Step struct {
	Name     string             `json:"name"`
	Target   string             `json:"target"`
	Duration time.Duration      `json:"duration"`
	Position Position           `json:"-"`
	Ease     string             `json:"ease,omitempty"`
	Props    map[string]float64 `json:"props,omitempty"`
}

// Entry is a step resolved to absolute times from the timeline start.
type Entry struct {
	Step
	Index int           `json:"index"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
}

// Schedule is a compiled timeline.
type Schedule struct {
	Entries []Entry       `json:"entries"`
	Total   time.Duration `json:"total"`
}

// Compile resolves every step's position into absolute start and end
// times. Steps keep their declared order and may overlap visually, but a
// step may never start before the step declared ahead of it.
func Compile(steps []Step) (Schedule, error) {
	if len(steps) == 0 {
		return Schedule{}, ErrEmptyTimeline
	}
	seen := make(map[string]struct{}, len(steps))
	entries := make([]Entry, 0, len(steps))
	var end time.Duration
	for i, step := range steps {
		name := strings.TrimSpace(step.Name)
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		if _, ok := seen[name]; ok {
			return Schedule{}, fmt.Errorf("%w: %q", ErrDuplicateStep, name)
		}
		seen[name] = struct{}{}
		if step.Duration < 0 {
			return Schedule{}, fmt.Errorf("%w: %q", ErrNegativeDuration, name)
		}

		var base time.Duration
		switch step.Position.Anchor {
		case End:
			base = end
		case WithPrevious:
			if i > 0 {
				base = entries[i-1].Start
			}
		case AfterPrevious:
			if i > 0 {
				base = entries[i-1].End
			}
		default:
			return Schedule{}, fmt.Errorf("step %q: unknown anchor %v", name, step.Position.Anchor)
		}

		start := base + step.Position.Offset
		if start < 0 {
			return Schedule{}, fmt.Errorf("%w: %q at %v", ErrNegativeStart, name, start)
		}
		if i > 0 && start < entries[i-1].Start {
			return Schedule{}, fmt.Errorf("%w: %q at %v, previous at %v", ErrOutOfOrder, name, start, entries[i-1].Start)
		}

		step.Name = name
		entry := Entry{Step: step, Index: i, Start: start, End: start + step.Duration}
		entries = append(entries, entry)
		if entry.End > end {
			end = entry.End
		}
	}
	return Schedule{Entries: entries, Total: end}, nil
}

// ActiveAt returns the entries whose interval contains t.
func (s Schedule) ActiveAt(t time.Duration) []Entry {
	var active []Entry
	for _, e := range s.Entries {
		if t >= e.Start && t < e.End {
			active = append(active, e)
		}
	}
	return active
}
