// Package contact simulates the contact form submission flow. Nothing is
// transmitted: a submission waits, reports success, then clears the form.
package contact

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/cosmic-portfolio/internal/clock"
)

// Status is the form's display state.
type Status int

const (
	Idle Status = iota
	Submitting
	Success
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Field names.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldCompany     = "company"
	FieldProjectType = "projectType"
	FieldBudget      = "budget"
	FieldTimeline    = "timeline"
	FieldMessage     = "message"
	FieldNewsletter  = "newsletter"
	FieldUrgency     = "urgency"
)

const (
	DefaultSubmitDelay = 2 * time.Second
	DefaultResetDelay  = 3 * time.Second
)

// Fields holds form values keyed by field name.
type Fields map[string]string

// EmptyFields returns the initial form values.
func EmptyFields() Fields {
	return Fields{
		FieldName:        "",
		FieldEmail:       "",
		FieldCompany:     "",
		FieldProjectType: "",
		FieldBudget:      "",
		FieldTimeline:    "",
		FieldMessage:     "",
		FieldNewsletter:  "",
		FieldUrgency:     "normal",
	}
}

// Options tunes the simulated latency.
type Options struct {
	SubmitDelay time.Duration
	ResetDelay  time.Duration
}

// Simulator is the state of one mounted contact form.
type Simulator struct {
	clock       clock.Clock
	log         *zap.Logger
	submitDelay time.Duration
	resetDelay  time.Duration

	mu     sync.Mutex
	fields Fields
	status Status
	timer  clock.Timer
	closed bool
}

// NewSimulator returns an idle, empty form.
func NewSimulator(c clock.Clock, opts Options, logger *zap.Logger) *Simulator {
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{
		clock:       clock.OrReal(c),
		log:         logger,
		submitDelay: opts.SubmitDelay,
		resetDelay:  opts.ResetDelay,
		fields:      EmptyFields(),
	}
}

// Set updates one field.
func (s *Simulator) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[name] = value
}

// SetAll updates every field present in f.
func (s *Simulator) SetAll(f Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.fields, f)
}

// Fields returns a copy of the current values.
func (s *Simulator) Fields() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.fields)
}

// Status returns the display state.
func (s *Simulator) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Submit starts a simulated submission. It reports false when a submission
// is already in flight or being acknowledged.
func (s *Simulator) Submit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.status != Idle {
		return false
	}
	s.status = Submitting
	s.timer = s.clock.AfterFunc(s.submitDelay, s.succeed)
	s.log.Info("contact form submitted",
		zap.String("projectType", s.fields[FieldProjectType]),
		zap.String("budget", s.fields[FieldBudget]))
	return true
}

// Dismiss leaves the success message early, clearing the form.
func (s *Simulator) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.status != Success {
		return
	}
	s.stopTimerLocked()
	s.resetLocked()
}

// Close cancels pending timers.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimerLocked()
}

func (s *Simulator) succeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.status != Submitting {
		return
	}
	s.status = Success
	s.timer = s.clock.AfterFunc(s.resetDelay, s.reset)
}

func (s *Simulator) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.status != Success {
		return
	}
	s.timer = nil
	s.resetLocked()
}

func (s *Simulator) resetLocked() {
	s.fields = EmptyFields()
	s.status = Idle
}

func (s *Simulator) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
