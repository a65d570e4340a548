// Package audit delivers admin action events to external sinks. Sinks run
// after the local transition has been committed, so a sink failure never
// undoes or blocks an action.
package audit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event describes one applied admin action.
type Event struct {
	ID        string            `json:"id"`
	Entity    string            `json:"entity"`
	EntityID  string            `json:"entity_id"`
	Action    string            `json:"action"`
	Params    map[string]string `json:"params,omitempty"`
	Operator  string            `json:"operator"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewEvent stamps a fresh id on the event. Params are copied.
func NewEvent(entity, entityID, action, operator string, params map[string]string, at time.Time) Event {
	var copied map[string]string
	if len(params) > 0 {
		copied = make(map[string]string, len(params))
		for k, v := range params {
			copied[k] = v
		}
	}
	return Event{
		ID:        uuid.NewString(),
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Params:    copied,
		Operator:  operator,
		Timestamp: at,
	}
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, event Event) error

func (f Func) Notify(ctx context.Context, event Event) error {
	return f(ctx, event)
}

type noop struct{}

func (noop) Notify(context.Context, Event) error { return nil }

// Noop discards every event.
var Noop Notifier = noop{}

type multi []Notifier

// Multi fans an event out to every sink. All sinks are called even when one
// fails; the failures are joined.
func Multi(sinks ...Notifier) Notifier {
	var flat multi
	for _, s := range sinks {
		switch s := s.(type) {
		case nil, noop:
		case multi:
			flat = append(flat, s...)
		default:
			flat = append(flat, s)
		}
	}
	switch len(flat) {
	case 0:
		return Noop
	case 1:
		return flat[0]
	}
	return flat
}

func (m multi) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps the most recent events in memory.
type Recorder struct {
	mu     sync.Mutex
	limit  int
	events []Event
}

func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 50
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) Notify(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if len(r.events) > r.limit {
		r.events = append([]Event(nil), r.events[len(r.events)-r.limit:]...)
	}
	return nil
}

// Events returns recorded events, oldest first.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Last returns the newest event.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}
