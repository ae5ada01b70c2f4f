package eventmock

import (
	"context"
	"sync"

	"dealflow-backend/internal/domain/event"
)

var _ event.Publisher = (*Publisher)(nil)

// Publisher records every published event; safe for concurrent use.
type Publisher struct {
	mu     sync.Mutex
	Err    error // returned from Publish when set
	events []event.Event
}

func New() *Publisher { return &Publisher{} }

func (p *Publisher) Publish(_ context.Context, ev event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, ev)
	return nil
}

func (p *Publisher) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Event, len(p.events))
	copy(out, p.events)
	return out
}

func (p *Publisher) Last() (event.Event, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return event.Event{}, false
	}
	return p.events[len(p.events)-1], true
}
