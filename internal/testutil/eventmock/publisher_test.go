package eventmock

import (
	"context"
	"errors"
	"testing"

	"dealflow-backend/internal/domain/event"
)

func TestPublisher_RecordsInOrder(t *testing.T) {
	p := New()
	ctx := context.Background()

	for _, ty := range []event.Type{event.TypeAnalysisCompleted, event.TypeDealStatusChanged} {
		if err := p.Publish(ctx, event.Event{Type: ty, DealID: "BLVCK-1-1"}); err != nil {
			t.Fatalf("Publish %s: %v", ty, err)
		}
	}

	evs := p.Events()
	if len(evs) != 2 {
		t.Fatalf("want 2 events, got %d", len(evs))
	}
	if evs[0].Type != event.TypeAnalysisCompleted || evs[1].Type != event.TypeDealStatusChanged {
		t.Fatalf("order wrong: %+v", evs)
	}

	last, ok := p.Last()
	if !ok || last.Type != event.TypeDealStatusChanged {
		t.Fatalf("Last = %+v ok=%v", last, ok)
	}
}

func TestPublisher_Empty(t *testing.T) {
	p := New()
	if _, ok := p.Last(); ok {
		t.Fatalf("Last on empty publisher should report false")
	}
	if n := len(p.Events()); n != 0 {
		t.Fatalf("Events on empty publisher: %d", n)
	}
}

func TestPublisher_ErrShortCircuits(t *testing.T) {
	p := New()
	p.Err = errors.New("broker down")

	if err := p.Publish(context.Background(), event.Event{Type: event.TypeOfferSubmitted}); err == nil {
		t.Fatalf("expected configured error")
	}
	if n := len(p.Events()); n != 0 {
		t.Fatalf("failed publish must not record, got %d", n)
	}
}
