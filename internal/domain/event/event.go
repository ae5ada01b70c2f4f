package event

import (
	"context"
	"time"
)

type Type string

const (
	TypeAnalysisCompleted Type = "analysis_completed"
	TypeDealStatusChanged Type = "deal_status_changed"
	TypeOfferSubmitted    Type = "offer_submitted"
)

// Event is the notification emitted after a deal mutation commits. It
// carries identifiers only, never full internal state; subscribers fetch
// current state themselves when they need it.
type Event struct {
	ID             string    `json:"id"`
	Type           Type      `json:"type"`
	DealID         string    `json:"deal_id"`
	ActorID        string    `json:"actor_id,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status,omitempty"`
	OfferAmount    *float64  `json:"offer_amount,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// NopPublisher drops events; used when no broker is wired.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
