package deal

import (
	"errors"
	"time"

	"dealflow-backend/internal/domain/analysis"
)

var (
	ErrNotFound          = errors.New("deal not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDealExists        = errors.New("deal already exists for this address")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown deal status")
)

// Status is a deal's position in the acquisition pipeline.
type Status string

const (
	StatusNewDeal              Status = "new_deal"
	StatusOfferSent            Status = "offer_sent"
	StatusOfferAccepted        Status = "offer_accepted"
	StatusWalkthroughScheduled Status = "walkthrough_scheduled"
	StatusWalkthroughCompleted Status = "walkthrough_completed"
	StatusUnderContract        Status = "under_contract"
	StatusDisposition          Status = "disposition"
	StatusEndDepositCollected  Status = "end_deposit_collected"
	StatusClearToClose         Status = "clear_to_close"
	StatusSold                 Status = "sold"
	// StatusPassed is the side terminal: reachable from any non-terminal
	// state when the deal is dropped.
	StatusPassed Status = "passed"
)

// pipelineOrder is the happy-path sequence; passed sits outside it.
var pipelineOrder = []Status{
	StatusNewDeal,
	StatusOfferSent,
	StatusOfferAccepted,
	StatusWalkthroughScheduled,
	StatusWalkthroughCompleted,
	StatusUnderContract,
	StatusDisposition,
	StatusEndDepositCollected,
	StatusClearToClose,
	StatusSold,
}

// ParseStatus maps a wire string to a Status; unknown values get
// ErrUnknownStatus.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if st == StatusPassed {
		return st, nil
	}
	for _, known := range pipelineOrder {
		if st == known {
			return st, nil
		}
	}
	return "", ErrUnknownStatus
}

// IsTerminal reports whether a status has no outgoing transitions.
func (s Status) IsTerminal() bool { return s == StatusSold || s == StatusPassed }

func (s Status) String() string { return string(s) }

// pipelineIndex returns a status's position on the happy path, or -1 for
// passed.
func pipelineIndex(s Status) int {
	for i, st := range pipelineOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Deal is the persisted pipeline record. It exclusively owns its activity
// log and its current analysis snapshot; nothing else mutates them.
type Deal struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	DealID string `gorm:"size:64;uniqueIndex:ux_deals_deal_id" json:"deal_id"`

	Address string `gorm:"size:255;index:idx_deals_address" json:"address"`
	City    string `gorm:"size:128" json:"city,omitempty"`
	State   string `gorm:"size:64" json:"state,omitempty"`
	ZipCode string `gorm:"size:16" json:"zip_code,omitempty"`

	PropertyType  string  `gorm:"size:32" json:"property_type,omitempty"`
	Bedrooms      int     `json:"bedrooms,omitempty"`
	Bathrooms     float64 `json:"bathrooms,omitempty"`
	SquareFootage float64 `json:"square_footage,omitempty"`
	LotSize       float64 `json:"lot_size,omitempty"`
	YearBuilt     int     `json:"year_built,omitempty"`
	Condition     string  `gorm:"size:16" json:"condition,omitempty"`

	Status          Status    `gorm:"size:32;index:idx_deals_status;default:'new_deal'" json:"status"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`

	OfferAmount *float64 `gorm:"type:decimal(14,2)" json:"offer_amount,omitempty"`

	// Denormalized headline numbers for list views and the status board;
	// the snapshot remains the source of truth.
	ARV float64 `gorm:"type:decimal(14,2)" json:"arv,omitempty"`
	MAO float64 `gorm:"type:decimal(14,2)" json:"mao,omitempty"`

	// Current analysis snapshot; nil until the first analysis completes.
	// Replaced wholesale on re-analysis.
	Snapshot *analysis.AnalysisSnapshot `gorm:"serializer:json;type:json" json:"snapshot,omitempty"`

	CreatedBy  string `gorm:"size:64" json:"created_by"`
	AssignedTo string `gorm:"size:64;index:idx_deals_assigned" json:"assigned_to,omitempty"`

	Activity []ActivityEntry `gorm:"foreignKey:DealRef;references:ID" json:"activity_log,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Deal) TableName() string { return "deals" }

// ActivityEntry is one append-only audit record on a deal. Entries are never
// updated or removed except by the administrative deal delete.
type ActivityEntry struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	DealRef uint64 `gorm:"column:deal_ref;index:idx_activity_deal" json:"-"`

	Action      string `gorm:"size:32" json:"action"`
	Description string `gorm:"type:text" json:"description"`

	PreviousStatus Status `gorm:"size:32" json:"previous_status,omitempty"`
	NewStatus      Status `gorm:"size:32" json:"new_status,omitempty"`
	Note           string `gorm:"type:text" json:"note,omitempty"`

	ActorID   string    `gorm:"size:64" json:"actor_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (ActivityEntry) TableName() string { return "deal_activity" }

// Activity actions.
const (
	ActionDealCreated  = "deal_created"
	ActionStatusUpdate = "status_update"
	ActionOfferMade    = "offer_made"
	ActionReanalysis   = "reanalysis"
	ActionNote         = "note"
)
