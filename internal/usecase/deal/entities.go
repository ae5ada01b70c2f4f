package deal

import (
	"time"

	analysisdomain "dealflow-backend/internal/domain/analysis"
	dealdomain "dealflow-backend/internal/domain/deal"
)

// AnalysisInput is the already-fetched material one analysis run consumes.
// Comparables, market data and rehab estimates come from collaborators; the
// core never retrieves them itself.
type AnalysisInput struct {
	Comparables       []analysisdomain.ComparableSale `json:"comparables"`
	Market            analysisdomain.MarketSnapshot   `json:"market"`
	Rehab             analysisdomain.RehabBudget      `json:"rehab"`
	UseMarketFallback bool                            `json:"use_market_fallback,omitempty"`
}

type CreateDealInput struct {
	Facts       analysisdomain.PropertyFacts `json:"facts"`
	Analysis    *AnalysisInput               `json:"analysis,omitempty"`
	OfferAmount *float64                     `json:"offer_amount,omitempty"`
	AssignedTo  string                       `json:"assigned_to,omitempty"`
	ActorID     string                       `json:"actor_id"`
}

type ReanalyzeInput struct {
	OfferAmount       *float64                        `json:"offer_amount,omitempty"`
	Comparables       []analysisdomain.ComparableSale `json:"comparables"`
	Market            analysisdomain.MarketSnapshot   `json:"market"`
	Rehab             analysisdomain.RehabBudget      `json:"rehab"`
	UseMarketFallback bool                            `json:"use_market_fallback,omitempty"`
	ActorID           string                          `json:"actor_id"`
}

type ListInput struct {
	Status     string
	AssignedTo string
	Page       int
	Limit      int
}

type ActivityDTO struct {
	Action         string    `json:"action"`
	Description    string    `json:"description"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status,omitempty"`
	Note           string    `json:"note,omitempty"`
	ActorID        string    `json:"actor_id"`
	Timestamp      time.Time `json:"timestamp"`
}

type DealDTO struct {
	DealID        string                             `json:"deal_id"`
	Address       string                             `json:"address"`
	City          string                             `json:"city,omitempty"`
	State         string                             `json:"state,omitempty"`
	ZipCode       string                             `json:"zip_code,omitempty"`
	Status        string                             `json:"status"`
	OfferAmount   *float64                           `json:"offer_amount,omitempty"`
	ARV           float64                            `json:"arv,omitempty"`
	MAO           float64                            `json:"mao,omitempty"`
	Snapshot      *analysisdomain.AnalysisSnapshot   `json:"snapshot,omitempty"`
	AssignedTo    string                             `json:"assigned_to,omitempty"`
	CreatedBy     string                             `json:"created_by"`
	ActivityLog   []ActivityDTO                      `json:"activity_log,omitempty"`
	CreatedAt     time.Time                          `json:"created_at"`
	UpdatedAt     time.Time                          `json:"updated_at"`
}

type ListOutput struct {
	Deals      []DealDTO `json:"deals"`
	Total      int64     `json:"total"`
	Page       int       `json:"current_page"`
	TotalPages int       `json:"total_pages"`
}

func toActivityDTO(e dealdomain.ActivityEntry) ActivityDTO {
	return ActivityDTO{
		Action:         e.Action,
		Description:    e.Description,
		PreviousStatus: string(e.PreviousStatus),
		NewStatus:      string(e.NewStatus),
		Note:           e.Note,
		ActorID:        e.ActorID,
		Timestamp:      e.CreatedAt,
	}
}

func toDTO(d *dealdomain.Deal) *DealDTO {
	dto := &DealDTO{
		DealID:      d.DealID,
		Address:     d.Address,
		City:        d.City,
		State:       d.State,
		ZipCode:     d.ZipCode,
		Status:      string(d.Status),
		OfferAmount: d.OfferAmount,
		ARV:         d.ARV,
		MAO:         d.MAO,
		Snapshot:    d.Snapshot,
		AssignedTo:  d.AssignedTo,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	for _, e := range d.Activity {
		dto.ActivityLog = append(dto.ActivityLog, toActivityDTO(e))
	}
	return dto
}
