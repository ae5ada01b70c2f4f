package deal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	analysisdomain "dealflow-backend/internal/domain/analysis"
	dealdomain "dealflow-backend/internal/domain/deal"
	"dealflow-backend/internal/domain/event"
	"dealflow-backend/internal/domain/uow"
	analysisuc "dealflow-backend/internal/usecase/analysis"
	"dealflow-backend/pkg/id"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Usecase struct {
	repo   dealdomain.Repository
	uow    uow.UnitOfWork
	engine *analysisuc.Engine
	events event.Publisher
	rules  dealdomain.Rules
	prefix string
}

// NewUsecase wires the pipeline operations. events may be a NopPublisher;
// prefix is the deal-id prefix.
func NewUsecase(r dealdomain.Repository, tx uow.UnitOfWork, engine *analysisuc.Engine, pub event.Publisher, rules dealdomain.Rules, prefix string) *Usecase {
	return &Usecase{repo: r, uow: tx, engine: engine, events: pub, rules: rules, prefix: prefix}
}

// Create registers a deal on first property inquiry. When analysis inputs are
// supplied the engine runs immediately and the snapshot is attached; one deal
// per address is allowed.
func (u *Usecase) Create(ctx context.Context, in CreateDealInput) (*DealDTO, error) {
	if in.Facts.Address == "" {
		return nil, fmt.Errorf("%w: address is required", dealdomain.ErrInvalidInput)
	}

	// Block duplicate deals for the same address.
	existing, err := u.repo.GetByAddress(ctx, in.Facts.Address)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", dealdomain.ErrDealExists, existing.DealID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	d := &dealdomain.Deal{
		DealID:          id.NewDealID(u.prefix),
		Address:         in.Facts.Address,
		City:            in.Facts.City,
		State:           in.Facts.State,
		ZipCode:         in.Facts.ZipCode,
		PropertyType:    string(in.Facts.PropertyType),
		Bedrooms:        in.Facts.Bedrooms,
		Bathrooms:       in.Facts.Bathrooms,
		SquareFootage:   in.Facts.SquareFootage,
		LotSize:         in.Facts.LotSize,
		YearBuilt:       in.Facts.YearBuilt,
		Condition:       string(in.Facts.Condition),
		Status:          dealdomain.StatusNewDeal,
		StatusUpdatedAt: time.Now().UTC(),
		OfferAmount:     in.OfferAmount,
		CreatedBy:       in.ActorID,
		AssignedTo:      in.AssignedTo,
	}

	if in.Analysis != nil {
		snap, err := u.engine.Run(analysisuc.Input{
			Facts:             in.Facts,
			Comparables:       in.Analysis.Comparables,
			Market:            in.Analysis.Market,
			Rehab:             in.Analysis.Rehab,
			OfferAmount:       in.OfferAmount,
			UseMarketFallback: in.Analysis.UseMarketFallback,
		})
		if err != nil {
			return nil, err
		}
		d.Snapshot = snap
		d.ARV = snap.Valuation.ARV
		d.MAO = snap.Valuation.MAO
	}

	d.Activity = []dealdomain.ActivityEntry{{
		Action:      dealdomain.ActionDealCreated,
		Description: "Deal created for " + d.Address,
		NewStatus:   dealdomain.StatusNewDeal,
		ActorID:     in.ActorID,
	}}

	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	if d.Snapshot != nil {
		u.publish(ctx, event.Event{
			Type:    event.TypeAnalysisCompleted,
			DealID:  d.DealID,
			ActorID: in.ActorID,
		})
	}
	return toDTO(d), nil
}

func (u *Usecase) Get(ctx context.Context, dealID string) (*DealDTO, error) {
	d, err := u.repo.GetByDealID(ctx, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dealdomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(d), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	f := dealdomain.Filter{AssignedTo: in.AssignedTo, Page: in.Page, Limit: in.Limit}
	if in.Status != "" {
		st, err := dealdomain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = st
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	deals, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &ListOutput{
		Total:      total,
		Page:       f.Page,
		TotalPages: int((total + int64(f.Limit) - 1) / int64(f.Limit)),
	}
	for i := range deals {
		out.Deals = append(out.Deals, *toDTO(&deals[i]))
	}
	return out, nil
}

// Transition moves a deal to a new pipeline status. The status write and the
// single activity append commit together; on failure the deal is untouched.
func (u *Usecase) Transition(ctx context.Context, dealID, newStatus, note, actorID string) (*DealDTO, error) {
	target := dealdomain.Status(newStatus)

	var dto *DealDTO
	var prev dealdomain.Status
	err := u.uow.WithinDealTx(ctx, dealID, func(r uow.Repos, d *dealdomain.Deal) error {
		if err := u.rules.Check(d.Status, target); err != nil {
			return err
		}
		prev = d.Status
		d.Status = target
		d.StatusUpdatedAt = time.Now().UTC()
		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}

		desc := fmt.Sprintf("Status changed from %s to %s", prev, target)
		if note != "" {
			desc += ": " + note
		}
		if err := r.Deals.AppendActivity(ctx, &dealdomain.ActivityEntry{
			DealRef:        d.ID,
			Action:         dealdomain.ActionStatusUpdate,
			Description:    desc,
			PreviousStatus: prev,
			NewStatus:      target,
			Note:           note,
			ActorID:        actorID,
		}); err != nil {
			return err
		}
		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, event.Event{
		Type:           event.TypeDealStatusChanged,
		DealID:         dealID,
		ActorID:        actorID,
		PreviousStatus: string(prev),
		NewStatus:      string(target),
	})
	return dto, nil
}

// SubmitOffer records the offer amount and moves the deal to offer_sent as
// one atomic unit: both change or neither does.
func (u *Usecase) SubmitOffer(ctx context.Context, dealID string, amount float64, actorID string) (*DealDTO, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: offer amount must be positive", dealdomain.ErrInvalidInput)
	}

	var dto *DealDTO
	var prev dealdomain.Status
	err := u.uow.WithinDealTx(ctx, dealID, func(r uow.Repos, d *dealdomain.Deal) error {
		if err := u.rules.Check(d.Status, dealdomain.StatusOfferSent); err != nil {
			return err
		}
		prev = d.Status
		d.OfferAmount = &amount
		d.Status = dealdomain.StatusOfferSent
		d.StatusUpdatedAt = time.Now().UTC()
		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}

		if err := r.Deals.AppendActivity(ctx, &dealdomain.ActivityEntry{
			DealRef:        d.ID,
			Action:         dealdomain.ActionOfferMade,
			Description:    fmt.Sprintf("Offer submitted: $%.2f", amount),
			PreviousStatus: prev,
			NewStatus:      dealdomain.StatusOfferSent,
			ActorID:        actorID,
		}); err != nil {
			return err
		}
		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, event.Event{
		Type:           event.TypeOfferSubmitted,
		DealID:         dealID,
		ActorID:        actorID,
		PreviousStatus: string(prev),
		NewStatus:      string(dealdomain.StatusOfferSent),
		OfferAmount:    &amount,
	})
	return dto, nil
}

// Reanalyze reruns the engine against the deal's stored facts and fresh
// collaborator inputs, replacing the snapshot wholesale. Status never
// changes here.
func (u *Usecase) Reanalyze(ctx context.Context, dealID string, in ReanalyzeInput) (*DealDTO, error) {
	var dto *DealDTO
	err := u.uow.WithinDealTx(ctx, dealID, func(r uow.Repos, d *dealdomain.Deal) error {
		offer := d.OfferAmount
		if in.OfferAmount != nil {
			offer = in.OfferAmount
		}

		snap, err := u.engine.Run(analysisuc.Input{
			Facts:             factsFromDeal(d),
			Comparables:       in.Comparables,
			Market:            in.Market,
			Rehab:             in.Rehab,
			OfferAmount:       offer,
			UseMarketFallback: in.UseMarketFallback,
		})
		if err != nil {
			return err
		}

		d.Snapshot = snap
		d.ARV = snap.Valuation.ARV
		d.MAO = snap.Valuation.MAO
		d.OfferAmount = offer
		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}

		if err := r.Deals.AppendActivity(ctx, &dealdomain.ActivityEntry{
			DealRef:     d.ID,
			Action:      dealdomain.ActionReanalysis,
			Description: fmt.Sprintf("Analysis refreshed: ARV $%.0f, MAO $%.0f", d.ARV, d.MAO),
			ActorID:     in.ActorID,
		}); err != nil {
			return err
		}
		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, event.Event{
		Type:    event.TypeAnalysisCompleted,
		DealID:  dealID,
		ActorID: in.ActorID,
	})
	return dto, nil
}

// AddActivity appends a free-form audit entry (operator notes, bot commands).
func (u *Usecase) AddActivity(ctx context.Context, dealID, action, description, actorID string) (*DealDTO, error) {
	if action == "" {
		action = dealdomain.ActionNote
	}
	var dto *DealDTO
	err := u.uow.WithinDealTx(ctx, dealID, func(r uow.Repos, d *dealdomain.Deal) error {
		if err := r.Deals.AppendActivity(ctx, &dealdomain.ActivityEntry{
			DealRef:     d.ID,
			Action:      action,
			Description: description,
			ActorID:     actorID,
		}); err != nil {
			return err
		}
		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete is the administrative hard delete: terminal and unrecoverable.
func (u *Usecase) Delete(ctx context.Context, dealID, actorID string) error {
	return u.uow.WithinDealTx(ctx, dealID, func(r uow.Repos, d *dealdomain.Deal) error {
		log.Printf("deal %s deleted by %s", d.DealID, actorID)
		return r.Deals.Delete(ctx, d)
	})
}

// StatusBreakdown returns deal counts per pipeline status.
func (u *Usecase) StatusBreakdown(ctx context.Context) (map[string]int64, error) {
	counts, err := u.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(counts))
	for st, n := range counts {
		out[string(st)] = n
	}
	return out, nil
}

// publish emits best-effort: a broker hiccup must not fail a committed
// mutation.
func (u *Usecase) publish(ctx context.Context, ev event.Event) {
	ev.ID = uuid.NewString()
	ev.OccurredAt = time.Now().UTC()
	if err := u.events.Publish(ctx, ev); err != nil {
		log.Printf("publish %s for %s: %v", ev.Type, ev.DealID, err)
	}
}

func factsFromDeal(d *dealdomain.Deal) analysisdomain.PropertyFacts {
	return analysisdomain.PropertyFacts{
		Address:       d.Address,
		City:          d.City,
		State:         d.State,
		ZipCode:       d.ZipCode,
		PropertyType:  analysisdomain.PropertyType(d.PropertyType),
		Bedrooms:      d.Bedrooms,
		Bathrooms:     d.Bathrooms,
		SquareFootage: d.SquareFootage,
		LotSize:       d.LotSize,
		YearBuilt:     d.YearBuilt,
		Condition:     analysisdomain.Condition(d.Condition),
	}
}
