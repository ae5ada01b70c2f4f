package dealmock

import (
	"context"

	domain "dealflow-backend/internal/domain/deal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones return
// context.Canceled so an unexpected call fails loudly.
type Repo struct {
	CreateFn               func(ctx context.Context, d *domain.Deal) error
	GetByDealIDFn          func(ctx context.Context, dealID string) (*domain.Deal, error)
	GetByDealIDForUpdateFn func(ctx context.Context, dealID string) (*domain.Deal, error)
	GetByAddressFn         func(ctx context.Context, address string) (*domain.Deal, error)
	SaveFn                 func(ctx context.Context, d *domain.Deal) error
	AppendActivityFn       func(ctx context.Context, e *domain.ActivityEntry) error
	ListFn                 func(ctx context.Context, f domain.Filter) ([]domain.Deal, int64, error)
	CountByStatusFn        func(ctx context.Context) (map[domain.Status]int64, error)
	DeleteFn               func(ctx context.Context, d *domain.Deal) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, d *domain.Deal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDealID(ctx context.Context, dealID string) (*domain.Deal, error) {
	if m.GetByDealIDFn != nil {
		return m.GetByDealIDFn(ctx, dealID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDealIDForUpdate(ctx context.Context, dealID string) (*domain.Deal, error) {
	if m.GetByDealIDForUpdateFn != nil {
		return m.GetByDealIDForUpdateFn(ctx, dealID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByAddress(ctx context.Context, address string) (*domain.Deal, error) {
	if m.GetByAddressFn != nil {
		return m.GetByAddressFn(ctx, address)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, d *domain.Deal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) AppendActivity(ctx context.Context, e *domain.ActivityEntry) error {
	if m.AppendActivityFn != nil {
		return m.AppendActivityFn(ctx, e)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Deal, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}

func (m *Repo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Delete(ctx context.Context, d *domain.Deal) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, d)
	}
	return nil
}
