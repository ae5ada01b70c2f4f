package uowmock

import (
	"context"
	"errors"

	"dealflow-backend/internal/domain/deal"
	"dealflow-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinDealTxFn func(ctx context.Context, dealID string, fn func(r uow.Repos, d *deal.Deal) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that runs the callback directly against the
// given repository, with the supplied deal as the locked row. The common
// case for usecase tests.
func Passthrough(r deal.Repository, d *deal.Deal) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(uow.Repos{Deals: r})
		},
		WithinDealTxFn: func(ctx context.Context, dealID string, fn func(rp uow.Repos, dl *deal.Deal) error) error {
			if d == nil || d.DealID != dealID {
				return deal.ErrNotFound
			}
			return fn(uow.Repos{Deals: r}, d)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinDealTx(ctx context.Context, dealID string, fn func(r uow.Repos, d *deal.Deal) error) error {
	if m.WithinDealTxFn != nil {
		return m.WithinDealTxFn(ctx, dealID, fn)
	}
	return errUnimplemented
}
