package uow

import (
	"context"

	"dealflow-backend/internal/domain/deal"
)

type Repos struct {
	Deals deal.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the deal row first, then pass it in. All mutations
	// of one deal go through here so activity appends and status writes
	// cannot interleave.
	WithinDealTx(ctx context.Context, dealID string, fn func(r Repos, d *deal.Deal) error) error
}
