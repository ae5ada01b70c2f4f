package mysql

import (
	"context"
	"errors"

	"dealflow-backend/internal/domain/deal"
	"dealflow-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{Deals: &DealRepository{db: tx}})
	})
}

func (u *GormUoW) WithinDealTx(ctx context.Context, dealID string, fn func(r uow.Repos, d *deal.Deal) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{Deals: &DealRepository{db: tx}}
		// lock the deal row up-front so concurrent mutations of the same
		// deal serialize instead of interleaving
		d, err := r.Deals.GetByDealIDForUpdate(ctx, dealID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return deal.ErrNotFound
			}
			return err
		}
		return fn(r, d)
	})
}
