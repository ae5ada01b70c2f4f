package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	dealDomain "dealflow-backend/internal/domain/deal"
	"dealflow-backend/internal/domain/uow"

	"gorm.io/gorm"
)

func seedDeal(t *testing.T, db *gorm.DB, dealID string, status dealDomain.Status) {
	t.Helper()
	if err := db.Create(&dealSQLite{
		DealID:          dealID,
		Address:         "7 Pine St",
		Status:          string(status),
		StatusUpdatedAt: time.Now().UTC().Add(-1 * time.Hour),
		CreatedBy:       "op-1",
	}).Error; err != nil {
		t.Fatalf("seed deal: %v", err)
	}
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewDealRepository(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		d := makeDeal("BLVCK-200-1", "200 Main St")
		if err := r.Deals.Create(ctx, d); err != nil {
			return err
		}
		if d.ID == 0 {
			t.Fatalf("deal auto ID not set")
		}
		return r.Deals.AppendActivity(ctx, &dealDomain.ActivityEntry{
			DealRef: d.ID, Action: dealDomain.ActionDealCreated, ActorID: "op-1",
		})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	got, err := repo.GetByDealID(ctx, "BLVCK-200-1")
	if err != nil {
		t.Fatalf("deal not visible after commit: %v", err)
	}
	if len(got.Activity) != 1 {
		t.Fatalf("activity not visible after commit: %+v", got.Activity)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewDealRepository(db)

	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Deals.Create(ctx, makeDeal("BLVCK-201-1", "201 Main St")); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := repo.GetByDealID(ctx, "BLVCK-201-1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinDealTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewDealRepository(db)

	seedDeal(t, db, "BLVCK-202-1", dealDomain.StatusNewDeal)

	if err := guow.WithinDealTx(ctx, "BLVCK-202-1", func(r uow.Repos, d *dealDomain.Deal) error {
		if d == nil || d.DealID != "BLVCK-202-1" || d.Status != dealDomain.StatusNewDeal {
			t.Fatalf("unexpected deal passed to fn: %+v", d)
		}

		d.Status = dealDomain.StatusOfferSent
		d.StatusUpdatedAt = time.Now().UTC()
		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}
		return r.Deals.AppendActivity(ctx, &dealDomain.ActivityEntry{
			DealRef:        d.ID,
			Action:         dealDomain.ActionStatusUpdate,
			PreviousStatus: dealDomain.StatusNewDeal,
			NewStatus:      dealDomain.StatusOfferSent,
			ActorID:        "op-2",
		})
	}); err != nil {
		t.Fatalf("WithinDealTx commit err: %v", err)
	}

	got, err := repo.GetByDealID(ctx, "BLVCK-202-1")
	if err != nil {
		t.Fatalf("GetByDealID post-commit: %v", err)
	}
	if got.Status != dealDomain.StatusOfferSent {
		t.Fatalf("status not updated, got=%s", got.Status)
	}
	if len(got.Activity) != 1 {
		t.Fatalf("activity not committed: %+v", got.Activity)
	}
}

func TestGormUoW_WithinDealTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewDealRepository(db)

	seedDeal(t, db, "BLVCK-203-1", dealDomain.StatusNewDeal)

	sentinel := errors.New("stop")

	_ = guow.WithinDealTx(ctx, "BLVCK-203-1", func(r uow.Repos, d *dealDomain.Deal) error {
		d.Status = dealDomain.StatusOfferSent
		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}
		if err := r.Deals.AppendActivity(ctx, &dealDomain.ActivityEntry{
			DealRef: d.ID, Action: dealDomain.ActionStatusUpdate, ActorID: "op-2",
		}); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := repo.GetByDealID(ctx, "BLVCK-203-1")
	if err != nil {
		t.Fatalf("post-rollback GetByDealID: %v", err)
	}
	if got.Status != dealDomain.StatusNewDeal {
		t.Fatalf("expected new_deal after rollback, got %s", got.Status)
	}
	if len(got.Activity) != 0 {
		t.Fatalf("expected no activity after rollback, got %+v", got.Activity)
	}
}

func TestGormUoW_WithinDealTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinDealTx(context.Background(), "BLVCK-0-0", func(r uow.Repos, d *dealDomain.Deal) error {
		t.Fatalf("callback should not run when deal missing")
		return nil
	})
	if !errors.Is(err, dealDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
