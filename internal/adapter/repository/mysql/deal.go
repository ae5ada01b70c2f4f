package mysql

import (
	"context"

	dealDomain "dealflow-backend/internal/domain/deal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DealRepository struct{ db *gorm.DB }

func NewDealRepository(db *gorm.DB) *DealRepository { return &DealRepository{db: db} }

func (r *DealRepository) Create(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DealRepository) Save(ctx context.Context, d *dealDomain.Deal) error {
	// Omit the association: activity entries are append-only and written
	// through AppendActivity, never resaved with the deal.
	return r.db.WithContext(ctx).Omit("Activity").Save(d).Error
}

func (r *DealRepository) GetByDealID(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).
		Preload("Activity", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("deal_id = ?", dealID).
		First(&out)
	return &out, res.Error
}

func (r *DealRepository) GetByDealIDForUpdate(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("deal_id = ?", dealID).
		First(&out)
	return &out, res.Error
}

func (r *DealRepository) GetByAddress(ctx context.Context, address string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).
		Where("address = ?", address).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *DealRepository) AppendActivity(ctx context.Context, e *dealDomain.ActivityEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *DealRepository) List(ctx context.Context, f dealDomain.Filter) ([]dealDomain.Deal, int64, error) {
	q := r.db.WithContext(ctx).Model(&dealDomain.Deal{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AssignedTo != "" {
		q = q.Where("assigned_to = ?", f.AssignedTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}

	var out []dealDomain.Deal
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

func (r *DealRepository) CountByStatus(ctx context.Context) (map[dealDomain.Status]int64, error) {
	type row struct {
		Status dealDomain.Status
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&dealDomain.Deal{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[dealDomain.Status]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}

// Delete removes the deal and its activity log permanently.
func (r *DealRepository) Delete(ctx context.Context, d *dealDomain.Deal) error {
	if err := r.db.WithContext(ctx).
		Where("deal_ref = ?", d.ID).
		Delete(&dealDomain.ActivityEntry{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Unscoped().Delete(d).Error
}
