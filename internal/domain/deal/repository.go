package deal

import "context"

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Status     Status
	AssignedTo string
	Page       int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	GetByDealID(ctx context.Context, dealID string) (*Deal, error)
	// GetByDealIDForUpdate locks the deal row for the duration of the
	// surrounding transaction; mutations to one deal are serialized on it.
	GetByDealIDForUpdate(ctx context.Context, dealID string) (*Deal, error)
	GetByAddress(ctx context.Context, address string) (*Deal, error)
	Save(ctx context.Context, d *Deal) error
	AppendActivity(ctx context.Context, e *ActivityEntry) error
	List(ctx context.Context, f Filter) ([]Deal, int64, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	// Delete is the administrative hard delete: the deal and its activity
	// log are removed for good.
	Delete(ctx context.Context, d *Deal) error
}
