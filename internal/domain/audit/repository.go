package audit

import (
	"context"
	"time"
)

// Filter narrows an audit log listing. Equality filters are ANDed;
// From/To bound createdAt inclusively.
type Filter struct {
	EntityType EntityType
	EntityID   string
	Action     Action
	UserID     string
	From       *time.Time
	To         *time.Time

	Page  int
	Limit int
}

// Repository is the persistence contract for audit logs. Entries are
// append-only: there is deliberately no update or delete operation.
type Repository interface {
	Save(ctx context.Context, log *Log) error
	List(ctx context.Context, filter Filter) ([]*Log, int64, error)
	ListByEntityID(ctx context.Context, entityType EntityType, entityID string) ([]*Log, error)
}
