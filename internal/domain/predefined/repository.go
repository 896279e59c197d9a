package predefined

import "context"

// Repository is the persistence contract for predefined taxonomy values.
type Repository interface {
	Save(ctx context.Context, v *Value) error
	Update(ctx context.Context, v *Value) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Value, error)
	FindByTypeAndValue(ctx context.Context, valueType ValueType, value string) (*Value, error)
	// ListByType returns active entries of one type ordered by sortOrder
	// then value.
	ListByType(ctx context.Context, valueType ValueType) ([]*Value, error)
	// ListAll returns all active entries ordered by sortOrder then value.
	ListAll(ctx context.Context) ([]*Value, error)
	// UpdateSortOrder assigns sortOrder to the entry with the given id,
	// scoped to one type.
	UpdateSortOrder(ctx context.Context, valueType ValueType, id string, sortOrder int) error
}
