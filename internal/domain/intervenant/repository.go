package intervenant

import "context"

// Repository is the persistence contract for intervenant profiles.
type Repository interface {
	Save(ctx context.Context, i *Intervenant) error
	Update(ctx context.Context, i *Intervenant) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Intervenant, error)
	// ListActive returns active profiles ordered by surname then name.
	ListActive(ctx context.Context, page, limit int) ([]*Intervenant, int64, error)
}

// CompanyRepository is the persistence contract for companies.
type CompanyRepository interface {
	Save(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	// Delete removes the company and clears the companyID of its
	// intervenants; their profiles are kept.
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Company, error)
	// List returns companies ordered by name.
	List(ctx context.Context, page, limit int) ([]*Company, int64, error)
	FindIntervenants(ctx context.Context, companyID string) ([]*Intervenant, error)
}
