package intervenant

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Company is an external company whose personnel perform interventions.
type Company struct {
	id        string
	name      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewCompany creates an active company.
func NewCompany(name string) (*Company, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}

	now := time.Now().UTC()
	return &Company{
		id:        uuid.NewString(),
		name:      name,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCompany rebuilds a company from persistence.
func ReconstructCompany(id, name string, isActive bool, createdAt, updatedAt time.Time) *Company {
	return &Company{
		id:        id,
		name:      name,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Company) ID() string           { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) IsActive() bool       { return c.isActive }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }

// Rename changes the company name.
func (c *Company) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	c.name = name
	c.updatedAt = time.Now().UTC()
	return nil
}

// SetActive toggles the active flag.
func (c *Company) SetActive(active bool) {
	c.isActive = active
	c.updatedAt = time.Now().UTC()
}
