package intervention

import (
	"context"
	"time"
)

// Filter narrows an intervention listing. Equality filters are ANDed;
// Search matches case-insensitively against titre, commentaires, centrale
// and equipement. A nil IsArchived means "both archived and active".
type Filter struct {
	Centrale              string
	Equipement            string
	TypeEvenement         string
	TypeDysfonctionnement string
	DateRefFrom           *time.Time
	DateRefTo             *time.Time
	IsArchived            *bool
	Search                string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// SiteCount is an aggregation row of interventions per centrale.
type SiteCount struct {
	Centrale string `json:"centrale"`
	Count    int64  `json:"count"`
}

// EventTypeCount is an aggregation row of interventions per event type.
type EventTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// Stats aggregates intervention counts for the dashboard.
type Stats struct {
	Total           int64            `json:"total"`
	Active          int64            `json:"active"`
	Archived        int64            `json:"archived"`
	ByCentrale      []SiteCount      `json:"byCentrale"`
	ByTypeEvenement []EventTypeCount `json:"byTypeEvenement"`
}

// Repository is the persistence contract for interventions.
type Repository interface {
	Save(ctx context.Context, i *Intervention) error
	Update(ctx context.Context, i *Intervention) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Intervention, error)
	List(ctx context.Context, filter Filter) ([]*Intervention, int64, error)
	GetStats(ctx context.Context) (*Stats, error)
}
