package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action identifies the kind of state change an audit entry records.
type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionArchive Action = "archive"
	ActionRestore Action = "restore"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionArchive, ActionRestore:
		return true
	}
	return false
}

// EntityType identifies the kind of entity an audit entry refers to.
type EntityType string

const (
	EntityIntervention    EntityType = "intervention"
	EntityUser            EntityType = "user"
	EntityPredefinedValue EntityType = "predefined_value"
)

func (e EntityType) String() string {
	return string(e)
}

func (e EntityType) IsValid() bool {
	switch e {
	case EntityIntervention, EntityUser, EntityPredefinedValue:
		return true
	}
	return false
}

// Log is one immutable record of a state-changing action. Entries are
// append-only and outlive the entities they reference.
type Log struct {
	id          string
	entityType  EntityType
	entityID    string
	action      Action
	oldValues   map[string]interface{}
	newValues   map[string]interface{}
	description string
	ipAddress   string
	userAgent   string
	userID      string
	createdAt   time.Time
}

// Entry carries the data needed to record one audit log.
type Entry struct {
	EntityType  EntityType
	EntityID    string
	Action      Action
	OldValues   map[string]interface{}
	NewValues   map[string]interface{}
	Description string
	IPAddress   string
	UserAgent   string
	UserID      string
}

// NewLog creates an audit log entry from e.
func NewLog(e Entry) (*Log, error) {
	if !e.EntityType.IsValid() {
		return nil, fmt.Errorf("invalid entity type: %s", e.EntityType)
	}
	if e.EntityID == "" {
		return nil, fmt.Errorf("entity ID is required")
	}
	if !e.Action.IsValid() {
		return nil, fmt.Errorf("invalid action: %s", e.Action)
	}

	return &Log{
		id:          uuid.NewString(),
		entityType:  e.EntityType,
		entityID:    e.EntityID,
		action:      e.Action,
		oldValues:   e.OldValues,
		newValues:   e.NewValues,
		description: e.Description,
		ipAddress:   e.IPAddress,
		userAgent:   e.UserAgent,
		userID:      e.UserID,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructLog rebuilds an audit log from persistence.
func ReconstructLog(
	id string,
	entityType EntityType,
	entityID string,
	action Action,
	oldValues, newValues map[string]interface{},
	description, ipAddress, userAgent, userID string,
	createdAt time.Time,
) *Log {
	return &Log{
		id:          id,
		entityType:  entityType,
		entityID:    entityID,
		action:      action,
		oldValues:   oldValues,
		newValues:   newValues,
		description: description,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		userID:      userID,
		createdAt:   createdAt,
	}
}

func (l *Log) ID() string             { return l.id }
func (l *Log) EntityType() EntityType { return l.entityType }
func (l *Log) EntityID() string       { return l.entityID }
func (l *Log) Action() Action         { return l.action }
func (l *Log) Description() string    { return l.description }
func (l *Log) IPAddress() string      { return l.ipAddress }
func (l *Log) UserAgent() string      { return l.userAgent }
func (l *Log) UserID() string         { return l.userID }
func (l *Log) CreatedAt() time.Time   { return l.createdAt }

func (l *Log) OldValues() map[string]interface{} {
	return copyValues(l.oldValues)
}

func (l *Log) NewValues() map[string]interface{} {
	return copyValues(l.newValues)
}

func copyValues(values map[string]interface{}) map[string]interface{} {
	if values == nil {
		return nil
	}
	out := make(map[string]interface{}, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
