package usecases

import (
	"context"

	"sitelog/internal/domain/audit"
	"sitelog/internal/shared/logger"
)

// Actor identifies who performed an operation and from where. It is
// propagated into the audit trail.
type Actor struct {
	UserID    string
	IPAddress string
	UserAgent string
}

// recordAudit writes one audit entry for an intervention state change.
// A failed audit write fails the whole operation.
func recordAudit(
	ctx context.Context,
	repo audit.Repository,
	log logger.Interface,
	action audit.Action,
	entityID string,
	oldValues, newValues map[string]interface{},
	description string,
	actor Actor,
) error {
	entry, err := audit.NewLog(audit.Entry{
		EntityType:  audit.EntityIntervention,
		EntityID:    entityID,
		Action:      action,
		OldValues:   oldValues,
		NewValues:   newValues,
		Description: description,
		IPAddress:   actor.IPAddress,
		UserAgent:   actor.UserAgent,
		UserID:      actor.UserID,
	})
	if err != nil {
		log.Errorw("failed to build audit entry", "error", err, "entity_id", entityID, "action", action)
		return err
	}

	if err := repo.Save(ctx, entry); err != nil {
		log.Errorw("failed to save audit entry", "error", err, "entity_id", entityID, "action", action)
		return err
	}

	return nil
}
