package usecases

import (
	"context"

	"sitelog/internal/application/audit/dto"
	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/user"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type ListEntityAuditLogsQuery struct {
	EntityType string
	EntityID   string
}

type ListEntityAuditLogsUseCase struct {
	auditRepo audit.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewListEntityAuditLogsUseCase(
	auditRepo audit.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListEntityAuditLogsUseCase {
	return &ListEntityAuditLogsUseCase{
		auditRepo: auditRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Execute returns the full history of one entity, newest first. Entries
// for deleted entities remain readable.
func (uc *ListEntityAuditLogsUseCase) Execute(ctx context.Context, query ListEntityAuditLogsQuery) ([]*dto.AuditLogDTO, error) {
	entityType := audit.EntityType(query.EntityType)
	if query.EntityType == "" {
		entityType = audit.EntityIntervention
	}
	if !entityType.IsValid() {
		return nil, errors.NewValidationError("invalid entity type")
	}
	if query.EntityID == "" {
		return nil, errors.NewValidationError("entity ID is required")
	}

	logs, err := uc.auditRepo.ListByEntityID(ctx, entityType, query.EntityID)
	if err != nil {
		uc.logger.Errorw("failed to list entity audit logs", "error", err, "entity_id", query.EntityID)
		return nil, err
	}

	names := map[string]string{}
	out := make([]*dto.AuditLogDTO, 0, len(logs))
	for _, l := range logs {
		name := ""
		if l.UserID() != "" {
			if cached, ok := names[l.UserID()]; ok {
				name = cached
			} else {
				if u, err := uc.userRepo.FindByID(ctx, l.UserID()); err == nil && u != nil {
					name = u.FullName()
				}
				names[l.UserID()] = name
			}
		}
		out = append(out, dto.ToAuditLogDTO(l, name))
	}

	return out, nil
}
