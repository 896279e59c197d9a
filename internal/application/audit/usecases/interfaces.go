package usecases

import (
	"context"

	"sitelog/internal/application/audit/dto"
)

type ListAuditLogsExecutor interface {
	Execute(ctx context.Context, query ListAuditLogsQuery) (*ListAuditLogsResult, error)
}

type ListEntityAuditLogsExecutor interface {
	Execute(ctx context.Context, query ListEntityAuditLogsQuery) ([]*dto.AuditLogDTO, error)
}
