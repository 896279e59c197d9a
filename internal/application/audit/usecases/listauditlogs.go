package usecases

import (
	"context"

	"sitelog/internal/application/audit/dto"
	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/user"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type ListAuditLogsQuery struct {
	Filter audit.Filter
}

type ListAuditLogsResult struct {
	Logs  []*dto.AuditLogDTO
	Total int64
	Page  int
	Limit int
	Pages int
}

type ListAuditLogsUseCase struct {
	auditRepo audit.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewListAuditLogsUseCase(
	auditRepo audit.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{
		auditRepo: auditRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, query ListAuditLogsQuery) (*ListAuditLogsResult, error) {
	filter := query.Filter

	pagination := utils.ValidatePagination(filter.Page, filter.Limit)
	filter.Page = pagination.Page
	filter.Limit = pagination.Limit

	logs, total, err := uc.auditRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list audit logs", "error", err)
		return nil, err
	}

	return &ListAuditLogsResult{
		Logs:  uc.toDTOs(ctx, logs),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Pages: utils.TotalPages(total, filter.Limit),
	}, nil
}

func (uc *ListAuditLogsUseCase) toDTOs(ctx context.Context, logs []*audit.Log) []*dto.AuditLogDTO {
	names := map[string]string{}
	out := make([]*dto.AuditLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ToAuditLogDTO(l, uc.userName(ctx, l.UserID(), names)))
	}
	return out
}

func (uc *ListAuditLogsUseCase) userName(ctx context.Context, userID string, cache map[string]string) string {
	if userID == "" {
		return ""
	}
	if name, ok := cache[userID]; ok {
		return name
	}

	name := ""
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		uc.logger.Warnw("failed to resolve audit user name", "error", err, "user_id", userID)
	} else if u != nil {
		name = u.FullName()
	}
	cache[userID] = name
	return name
}
