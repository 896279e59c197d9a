package audit

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sitelog/internal/application/audit/usecases"
	auditdomain "sitelog/internal/domain/audit"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type AuditHandler struct {
	listUC       usecases.ListAuditLogsExecutor
	listEntityUC usecases.ListEntityAuditLogsExecutor
	logger       logger.Interface
}

func NewAuditHandler(
	listUC usecases.ListAuditLogsExecutor,
	listEntityUC usecases.ListEntityAuditLogsExecutor,
) *AuditHandler {
	return &AuditHandler{
		listUC:       listUC,
		listEntityUC: listEntityUC,
		logger:       logger.NewLogger(),
	}
}

// ListAuditLogs handles GET /audit
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	filter, err := parseAuditFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAuditLogsQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Logs, result.Total, result.Page, result.Limit)
}

// ListEntityAuditLogs handles GET /audit/entity/:id
func (h *AuditHandler) ListEntityAuditLogs(c *gin.Context) {
	query := usecases.ListEntityAuditLogsQuery{
		EntityType: c.Query("entityType"),
		EntityID:   c.Param("id"),
	}

	result, err := h.listEntityUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseAuditFilter(c *gin.Context) (auditdomain.Filter, error) {
	pagination := utils.ParsePagination(c)

	filter := auditdomain.Filter{
		EntityType: auditdomain.EntityType(c.Query("entityType")),
		EntityID:   c.Query("entityId"),
		Action:     auditdomain.Action(c.Query("action")),
		UserID:     c.Query("userId"),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
	}

	if filter.EntityType != "" && !filter.EntityType.IsValid() {
		return filter, errors.NewValidationError("unknown entity type")
	}
	if filter.Action != "" && !filter.Action.IsValid() {
		return filter, errors.NewValidationError("unknown action")
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.NewValidationError("from must be an RFC 3339 timestamp")
		}
		filter.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.NewValidationError("to must be an RFC 3339 timestamp")
		}
		filter.To = &to
	}

	return filter, nil
}
