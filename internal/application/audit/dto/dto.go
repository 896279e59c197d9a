package dto

import (
	"time"

	"sitelog/internal/domain/audit"
)

type AuditLogDTO struct {
	ID          string                 `json:"id"`
	EntityType  string                 `json:"entityType"`
	EntityID    string                 `json:"entityId"`
	Action      string                 `json:"action"`
	OldValues   map[string]interface{} `json:"oldValues"`
	NewValues   map[string]interface{} `json:"newValues"`
	Description string                 `json:"description"`
	IPAddress   string                 `json:"ipAddress"`
	UserAgent   string                 `json:"userAgent"`
	UserID      string                 `json:"userId"`
	UserName    string                 `json:"userName"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func ToAuditLogDTO(l *audit.Log, userName string) *AuditLogDTO {
	if l == nil {
		return nil
	}

	return &AuditLogDTO{
		ID:          l.ID(),
		EntityType:  l.EntityType().String(),
		EntityID:    l.EntityID(),
		Action:      l.Action().String(),
		OldValues:   l.OldValues(),
		NewValues:   l.NewValues(),
		Description: l.Description(),
		IPAddress:   l.IPAddress(),
		UserAgent:   l.UserAgent(),
		UserID:      l.UserID(),
		UserName:    userName,
		CreatedAt:   l.CreatedAt(),
	}
}
