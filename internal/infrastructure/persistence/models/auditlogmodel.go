package models

import (
	"gorm.io/datatypes"

	"sitelog/internal/shared/constants"
)

// AuditLogModel rows are append-only. There is no foreign key to the
// audited entity so history survives deletions.
type AuditLogModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	EntityType  string `gorm:"size:50;not null;index:idx_audit_entity"`
	EntityID    string `gorm:"size:36;not null;index:idx_audit_entity"`
	Action      string `gorm:"size:20;not null;index"`
	OldValues   datatypes.JSON
	NewValues   datatypes.JSON
	Description string `gorm:"size:500"`
	IPAddress   string `gorm:"size:45"`
	UserAgent   string `gorm:"size:500"`
	UserID      string `gorm:"size:36;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
