package mappers

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"sitelog/internal/domain/audit"
	"sitelog/internal/infrastructure/persistence/models"
)

type AuditLogMapper interface {
	ToModel(l *audit.Log) *models.AuditLogModel
	ToDomain(model *models.AuditLogModel) *audit.Log
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(l *audit.Log) *models.AuditLogModel {
	return &models.AuditLogModel{
		ID:          l.ID(),
		EntityType:  l.EntityType().String(),
		EntityID:    l.EntityID(),
		Action:      l.Action().String(),
		OldValues:   encodeValues(l.OldValues()),
		NewValues:   encodeValues(l.NewValues()),
		Description: l.Description(),
		IPAddress:   l.IPAddress(),
		UserAgent:   l.UserAgent(),
		UserID:      l.UserID(),
		CreatedAt:   l.CreatedAt().UnixMilli(),
	}
}

func (m *AuditLogMapperImpl) ToDomain(model *models.AuditLogModel) *audit.Log {
	return audit.ReconstructLog(
		model.ID,
		audit.EntityType(model.EntityType),
		model.EntityID,
		audit.Action(model.Action),
		decodeValues(model.OldValues),
		decodeValues(model.NewValues),
		model.Description,
		model.IPAddress,
		model.UserAgent,
		model.UserID,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func encodeValues(values map[string]interface{}) datatypes.JSON {
	if values == nil {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func decodeValues(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var values map[string]interface{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
