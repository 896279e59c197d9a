package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/user"
	"sitelog/internal/shared/authorization"
	apperrors "sitelog/internal/shared/errors"
)

func auditLog(t *testing.T, userID string) *audit.Log {
	t.Helper()
	l, err := audit.NewLog(audit.Entry{
		EntityType: audit.EntityIntervention,
		EntityID:   "int-1",
		Action:     audit.ActionUpdate,
		OldValues:  map[string]interface{}{"titre": "Avant"},
		NewValues:  map[string]interface{}{"titre": "Apres"},
		UserID:     userID,
	})
	require.NoError(t, err)
	return l
}

func TestListAuditLogsUseCase_Execute(t *testing.T) {
	t.Run("should resolve user names and compute pages", func(t *testing.T) {
		var captured audit.Filter
		mockAudit := &mockAuditRepository{
			ListFunc: func(ctx context.Context, filter audit.Filter) ([]*audit.Log, int64, error) {
				captured = filter
				return []*audit.Log{auditLog(t, "user-1"), auditLog(t, "user-1")}, 2, nil
			},
		}
		lookups := 0
		mockUsers := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
				lookups++
				return user.NewUser("a@b.fr", "$2a$10$hash", "Marie", "Curie", authorization.RoleAdmin)
			},
		}

		uc := NewListAuditLogsUseCase(mockAudit, mockUsers, &mockLogger{})

		result, err := uc.Execute(context.Background(), ListAuditLogsQuery{
			Filter: audit.Filter{EntityType: audit.EntityIntervention, Page: 1, Limit: 20},
		})

		require.NoError(t, err)
		assert.Equal(t, audit.EntityIntervention, captured.EntityType)
		require.Len(t, result.Logs, 2)
		assert.Equal(t, "Marie Curie", result.Logs[0].UserName)
		assert.Equal(t, 1, lookups)
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, 1, result.Pages)
	})

	t.Run("should leave name empty for unknown user", func(t *testing.T) {
		mockAudit := &mockAuditRepository{
			ListFunc: func(ctx context.Context, filter audit.Filter) ([]*audit.Log, int64, error) {
				return []*audit.Log{auditLog(t, "ghost")}, 1, nil
			},
		}

		uc := NewListAuditLogsUseCase(mockAudit, &mockUserRepository{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), ListAuditLogsQuery{})

		require.NoError(t, err)
		require.Len(t, result.Logs, 1)
		assert.Empty(t, result.Logs[0].UserName)
	})
}

func TestListEntityAuditLogsUseCase_Execute(t *testing.T) {
	t.Run("should default entity type to intervention", func(t *testing.T) {
		var capturedType audit.EntityType
		mockAudit := &mockAuditRepository{
			ListByEntityIDFunc: func(ctx context.Context, entityType audit.EntityType, entityID string) ([]*audit.Log, error) {
				capturedType = entityType
				return []*audit.Log{auditLog(t, "")}, nil
			},
		}

		uc := NewListEntityAuditLogsUseCase(mockAudit, &mockUserRepository{}, &mockLogger{})

		logs, err := uc.Execute(context.Background(), ListEntityAuditLogsQuery{EntityID: "int-1"})

		require.NoError(t, err)
		assert.Equal(t, audit.EntityIntervention, capturedType)
		assert.Len(t, logs, 1)
	})

	t.Run("should reject missing entity ID", func(t *testing.T) {
		uc := NewListEntityAuditLogsUseCase(&mockAuditRepository{}, &mockUserRepository{}, &mockLogger{})

		logs, err := uc.Execute(context.Background(), ListEntityAuditLogsQuery{})

		assert.Error(t, err)
		assert.Nil(t, logs)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("should reject unknown entity type", func(t *testing.T) {
		uc := NewListEntityAuditLogsUseCase(&mockAuditRepository{}, &mockUserRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListEntityAuditLogsQuery{EntityType: "widget", EntityID: "x"})

		assert.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
