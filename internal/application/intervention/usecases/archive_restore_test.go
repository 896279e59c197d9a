package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/intervention"
)

func TestArchiveInterventionUseCase_Execute(t *testing.T) {
	t.Run("should archive and record one audit entry", func(t *testing.T) {
		existing := existingIntervention(t)
		var recorded []*audit.Log

		mockRepo := &mockInterventionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*intervention.Intervention, error) {
				return existing, nil
			},
		}
		mockAudit := &mockAuditRepository{
			SaveFunc: func(ctx context.Context, l *audit.Log) error {
				recorded = append(recorded, l)
				return nil
			},
		}

		uc := NewArchiveInterventionUseCase(mockRepo, mockAudit, &mockLogger{})

		result, err := uc.Execute(context.Background(), ArchiveInterventionCommand{
			ID:    existing.ID(),
			Actor: Actor{UserID: "user-2"},
		})

		require.NoError(t, err)
		assert.True(t, result.IsArchived)
		assert.NotNil(t, result.ArchivedAt)

		require.Len(t, recorded, 1)
		assert.Equal(t, audit.ActionArchive, recorded[0].Action())
		assert.Nil(t, recorded[0].OldValues())
		assert.Nil(t, recorded[0].NewValues())
	})

	t.Run("should audit again when already archived", func(t *testing.T) {
		existing := existingIntervention(t)
		existing.Archive("user-9")

		updateCalls := 0
		auditCalls := 0
		mockRepo := &mockInterventionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*intervention.Intervention, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, i *intervention.Intervention) error {
				updateCalls++
				return nil
			},
		}
		mockAudit := &mockAuditRepository{
			SaveFunc: func(ctx context.Context, l *audit.Log) error {
				auditCalls++
				return nil
			},
		}

		uc := NewArchiveInterventionUseCase(mockRepo, mockAudit, &mockLogger{})

		result, err := uc.Execute(context.Background(), ArchiveInterventionCommand{
			ID:    existing.ID(),
			Actor: Actor{UserID: "user-2"},
		})

		require.NoError(t, err)
		assert.True(t, result.IsArchived)
		assert.Equal(t, 1, updateCalls)
		assert.Equal(t, 1, auditCalls)
	})
}

func TestRestoreInterventionUseCase_Execute(t *testing.T) {
	t.Run("should restore and record one audit entry", func(t *testing.T) {
		existing := existingIntervention(t)
		existing.Archive("user-9")
		var recorded []*audit.Log

		mockRepo := &mockInterventionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*intervention.Intervention, error) {
				return existing, nil
			},
		}
		mockAudit := &mockAuditRepository{
			SaveFunc: func(ctx context.Context, l *audit.Log) error {
				recorded = append(recorded, l)
				return nil
			},
		}

		uc := NewRestoreInterventionUseCase(mockRepo, mockAudit, &mockLogger{})

		result, err := uc.Execute(context.Background(), RestoreInterventionCommand{
			ID:    existing.ID(),
			Actor: Actor{UserID: "user-2"},
		})

		require.NoError(t, err)
		assert.False(t, result.IsArchived)
		assert.Nil(t, result.ArchivedAt)

		require.Len(t, recorded, 1)
		assert.Equal(t, audit.ActionRestore, recorded[0].Action())
		assert.Nil(t, recorded[0].OldValues())
		assert.Nil(t, recorded[0].NewValues())
	})

	t.Run("should audit again when not archived", func(t *testing.T) {
		existing := existingIntervention(t)
		auditCalls := 0

		mockRepo := &mockInterventionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*intervention.Intervention, error) {
				return existing, nil
			},
		}
		mockAudit := &mockAuditRepository{
			SaveFunc: func(ctx context.Context, l *audit.Log) error {
				auditCalls++
				return nil
			},
		}

		uc := NewRestoreInterventionUseCase(mockRepo, mockAudit, &mockLogger{})

		result, err := uc.Execute(context.Background(), RestoreInterventionCommand{
			ID:    existing.ID(),
			Actor: Actor{UserID: "user-2"},
		})

		require.NoError(t, err)
		assert.False(t, result.IsArchived)
		assert.Equal(t, 1, auditCalls)
	})
}
