package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/intervention"
	apperrors "sitelog/internal/shared/errors"
)

func TestDeleteInterventionUseCase_Execute_Success(t *testing.T) {
	existing := existingIntervention(t)

	var calls []string
	mockRepo := &mockInterventionRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*intervention.Intervention, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			calls = append(calls, "delete")
			return nil
		},
	}
	var recorded *audit.Log
	mockAudit := &mockAuditRepository{
		SaveFunc: func(ctx context.Context, l *audit.Log) error {
			calls = append(calls, "audit")
			recorded = l
			return nil
		},
	}

	uc := NewDeleteInterventionUseCase(mockRepo, mockAudit, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteInterventionCommand{
		ID:    existing.ID(),
		Actor: Actor{UserID: "user-2"},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, existing.ID(), result.ID)

	// The snapshot must be written before the row is removed.
	assert.Equal(t, []string{"audit", "delete"}, calls)
	require.NotNil(t, recorded)
	assert.Equal(t, audit.ActionDelete, recorded.Action())
	assert.Equal(t, "Controle reseau", recorded.OldValues()["titre"])
	assert.Nil(t, recorded.NewValues())
}

func TestDeleteInterventionUseCase_Execute_NotFound(t *testing.T) {
	uc := NewDeleteInterventionUseCase(&mockInterventionRepository{}, &mockAuditRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteInterventionCommand{
		ID:    "missing",
		Actor: Actor{UserID: "user-2"},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteInterventionUseCase_Execute_AuditFailureKeepsRow(t *testing.T) {
	existing := existingIntervention(t)

	deleteCalls := 0
	mockRepo := &mockInterventionRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*intervention.Intervention, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			deleteCalls++
			return nil
		},
	}
	mockAudit := &mockAuditRepository{
		SaveFunc: func(ctx context.Context, l *audit.Log) error {
			return errors.New("audit store unavailable")
		},
	}

	uc := NewDeleteInterventionUseCase(mockRepo, mockAudit, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteInterventionCommand{
		ID:    existing.ID(),
		Actor: Actor{UserID: "user-2"},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Zero(t, deleteCalls)
}
