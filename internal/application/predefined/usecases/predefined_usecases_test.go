package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/domain/predefined"
	apperrors "sitelog/internal/shared/errors"
)

func TestCreateValueUseCase_Execute(t *testing.T) {
	t.Run("should create value", func(t *testing.T) {
		var saved *predefined.Value
		mockRepo := &mockValueRepository{
			SaveFunc: func(ctx context.Context, v *predefined.Value) error {
				saved = v
				return nil
			},
		}

		uc := NewCreateValueUseCase(mockRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), CreateValueCommand{
			Type:  "centrale",
			Value: "Parc Eolien Nord",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), result.ID)
		assert.Equal(t, "centrale", result.Type)
		assert.True(t, result.IsActive)
	})

	t.Run("should report conflict for existing value", func(t *testing.T) {
		existing, err := predefined.NewValue(predefined.TypeCentrale, "Parc Eolien Nord", "")
		require.NoError(t, err)

		mockRepo := &mockValueRepository{
			FindByTypeAndValueFunc: func(ctx context.Context, valueType predefined.ValueType, value string) (*predefined.Value, error) {
				return existing, nil
			},
		}

		uc := NewCreateValueUseCase(mockRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), CreateValueCommand{
			Type:  "centrale",
			Value: "Parc Eolien Nord",
		})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		uc := NewCreateValueUseCase(&mockValueRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateValueCommand{Type: "color", Value: "Rouge"})

		assert.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestUpdateValueUseCase_Execute(t *testing.T) {
	t.Run("should update and check uniqueness of renamed value", func(t *testing.T) {
		existing, err := predefined.NewValue(predefined.TypeEquipement, "Onduleur", "")
		require.NoError(t, err)

		var uniquenessChecked string
		mockRepo := &mockValueRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*predefined.Value, error) {
				return existing, nil
			},
			FindByTypeAndValueFunc: func(ctx context.Context, valueType predefined.ValueType, value string) (*predefined.Value, error) {
				uniquenessChecked = value
				return nil, nil
			},
		}

		uc := NewUpdateValueUseCase(mockRepo, &mockLogger{})

		renamed := "Onduleur central"
		result, err := uc.Execute(context.Background(), UpdateValueCommand{
			ID:     existing.ID(),
			Fields: predefined.UpdateFields{Value: &renamed},
		})

		require.NoError(t, err)
		assert.Equal(t, "Onduleur central", result.Value)
		assert.Equal(t, "Onduleur central", uniquenessChecked)
	})

	t.Run("should return not found for unknown ID", func(t *testing.T) {
		uc := NewUpdateValueUseCase(&mockValueRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateValueCommand{ID: "missing"})

		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeleteValueUseCase_Execute(t *testing.T) {
	t.Run("should delete existing value", func(t *testing.T) {
		existing, err := predefined.NewValue(predefined.TypeEvenement, "Maintenance", "")
		require.NoError(t, err)

		deleted := ""
		mockRepo := &mockValueRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*predefined.Value, error) {
				return existing, nil
			},
			DeleteFunc: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		uc := NewDeleteValueUseCase(mockRepo, &mockLogger{})

		err = uc.Execute(context.Background(), DeleteValueCommand{ID: existing.ID()})

		require.NoError(t, err)
		assert.Equal(t, existing.ID(), deleted)
	})

	t.Run("should return not found for unknown ID", func(t *testing.T) {
		uc := NewDeleteValueUseCase(&mockValueRepository{}, &mockLogger{})

		err := uc.Execute(context.Background(), DeleteValueCommand{ID: "missing"})

		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestListAllValuesUseCase_Execute(t *testing.T) {
	v1, err := predefined.NewValue(predefined.TypeCentrale, "Parc Eolien Nord", "")
	require.NoError(t, err)
	v2, err := predefined.NewValue(predefined.TypeEquipement, "Onduleur", "")
	require.NoError(t, err)

	mockRepo := &mockValueRepository{
		ListAllFunc: func(ctx context.Context) ([]*predefined.Value, error) {
			return []*predefined.Value{v1, v2}, nil
		},
	}

	uc := NewListAllValuesUseCase(mockRepo, &mockLogger{})

	grouped, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, grouped, len(predefined.AllValueTypes))
	assert.Len(t, grouped["centrale"], 1)
	assert.Len(t, grouped["equipement"], 1)
	assert.Empty(t, grouped["type_evenement"])
}

func TestReorderValuesUseCase_Execute(t *testing.T) {
	t.Run("should assign positions in order inside a transaction", func(t *testing.T) {
		type call struct {
			id    string
			order int
		}
		var calls []call
		inTx := false

		mockRepo := &mockValueRepository{
			UpdateSortOrderFunc: func(ctx context.Context, valueType predefined.ValueType, id string, sortOrder int) error {
				calls = append(calls, call{id: id, order: sortOrder})
				assert.True(t, inTx)
				assert.Equal(t, predefined.TypeCentrale, valueType)
				return nil
			},
		}
		mockTx := &mockTxManager{
			RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				inTx = true
				defer func() { inTx = false }()
				return fn(ctx)
			},
		}

		uc := NewReorderValuesUseCase(mockRepo, mockTx, &mockLogger{})

		err := uc.Execute(context.Background(), ReorderValuesCommand{
			Type:       "centrale",
			OrderedIDs: []string{"b", "a", "c"},
		})

		require.NoError(t, err)
		require.Len(t, calls, 3)
		assert.Equal(t, call{id: "b", order: 0}, calls[0])
		assert.Equal(t, call{id: "a", order: 1}, calls[1])
		assert.Equal(t, call{id: "c", order: 2}, calls[2])
	})

	t.Run("should propagate transaction failure", func(t *testing.T) {
		mockRepo := &mockValueRepository{
			UpdateSortOrderFunc: func(ctx context.Context, valueType predefined.ValueType, id string, sortOrder int) error {
				if id == "a" {
					return errors.New("row locked")
				}
				return nil
			},
		}

		uc := NewReorderValuesUseCase(mockRepo, &mockTxManager{}, &mockLogger{})

		err := uc.Execute(context.Background(), ReorderValuesCommand{
			Type:       "centrale",
			OrderedIDs: []string{"b", "a"},
		})

		assert.Error(t, err)
	})

	t.Run("should reject empty reorder", func(t *testing.T) {
		uc := NewReorderValuesUseCase(&mockValueRepository{}, &mockTxManager{}, &mockLogger{})

		err := uc.Execute(context.Background(), ReorderValuesCommand{Type: "centrale"})

		assert.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
