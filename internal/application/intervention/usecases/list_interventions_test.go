package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/domain/intervention"
)

func TestListInterventionsUseCase_Execute(t *testing.T) {
	t.Run("should pass filter through and compute pages", func(t *testing.T) {
		var captured intervention.Filter
		mockRepo := &mockInterventionRepository{
			ListFunc: func(ctx context.Context, filter intervention.Filter) ([]*intervention.Intervention, int64, error) {
				captured = filter
				return []*intervention.Intervention{existingIntervention(t)}, 101, nil
			},
		}

		uc := NewListInterventionsUseCase(mockRepo, &mockLogger{})

		archived := false
		result, err := uc.Execute(context.Background(), ListInterventionsQuery{
			Filter: intervention.Filter{
				Centrale:   "Parc Solaire Sud",
				IsArchived: &archived,
				Page:       2,
				Limit:      50,
				SortBy:     "dateRef",
				SortOrder:  "asc",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Parc Solaire Sud", captured.Centrale)
		require.NotNil(t, captured.IsArchived)
		assert.False(t, *captured.IsArchived)
		assert.Equal(t, "dateRef", captured.SortBy)

		assert.Len(t, result.Interventions, 1)
		assert.Equal(t, int64(101), result.Total)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 50, result.Limit)
		assert.Equal(t, 3, result.Pages)
	})

	t.Run("should normalize out-of-range pagination", func(t *testing.T) {
		var captured intervention.Filter
		mockRepo := &mockInterventionRepository{
			ListFunc: func(ctx context.Context, filter intervention.Filter) ([]*intervention.Intervention, int64, error) {
				captured = filter
				return nil, 0, nil
			},
		}

		uc := NewListInterventionsUseCase(mockRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ListInterventionsQuery{
			Filter: intervention.Filter{Page: 0, Limit: 10000},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, captured.Page)
		assert.Equal(t, 200, captured.Limit)
		assert.Equal(t, 0, result.Pages)
		assert.Empty(t, result.Interventions)
	})
}
