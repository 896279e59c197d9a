package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/domain/predefined"
	"sitelog/internal/shared/db"
	"sitelog/internal/shared/errors"
)

func createTestValue(t *testing.T, valueType predefined.ValueType, value string) *predefined.Value {
	v, err := predefined.NewValue(valueType, value, "")
	require.NoError(t, err)
	return v
}

func TestPredefinedValueRepository_Save(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPredefinedValueRepository(gdb)
	ctx := context.Background()

	t.Run("save and find by type and value", func(t *testing.T) {
		v := createTestValue(t, predefined.TypeCentrale, "Parc Solaire Sud")
		require.NoError(t, repo.Save(ctx, v))

		found, err := repo.FindByTypeAndValue(ctx, predefined.TypeCentrale, "Parc Solaire Sud")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, v.ID(), found.ID())
	})

	t.Run("duplicate value for the same type is rejected by the unique index", func(t *testing.T) {
		first := createTestValue(t, predefined.TypeEquipement, "Onduleur")
		require.NoError(t, repo.Save(ctx, first))

		duplicate := createTestValue(t, predefined.TypeEquipement, "Onduleur")
		err := repo.Save(ctx, duplicate)
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})

	t.Run("same value under another type is allowed", func(t *testing.T) {
		v := createTestValue(t, predefined.TypeCentrale, "Onduleur")
		assert.NoError(t, repo.Save(ctx, v))
	})
}

func TestPredefinedValueRepository_Listing(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPredefinedValueRepository(gdb)
	ctx := context.Background()

	seed := func(valueType predefined.ValueType, value string, sortOrder int, active bool) *predefined.Value {
		v := createTestValue(t, valueType, value)
		order := sortOrder
		isActive := active
		require.NoError(t, v.Apply(predefined.UpdateFields{SortOrder: &order, IsActive: &isActive}))
		require.NoError(t, repo.Save(ctx, v))
		return v
	}

	seed(predefined.TypeCentrale, "Beta", 2, true)
	seed(predefined.TypeCentrale, "Alpha", 1, true)
	seed(predefined.TypeCentrale, "Inactif", 0, false)
	seed(predefined.TypeEquipement, "Onduleur", 0, true)

	t.Run("list by type returns active entries ordered by sort order", func(t *testing.T) {
		values, err := repo.ListByType(ctx, predefined.TypeCentrale)
		require.NoError(t, err)
		require.Len(t, values, 2)
		assert.Equal(t, "Alpha", values[0].Value())
		assert.Equal(t, "Beta", values[1].Value())
	})

	t.Run("list all returns active entries of every type", func(t *testing.T) {
		values, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, values, 3)
	})
}

func TestPredefinedValueRepository_UpdateSortOrder(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPredefinedValueRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	a := createTestValue(t, predefined.TypeCentrale, "A")
	b := createTestValue(t, predefined.TypeCentrale, "B")
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	t.Run("reorder applies inside a transaction", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.UpdateSortOrder(txCtx, predefined.TypeCentrale, b.ID(), 0); err != nil {
				return err
			}
			return repo.UpdateSortOrder(txCtx, predefined.TypeCentrale, a.ID(), 1)
		})
		require.NoError(t, err)

		values, err := repo.ListByType(ctx, predefined.TypeCentrale)
		require.NoError(t, err)
		require.Len(t, values, 2)
		assert.Equal(t, "B", values[0].Value())
		assert.Equal(t, "A", values[1].Value())
	})

	t.Run("failed reorder rolls everything back", func(t *testing.T) {
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.UpdateSortOrder(txCtx, predefined.TypeCentrale, a.ID(), 0); err != nil {
				return err
			}
			return repo.UpdateSortOrder(txCtx, predefined.TypeCentrale, "missing-id", 1)
		})
		require.Error(t, err)

		values, err := repo.ListByType(ctx, predefined.TypeCentrale)
		require.NoError(t, err)
		require.Len(t, values, 2)
		assert.Equal(t, "B", values[0].Value())
	})

	t.Run("sort order update scoped to another type misses", func(t *testing.T) {
		err := repo.UpdateSortOrder(ctx, predefined.TypeEquipement, a.ID(), 5)
		assert.Error(t, err)
	})
}
