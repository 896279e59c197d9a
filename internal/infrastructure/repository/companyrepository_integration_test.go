package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/domain/intervenant"
)

func createTestIntervenantProfile(t *testing.T, name, surname, companyID string) *intervenant.Intervenant {
	i, err := intervenant.NewIntervenant(name, surname, "+33600000000", "", "France", "technicien", companyID)
	require.NoError(t, err)
	return i
}

func TestCompanyRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	companyRepo := NewCompanyRepository(gdb)
	intervenantRepo := NewIntervenantRepository(gdb)
	ctx := context.Background()

	t.Run("deleting a company detaches its intervenants", func(t *testing.T) {
		company, err := intervenant.NewCompany("Eolia Services")
		require.NoError(t, err)
		require.NoError(t, companyRepo.Save(ctx, company))

		member := createTestIntervenantProfile(t, "Jean", "Dupont", company.ID())
		require.NoError(t, intervenantRepo.Save(ctx, member))

		require.NoError(t, companyRepo.Delete(ctx, company.ID()))

		found, err := companyRepo.FindByID(ctx, company.ID())
		require.NoError(t, err)
		assert.Nil(t, found)

		kept, err := intervenantRepo.FindByID(ctx, member.ID())
		require.NoError(t, err)
		require.NotNil(t, kept)
		assert.Empty(t, kept.CompanyID())
	})

	t.Run("deleting an unknown company fails without touching intervenants", func(t *testing.T) {
		member := createTestIntervenantProfile(t, "Marie", "Martin", "company-x")
		require.NoError(t, intervenantRepo.Save(ctx, member))

		err := companyRepo.Delete(ctx, "does-not-exist")
		require.Error(t, err)

		kept, err := intervenantRepo.FindByID(ctx, member.ID())
		require.NoError(t, err)
		assert.Equal(t, "company-x", kept.CompanyID())
	})
}

func TestCompanyRepository_FindIntervenants(t *testing.T) {
	gdb := setupTestDB(t)
	companyRepo := NewCompanyRepository(gdb)
	intervenantRepo := NewIntervenantRepository(gdb)
	ctx := context.Background()

	company, err := intervenant.NewCompany("Solartech")
	require.NoError(t, err)
	require.NoError(t, companyRepo.Save(ctx, company))

	require.NoError(t, intervenantRepo.Save(ctx, createTestIntervenantProfile(t, "Paul", "Bernard", company.ID())))
	require.NoError(t, intervenantRepo.Save(ctx, createTestIntervenantProfile(t, "Luc", "Aubert", company.ID())))
	require.NoError(t, intervenantRepo.Save(ctx, createTestIntervenantProfile(t, "Anne", "Zimmer", "")))

	members, err := companyRepo.FindIntervenants(ctx, company.ID())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Aubert", members[0].Surname())
	assert.Equal(t, "Bernard", members[1].Surname())
}

func TestIntervenantRepository_ListActive(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIntervenantRepository(gdb)
	ctx := context.Background()

	active := createTestIntervenantProfile(t, "Jean", "Dupont", "")
	require.NoError(t, repo.Save(ctx, active))

	inactive := createTestIntervenantProfile(t, "Marc", "Petit", "")
	require.NoError(t, inactive.Apply(intervenant.UpdateFields{IsActive: boolPtr(false)}))
	require.NoError(t, repo.Save(ctx, inactive))

	members, total, err := repo.ListActive(ctx, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, members, 1)
	assert.Equal(t, "Dupont", members[0].Surname())
}
