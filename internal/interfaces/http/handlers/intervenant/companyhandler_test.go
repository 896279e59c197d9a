package intervenant

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/application/intervenant/dto"
	"sitelog/internal/application/intervenant/usecases"
	"sitelog/internal/interfaces/http/handlers/testutil"
	"sitelog/internal/shared/errors"
)

type mockCreateCompanyUC struct {
	result *dto.CompanyDTO
	err    error
}

func (m *mockCreateCompanyUC) Execute(_ context.Context, _ usecases.CreateCompanyCommand) (*dto.CompanyDTO, error) {
	return m.result, m.err
}

type mockUpdateCompanyUC struct {
	result *dto.CompanyDTO
	err    error
}

func (m *mockUpdateCompanyUC) Execute(_ context.Context, _ usecases.UpdateCompanyCommand) (*dto.CompanyDTO, error) {
	return m.result, m.err
}

type mockDeleteCompanyUC struct {
	err error
}

func (m *mockDeleteCompanyUC) Execute(_ context.Context, _ usecases.DeleteCompanyCommand) error {
	return m.err
}

type mockGetCompanyUC struct {
	result *usecases.GetCompanyResult
	err    error
}

func (m *mockGetCompanyUC) Execute(_ context.Context, _ usecases.GetCompanyQuery) (*usecases.GetCompanyResult, error) {
	return m.result, m.err
}

type mockListCompaniesUC struct {
	result *usecases.ListCompaniesResult
	err    error
}

func (m *mockListCompaniesUC) Execute(_ context.Context, _ usecases.ListCompaniesQuery) (*usecases.ListCompaniesResult, error) {
	return m.result, m.err
}

type companyTestDeps struct {
	createUC usecases.CreateCompanyExecutor
	updateUC usecases.UpdateCompanyExecutor
	deleteUC usecases.DeleteCompanyExecutor
	getUC    usecases.GetCompanyExecutor
	listUC   usecases.ListCompaniesExecutor
}

func newTestCompanyHandler(deps companyTestDeps) *CompanyHandler {
	return NewCompanyHandler(deps.createUC, deps.updateUC, deps.deleteUC, deps.getUC, deps.listUC)
}

func TestCompanyHandler_CreateCompany_Success(t *testing.T) {
	mockUC := &mockCreateCompanyUC{
		result: &dto.CompanyDTO{ID: "cmp-1", Name: "Vestas Service", IsActive: true},
	}
	handler := newTestCompanyHandler(companyTestDeps{createUC: mockUC})

	reqBody := CreateCompanyRequest{Name: "Vestas Service"}
	c, w := testutil.NewTestContext(http.MethodPost, "/companies", reqBody)
	testutil.SetAuthContext(c, "user-1", "write")

	handler.CreateCompany(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCompanyHandler_CreateCompany_MissingName(t *testing.T) {
	handler := newTestCompanyHandler(companyTestDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/companies", map[string]string{})
	testutil.SetAuthContext(c, "user-1", "write")

	handler.CreateCompany(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompanyHandler_GetCompany_WithIntervenants(t *testing.T) {
	mockUC := &mockGetCompanyUC{
		result: &usecases.GetCompanyResult{
			Company: &dto.CompanyDTO{ID: "cmp-1", Name: "Vestas Service", IsActive: true},
			Intervenants: []*dto.IntervenantDTO{
				{ID: "itv-1", Name: "Marc", Surname: "Lefevre", CompanyID: "cmp-1"},
			},
		},
	}
	handler := newTestCompanyHandler(companyTestDeps{getUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/companies/cmp-1", nil)
	testutil.SetAuthContext(c, "user-1", "read")
	testutil.SetURLParam(c, "id", "cmp-1")

	handler.GetCompany(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.Contains(t, string(resp.Data), `"Vestas Service"`)
	assert.Contains(t, string(resp.Data), `"itv-1"`)
}

func TestCompanyHandler_DeleteCompany_NotFound(t *testing.T) {
	mockUC := &mockDeleteCompanyUC{err: errors.NewNotFoundError("company not found")}
	handler := newTestCompanyHandler(companyTestDeps{deleteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/companies/missing", nil)
	testutil.SetAuthContext(c, "user-1", "write")
	testutil.SetURLParam(c, "id", "missing")

	handler.DeleteCompany(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompanyHandler_ListCompanies_Success(t *testing.T) {
	mockUC := &mockListCompaniesUC{
		result: &usecases.ListCompaniesResult{
			Companies: []*dto.CompanyDTO{{ID: "cmp-1", Name: "Vestas Service"}},
			Total:     1,
			Page:      1,
			Limit:     20,
			Pages:     1,
		},
	}
	handler := newTestCompanyHandler(companyTestDeps{listUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/companies", nil)
	testutil.SetAuthContext(c, "user-1", "read")

	handler.ListCompanies(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}
