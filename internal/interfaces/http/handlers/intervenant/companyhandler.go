package intervenant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog/internal/application/intervenant/usecases"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,max=150"`
}

type UpdateCompanyRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=150"`
	IsActive *bool   `json:"isActive"`
}

type CompanyHandler struct {
	createUC usecases.CreateCompanyExecutor
	updateUC usecases.UpdateCompanyExecutor
	deleteUC usecases.DeleteCompanyExecutor
	getUC    usecases.GetCompanyExecutor
	listUC   usecases.ListCompaniesExecutor
	logger   logger.Interface
}

func NewCompanyHandler(
	createUC usecases.CreateCompanyExecutor,
	updateUC usecases.UpdateCompanyExecutor,
	deleteUC usecases.DeleteCompanyExecutor,
	getUC usecases.GetCompanyExecutor,
	listUC usecases.ListCompaniesExecutor,
) *CompanyHandler {
	return &CompanyHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create company", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCompanyCommand{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Company created successfully")
}

// UpdateCompany handles PUT /companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update company", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateCompanyCommand{
		ID:       c.Param("id"),
		Name:     req.Name,
		IsActive: req.IsActive,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company updated successfully", result)
}

// DeleteCompany handles DELETE /companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCompanyCommand{ID: c.Param("id")}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company deleted successfully", nil)
}

// GetCompany handles GET /companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCompanyQuery{ID: c.Param("id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCompaniesQuery{
		Page:  pagination.Page,
		Limit: pagination.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Companies, result.Total, result.Page, result.Limit)
}
