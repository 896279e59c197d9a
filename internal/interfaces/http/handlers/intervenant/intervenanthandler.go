package intervenant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog/internal/application/intervenant/usecases"
	intervenantdomain "sitelog/internal/domain/intervenant"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type CreateIntervenantRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Surname   string `json:"surname" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"required,max=30"`
	Email     string `json:"email" binding:"omitempty,email"`
	Country   string `json:"country" binding:"max=100"`
	Type      string `json:"type" binding:"max=100"`
	CompanyID string `json:"companyId"`
}

type UpdateIntervenantRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Surname   *string `json:"surname" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=30"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Country   *string `json:"country" binding:"omitempty,max=100"`
	Type      *string `json:"type" binding:"omitempty,max=100"`
	CompanyID *string `json:"companyId"`
	IsActive  *bool   `json:"isActive"`
}

type IntervenantHandler struct {
	createUC usecases.CreateIntervenantExecutor
	updateUC usecases.UpdateIntervenantExecutor
	deleteUC usecases.DeleteIntervenantExecutor
	getUC    usecases.GetIntervenantExecutor
	listUC   usecases.ListIntervenantsExecutor
	logger   logger.Interface
}

func NewIntervenantHandler(
	createUC usecases.CreateIntervenantExecutor,
	updateUC usecases.UpdateIntervenantExecutor,
	deleteUC usecases.DeleteIntervenantExecutor,
	getUC usecases.GetIntervenantExecutor,
	listUC usecases.ListIntervenantsExecutor,
) *IntervenantHandler {
	return &IntervenantHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

// CreateIntervenant handles POST /intervenants
func (h *IntervenantHandler) CreateIntervenant(c *gin.Context) {
	var req CreateIntervenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create intervenant", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateIntervenantCommand{
		Name:      req.Name,
		Surname:   req.Surname,
		Phone:     req.Phone,
		Email:     req.Email,
		Country:   req.Country,
		Type:      req.Type,
		CompanyID: req.CompanyID,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Intervenant created successfully")
}

// UpdateIntervenant handles PUT /intervenants/:id
func (h *IntervenantHandler) UpdateIntervenant(c *gin.Context) {
	var req UpdateIntervenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update intervenant", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateIntervenantCommand{
		ID: c.Param("id"),
		Fields: intervenantdomain.UpdateFields{
			Name:            req.Name,
			Surname:         req.Surname,
			Phone:           req.Phone,
			Email:           req.Email,
			Country:         req.Country,
			IntervenantType: req.Type,
			CompanyID:       req.CompanyID,
			IsActive:        req.IsActive,
		},
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervenant updated successfully", result)
}

// DeleteIntervenant handles DELETE /intervenants/:id
func (h *IntervenantHandler) DeleteIntervenant(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteIntervenantCommand{ID: c.Param("id")}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervenant deleted successfully", nil)
}

// GetIntervenant handles GET /intervenants/:id
func (h *IntervenantHandler) GetIntervenant(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetIntervenantQuery{ID: c.Param("id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIntervenants handles GET /intervenants
func (h *IntervenantHandler) ListIntervenants(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListIntervenantsQuery{
		Page:  pagination.Page,
		Limit: pagination.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Intervenants, result.Total, result.Page, result.Limit)
}
