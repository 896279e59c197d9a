package predefined

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog/internal/application/predefined/usecases"
	predefineddomain "sitelog/internal/domain/predefined"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type CreateValueRequest struct {
	Type        string `json:"type" binding:"required"`
	Value       string `json:"value" binding:"required,max=150"`
	Description string `json:"description" binding:"max=500"`
}

type UpdateValueRequest struct {
	Value         *string `json:"value" binding:"omitempty,max=150"`
	Description   *string `json:"description" binding:"omitempty,max=500"`
	Nickname      *string `json:"nickname" binding:"omitempty,max=100"`
	EquipmentType *string `json:"equipmentType" binding:"omitempty,max=100"`
	ParentID      *string `json:"parentId"`
	IsActive      *bool   `json:"isActive"`
	SortOrder     *int    `json:"sortOrder"`
}

type ReorderValuesRequest struct {
	OrderedIDs []string `json:"orderedIds" binding:"required,min=1"`
}

type PredefinedValueHandler struct {
	createUC     usecases.CreateValueExecutor
	updateUC     usecases.UpdateValueExecutor
	deleteUC     usecases.DeleteValueExecutor
	deactivateUC usecases.DeactivateValueExecutor
	listByTypeUC usecases.ListValuesByTypeExecutor
	listAllUC    usecases.ListAllValuesExecutor
	reorderUC    usecases.ReorderValuesExecutor
	logger       logger.Interface
}

func NewPredefinedValueHandler(
	createUC usecases.CreateValueExecutor,
	updateUC usecases.UpdateValueExecutor,
	deleteUC usecases.DeleteValueExecutor,
	deactivateUC usecases.DeactivateValueExecutor,
	listByTypeUC usecases.ListValuesByTypeExecutor,
	listAllUC usecases.ListAllValuesExecutor,
	reorderUC usecases.ReorderValuesExecutor,
) *PredefinedValueHandler {
	return &PredefinedValueHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		deactivateUC: deactivateUC,
		listByTypeUC: listByTypeUC,
		listAllUC:    listAllUC,
		reorderUC:    reorderUC,
		logger:       logger.NewLogger(),
	}
}

// CreateValue handles POST /predefined
func (h *PredefinedValueHandler) CreateValue(c *gin.Context) {
	var req CreateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create predefined value", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateValueCommand{
		Type:        req.Type,
		Value:       req.Value,
		Description: req.Description,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Predefined value created successfully")
}

// UpdateValue handles PUT /predefined/:id
func (h *PredefinedValueHandler) UpdateValue(c *gin.Context) {
	var req UpdateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update predefined value", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateValueCommand{
		ID: c.Param("id"),
		Fields: predefineddomain.UpdateFields{
			Value:         req.Value,
			Description:   req.Description,
			Nickname:      req.Nickname,
			EquipmentType: req.EquipmentType,
			ParentID:      req.ParentID,
			IsActive:      req.IsActive,
			SortOrder:     req.SortOrder,
		},
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Predefined value updated successfully", result)
}

// DeleteValue handles DELETE /predefined/:id
func (h *PredefinedValueHandler) DeleteValue(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteValueCommand{ID: c.Param("id")}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Predefined value deleted successfully", nil)
}

// DeactivateValue handles PUT /predefined/:id/deactivate
func (h *PredefinedValueHandler) DeactivateValue(c *gin.Context) {
	if err := h.deactivateUC.Execute(c.Request.Context(), usecases.DeleteValueCommand{ID: c.Param("id")}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Predefined value deactivated successfully", nil)
}

// ListValuesByType handles GET /predefined/:type
func (h *PredefinedValueHandler) ListValuesByType(c *gin.Context) {
	query := usecases.ListValuesByTypeQuery{Type: c.Param("type")}

	result, err := h.listByTypeUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAllValues handles GET /predefined
func (h *PredefinedValueHandler) ListAllValues(c *gin.Context) {
	result, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReorderValues handles POST /predefined/:type/reorder
func (h *PredefinedValueHandler) ReorderValues(c *gin.Context) {
	var req ReorderValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reorder predefined values", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.ReorderValuesCommand{
		Type:       c.Param("type"),
		OrderedIDs: req.OrderedIDs,
	}

	if err := h.reorderUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Predefined values reordered successfully", nil)
}
