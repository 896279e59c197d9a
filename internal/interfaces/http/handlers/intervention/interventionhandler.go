package intervention

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sitelog/internal/application/intervention/usecases"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type InterventionHandler struct {
	createUC  usecases.CreateInterventionExecutor
	updateUC  usecases.UpdateInterventionExecutor
	deleteUC  usecases.DeleteInterventionExecutor
	archiveUC usecases.ArchiveInterventionExecutor
	restoreUC usecases.RestoreInterventionExecutor
	getUC     usecases.GetInterventionExecutor
	listUC    usecases.ListInterventionsExecutor
	statsUC   usecases.GetInterventionStatsExecutor
	exportUC  usecases.ExportInterventionsExecutor
	logger    logger.Interface
}

func NewInterventionHandler(
	createUC usecases.CreateInterventionExecutor,
	updateUC usecases.UpdateInterventionExecutor,
	deleteUC usecases.DeleteInterventionExecutor,
	archiveUC usecases.ArchiveInterventionExecutor,
	restoreUC usecases.RestoreInterventionExecutor,
	getUC usecases.GetInterventionExecutor,
	listUC usecases.ListInterventionsExecutor,
	statsUC usecases.GetInterventionStatsExecutor,
	exportUC usecases.ExportInterventionsExecutor,
) *InterventionHandler {
	return &InterventionHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		archiveUC: archiveUC,
		restoreUC: restoreUC,
		getUC:     getUC,
		listUC:    listUC,
		statsUC:   statsUC,
		exportUC:  exportUC,
		logger:    logger.NewLogger(),
	}
}

// CreateIntervention handles POST /interventions
func (h *InterventionHandler) CreateIntervention(c *gin.Context) {
	var req CreateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create intervention", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateInterventionCommand{
		Params: req.ToParams(),
		Actor:  actorFromContext(c),
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Intervention created successfully")
}

// UpdateIntervention handles PUT /interventions/:id
func (h *InterventionHandler) UpdateIntervention(c *gin.Context) {
	var req UpdateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update intervention", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateInterventionCommand{
		ID:     c.Param("id"),
		Update: req.ToUpdateParams(),
		Actor:  actorFromContext(c),
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervention updated successfully", result)
}

// DeleteIntervention handles DELETE /interventions/:id
func (h *InterventionHandler) DeleteIntervention(c *gin.Context) {
	cmd := usecases.DeleteInterventionCommand{
		ID:    c.Param("id"),
		Actor: actorFromContext(c),
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervention deleted successfully", result)
}

// ArchiveIntervention handles POST /interventions/:id/archive
func (h *InterventionHandler) ArchiveIntervention(c *gin.Context) {
	cmd := usecases.ArchiveInterventionCommand{
		ID:    c.Param("id"),
		Actor: actorFromContext(c),
	}

	result, err := h.archiveUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervention archived successfully", result)
}

// RestoreIntervention handles POST /interventions/:id/restore
func (h *InterventionHandler) RestoreIntervention(c *gin.Context) {
	cmd := usecases.RestoreInterventionCommand{
		ID:    c.Param("id"),
		Actor: actorFromContext(c),
	}

	result, err := h.restoreUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intervention restored successfully", result)
}

// GetIntervention handles GET /interventions/:id
func (h *InterventionHandler) GetIntervention(c *gin.Context) {
	query := usecases.GetInterventionQuery{ID: c.Param("id")}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListInterventions handles GET /interventions
func (h *InterventionHandler) ListInterventions(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListInterventionsQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"interventions": result.Interventions,
		"total":         result.Total,
		"pages":         result.Pages,
	})
}

// GetStats handles GET /interventions/stats
func (h *InterventionHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportInterventions handles GET /interventions/export/csv
func (h *InterventionHandler) ExportInterventions(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data, err := h.exportUC.Execute(c.Request.Context(), usecases.ExportInterventionsQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := fmt.Sprintf("interventions_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
