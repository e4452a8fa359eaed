package handler

import (
	"net/http"

	"github.com/csa-rae/gantt-api/internal/service"
	"go.uber.org/zap"
)

type GanttHandler struct {
	ganttService *service.GanttService
	logger       *zap.Logger
}

func NewGanttHandler(ganttService *service.GanttService, logger *zap.Logger) *GanttHandler {
	return &GanttHandler{
		ganttService: ganttService,
		logger:       logger,
	}
}

// @Summary Get Gantt chart data
// @Description Aggregates projects, subprojects and the three invoice tables
// @Description into the nested structure the Gantt frontend renders. Projects
// @Description are ordered by start date (undated last), children by numeric
// @Description status code. Read-only and idempotent; safe to retry.
// @Tags Gantt
// @Produce json
// @Success 200 {array} domain.ProjectNode
// @Failure 500 {object} domain.ErrorResponse
// @Router /gantt-data [get]
func (h *GanttHandler) GetChartData(w http.ResponseWriter, r *http.Request) {
	data, err := h.ganttService.BuildChart(r.Context())
	if err != nil {
		h.logger.Error("failed to build gantt chart data", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, data)
}
