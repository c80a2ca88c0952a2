package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/accountbook_service/internal/core/chart"
	portssvc "github.com/SscSPs/accountbook_service/internal/core/ports/services"
	"github.com/SscSPs/accountbook_service/internal/dto"
	"github.com/SscSPs/accountbook_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chartHandler handles HTTP requests related to standard charts of accounts.
type chartHandler struct {
	chartService portssvc.ChartSvcFacade
}

func newChartHandler(cs portssvc.ChartSvcFacade) *chartHandler {
	return &chartHandler{chartService: cs}
}

// RegisterChartRoutes registers the chart preview routes.
func RegisterChartRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	h := newChartHandler(chartService)

	charts := rg.Group("/charts")
	{
		charts.GET("", h.listChartSystems)
		charts.GET("/:system/seed", h.getChartSeed)
	}
}

// listChartSystems godoc
// @Summary List chart systems
// @Description Lists the accounting systems a standard chart of accounts is available for
// @Tags charts
// @Produce json
// @Success 200 {object} dto.ListChartSystemsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list chart systems"
// @Security BearerAuth
// @Router /charts [get]
func (h *chartHandler) listChartSystems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	systems, err := h.chartService.ListChartSystems(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list chart systems")
		return
	}
	if systems == nil {
		systems = []string{}
	}
	c.JSON(http.StatusOK, dto.ListChartSystemsResponse{Systems: systems})
}

// getChartSeed godoc
// @Summary Preview a chart seed
// @Description Flattens and classifies the chart of an accounting system without persisting it
// @Tags charts
// @Produce json
// @Param system path string true "Accounting system, e.g. IFRS"
// @Param strategy query string false "Traversal strategy" Enums(bfs, dfs)
// @Success 200 {object} dto.ChartSeedResponse
// @Failure 400 {object} map[string]string "Invalid strategy"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown accounting system"
// @Failure 500 {object} map[string]string "Failed to generate chart seed"
// @Security BearerAuth
// @Router /charts/{system}/seed [get]
func (h *chartHandler) getChartSeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	system := c.Param("system")

	var params dto.ChartSeedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "Invalid query parameters")
		return
	}
	// Empty strategy leaves the configured default to the service.
	strategy := chart.Strategy(params.Strategy)

	logger = logger.With(slog.String("system", system))
	logger.Info("Received request to preview chart seed", slog.String("strategy", params.Strategy))

	res, err := h.chartService.GenerateSeed(c.Request.Context(), system, strategy)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate chart seed")
		return
	}

	c.JSON(http.StatusOK, dto.ToChartSeedResponse(system, res))
}
