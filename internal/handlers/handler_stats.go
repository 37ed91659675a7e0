package handlers

import (
	"net/http"

	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statsHandler serves the dashboard aggregates.
type statsHandler struct {
	statsService portssvc.StatsSvcFacade
}

func newStatsHandler(ss portssvc.StatsSvcFacade) *statsHandler {
	return &statsHandler{statsService: ss}
}

// registerStatsRoutes registers the admin dashboard statistics routes.
func registerStatsRoutes(rg *gin.RouterGroup, statsService portssvc.StatsSvcFacade) {
	h := newStatsHandler(statsService)

	stats := rg.Group("/stats", middleware.RequireAdmin())
	{
		stats.GET("/chart", h.getChartSeries)
		stats.GET("/summary", h.getSummary)
	}
}

// getChartSeries godoc
// @Summary Donation chart series (admin)
// @Description Returns one zero-filled bucket per UTC day in the resolved
// @Description period. Explicit startDate/endDate override the period.
// @Description A campaign filter takes precedence over a category filter.
// @Tags stats
// @Produce  json
// @Param   period query string false "day, week, month or all" default(day)
// @Param   startDate query string false "Inclusive start (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end (YYYY-MM-DD)"
// @Param   campaignID query string false "Filter to one campaign"
// @Param   categoryID query string false "Filter to one category"
// @Success 200 {object} dto.ChartSeriesResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /stats/chart [get]
func (h *statsHandler) getChartSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	series, err := h.statsService.GetChartSeries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// getSummary godoc
// @Summary Donation summary aggregates (admin)
// @Description Returns platform totals, one-time/monthly breakdowns,
// @Description subscription totals, allocation totals per target kind and
// @Description the most recent donations for the resolved period.
// @Tags stats
// @Produce  json
// @Param   period query string false "day, week, month or all" default(day)
// @Param   startDate query string false "Inclusive start (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end (YYYY-MM-DD)"
// @Param   campaignID query string false "Filter to one campaign"
// @Param   categoryID query string false "Filter to one category"
// @Success 200 {object} dto.StatsSummaryResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /stats/summary [get]
func (h *statsHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.statsService.GetStatsSummary(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
