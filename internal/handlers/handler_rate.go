package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for exchange rates.
type rateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newRateHandler(rs portssvc.ExchangeRateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers exchange rate routes. Reads are available to
// any authenticated caller; writes are admin only.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("/:currency_code", h.getRate)
		rates.PUT("/:currency_code", middleware.RequireAdmin(), h.upsertRate)
	}
}

// getRate godoc
// @Summary Get the stored rate for a currency
// @Description Rate is units of the currency per 1 USD.
// @Tags rates
// @Produce  json
// @Param   currency_code path string true "ISO currency code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Rate unavailable"
// @Security BearerAuth
// @Router /rates/{currency_code} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := strings.ToUpper(c.Param("currency_code"))

	rate, err := h.rateService.GetRate(c.Request.Context(), currencyCode)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"currencyCode": currencyCode, "ratePerUSD": rate})
}

// upsertRate godoc
// @Summary Store or replace the rate for a currency (admin)
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   currency_code path string true "ISO currency code"
// @Param   rate body dto.UpsertRateRequest true "Rate per 1 USD"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid rate or USD override attempt"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /rates/{currency_code} [put]
func (h *rateHandler) upsertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	currencyCode := strings.ToUpper(c.Param("currency_code"))
	rate, err := h.rateService.UpsertRate(c.Request.Context(), currencyCode, req, actor)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Exchange rate upserted", slog.String("currency_code", currencyCode))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
