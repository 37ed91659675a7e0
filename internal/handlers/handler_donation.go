package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/middleware"
	"github.com/gin-gonic/gin"
)

// donationHandler handles HTTP requests for the donation ledger.
type donationHandler struct {
	donationService portssvc.DonationSvcFacade
}

func newDonationHandler(ds portssvc.DonationSvcFacade) *donationHandler {
	return &donationHandler{donationService: ds}
}

// registerDonationRoutes registers donation ledger routes.
func registerDonationRoutes(rg *gin.RouterGroup, donationService portssvc.DonationSvcFacade) {
	h := newDonationHandler(donationService)

	donations := rg.Group("/donations")
	{
		donations.POST("", h.createDonation)
		donations.GET("", middleware.RequireAdmin(), h.listDonations)
		donations.GET("/my", h.listMyDonations)
		donations.GET("/:donation_id", h.getDonation)
		donations.DELETE("/:donation_id", middleware.RequireAdmin(), h.deleteDonation)
		donations.PATCH("/:donation_id/subscription", h.updateSubscription)
	}
}

// createDonation godoc
// @Summary Record a donation
// @Description Validates allocations, normalizes the amount to USD, computes
// @Description fees and persists the donation atomically with its target
// @Description total increments.
// @Tags donations
// @Accept  json
// @Produce  json
// @Param   donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.DonationResponse
// @Failure 400 {object} map[string]string "Invalid allocation, currency or card metadata"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /donations [post]
func (h *donationHandler) createDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDonation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	donation, err := h.donationService.CreateDonation(c.Request.Context(), req, actor)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Donation recorded", slog.String("donation_id", donation.DonationID))
	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

// getDonation godoc
// @Summary Get a donation by ID
// @Description Donors may only read their own donations; admins may read any.
// @Tags donations
// @Produce  json
// @Param   donation_id path string true "Donation ID"
// @Success 200 {object} dto.DonationResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /donations/{donation_id} [get]
func (h *donationHandler) getDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	donation, err := h.donationService.GetDonationByID(c.Request.Context(), c.Param("donation_id"), actor)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// listDonations godoc
// @Summary List all donations (admin)
// @Tags donations
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListDonationsResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /donations [get]
func (h *donationHandler) listDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDonationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, err := h.donationService.ListDonations(c.Request.Context(), params, actor)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// listMyDonations godoc
// @Summary List the caller's own donations
// @Tags donations
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListDonationsResponse
// @Security BearerAuth
// @Router /donations/my [get]
func (h *donationHandler) listMyDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDonationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, err := h.donationService.ListDonationsByDonor(c.Request.Context(), actor.UserID, params, actor)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// deleteDonation godoc
// @Summary Delete a donation (admin)
// @Description Removes the donation and reverses its effect on campaign and
// @Description category totals in one transaction.
// @Tags donations
// @Param   donation_id path string true "Donation ID"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /donations/{donation_id} [delete]
func (h *donationHandler) deleteDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	donationID := c.Param("donation_id")
	if err := h.donationService.DeleteDonation(c.Request.Context(), donationID, actor); err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Donation deleted", slog.String("donation_id", donationID))
	c.Status(http.StatusNoContent)
}

// updateSubscription godoc
// @Summary Update a monthly donation's subscription
// @Description Applies a status transition and/or billing day change. Owners
// @Description may pause and resume; only admins may cancel.
// @Tags donations
// @Accept  json
// @Produce  json
// @Param   donation_id path string true "Donation ID"
// @Param   update body dto.UpdateSubscriptionRequest true "Subscription change"
// @Success 200 {object} dto.DonationResponse
// @Failure 400 {object} map[string]string "Invalid transition or billing day"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /donations/{donation_id}/subscription [patch]
func (h *donationHandler) updateSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSubscription", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	donation, err := h.donationService.UpdateSubscription(c.Request.Context(), c.Param("donation_id"), req, actor)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Subscription updated", slog.String("donation_id", donation.DonationID), slog.String("status", string(donation.Status)))
	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}
