package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/middleware"
	"github.com/gin-gonic/gin"
)

// campaignHandler handles HTTP requests related to campaigns.
type campaignHandler struct {
	campaignService portssvc.CampaignSvcFacade
}

func newCampaignHandler(cs portssvc.CampaignSvcFacade) *campaignHandler {
	return &campaignHandler{campaignService: cs}
}

// registerCampaignRoutes registers public campaign reads on publicRg and
// admin-gated writes on authRg.
func registerCampaignRoutes(publicRg, authRg *gin.RouterGroup, campaignService portssvc.CampaignSvcFacade) {
	h := newCampaignHandler(campaignService)

	public := publicRg.Group("/campaigns")
	{
		public.GET("", h.listCampaigns)
		public.GET("/:campaign_id", h.getCampaign)
	}

	admin := authRg.Group("/campaigns", middleware.RequireAdmin())
	{
		admin.POST("", h.createCampaign)
		admin.PUT("/:campaign_id", h.updateCampaign)
		admin.DELETE("/:campaign_id", h.deleteCampaign)
	}
}

// listCampaigns godoc
// @Summary List campaigns
// @Description Lists campaigns ordered by priority. Pass onlyActive=true to
// @Description hide inactive ones.
// @Tags campaigns
// @Produce  json
// @Param   onlyActive query bool false "Only active campaigns"
// @Success 200 {array} dto.CampaignResponse
// @Router /campaigns [get]
func (h *campaignHandler) listCampaigns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	onlyActive, _ := strconv.ParseBool(c.DefaultQuery("onlyActive", "false"))

	campaigns, err := h.campaignService.ListCampaigns(c.Request.Context(), onlyActive)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponses(campaigns))
}

// getCampaign godoc
// @Summary Get a campaign by ID
// @Tags campaigns
// @Produce  json
// @Param   campaign_id path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 404 {object} map[string]string "Not found"
// @Router /campaigns/{campaign_id} [get]
func (h *campaignHandler) getCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	campaign, err := h.campaignService.GetCampaignByID(c.Request.Context(), c.Param("campaign_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

// createCampaign godoc
// @Summary Create a campaign (admin)
// @Tags campaigns
// @Accept  json
// @Produce  json
// @Param   campaign body dto.CreateCampaignRequest true "Campaign details"
// @Success 201 {object} dto.CampaignResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /campaigns [post]
func (h *campaignHandler) createCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCampaign", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), req, actor)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Campaign created", slog.String("campaign_id", campaign.CampaignID))
	c.JSON(http.StatusCreated, dto.ToCampaignResponse(campaign))
}

// updateCampaign godoc
// @Summary Update a campaign (admin)
// @Description Applies partial updates. The raised amount is never updatable
// @Description from here.
// @Tags campaigns
// @Accept  json
// @Produce  json
// @Param   campaign_id path string true "Campaign ID"
// @Param   campaign body dto.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} dto.CampaignResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /campaigns/{campaign_id} [put]
func (h *campaignHandler) updateCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCampaign", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Request.Context(), c.Param("campaign_id"), req, actor)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

// deleteCampaign godoc
// @Summary Delete a campaign (admin)
// @Description Without force, refuses when donations reference the campaign.
// @Description With force=true, referencing allocation lines and donations
// @Description left with no other allocations are removed in the same
// @Description transaction.
// @Tags campaigns
// @Param   campaign_id path string true "Campaign ID"
// @Param   force query bool false "Cascade delete referencing allocations"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Donations reference this campaign"
// @Security BearerAuth
// @Router /campaigns/{campaign_id} [delete]
func (h *campaignHandler) deleteCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	campaignID := c.Param("campaign_id")

	if err := h.campaignService.DeleteCampaign(c.Request.Context(), campaignID, force, actor); err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Campaign deleted", slog.String("campaign_id", campaignID), slog.Bool("force", force))
	c.Status(http.StatusNoContent)
}
