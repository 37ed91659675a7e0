package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/apperrors"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/middleware"
)

// campaignService manages fundraising campaigns. It never touches
// current_amount; only the donation ledger does that.
type campaignService struct {
	campaignRepo portsrepo.CampaignRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(campaignRepo portsrepo.CampaignRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.CampaignSvcFacade {
	return &campaignService{campaignRepo: campaignRepo, categoryRepo: categoryRepo}
}

var _ portssvc.CampaignSvcFacade = (*campaignService)(nil)

func (s *campaignService) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return s.campaignRepo.FindCampaignByID(ctx, campaignID)
}

func (s *campaignService) ListCampaigns(ctx context.Context, onlyActive bool) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// CreateCampaign persists a new campaign, admin only.
func (s *campaignService) CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest, actor domain.Actor) (*domain.Campaign, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may create campaigns", apperrors.ErrForbidden)
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("category %s: %w", *req.CategoryID, err)
		}
	}

	now := time.Now().UTC()
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	campaign := domain.Campaign{
		CampaignID:   uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		IsActive:     isActive,
		CategoryID:   req.CategoryID,
		Priority:     req.Priority,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		logger.Error("Failed to save campaign", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save campaign: %w", err)
	}

	logger.Info("Campaign created", slog.String("campaign_id", campaign.CampaignID))
	return &campaign, nil
}

// UpdateCampaign applies partial updates, admin only.
func (s *campaignService) UpdateCampaign(ctx context.Context, campaignID string, req dto.UpdateCampaignRequest, actor domain.Actor) (*domain.Campaign, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may update campaigns", apperrors.ErrForbidden)
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		campaign.Title = *req.Title
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.TargetAmount != nil {
		campaign.TargetAmount = *req.TargetAmount
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("category %s: %w", *req.CategoryID, err)
		}
		campaign.CategoryID = req.CategoryID
	}
	if req.Priority != nil {
		campaign.Priority = *req.Priority
	}
	if req.IsActive != nil {
		campaign.IsActive = *req.IsActive
	}
	campaign.LastUpdatedAt = time.Now().UTC()
	campaign.LastUpdatedBy = actor.UserID

	if err := s.campaignRepo.UpdateCampaign(ctx, *campaign); err != nil {
		logger.Error("Failed to update campaign", slog.String("campaign_id", campaignID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update campaign %s: %w", campaignID, err)
	}

	return campaign, nil
}

// DeleteCampaign hard-deletes a campaign, admin only. Without force the
// repository refuses when donation allocations still reference it.
func (s *campaignService) DeleteCampaign(ctx context.Context, campaignID string, force bool, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins may delete campaigns", apperrors.ErrForbidden)
	}

	if err := s.campaignRepo.DeleteCampaign(ctx, campaignID, force); err != nil {
		return err
	}

	logger.Info("Campaign deleted", slog.String("campaign_id", campaignID), slog.Bool("force", force))
	return nil
}
