package services

import (
	"context"
	"errors"
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
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/money"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAllocation    = errors.New("donation must have at least one allocation")
	ErrTargetNotFound     = errors.New("allocation target not found")
	ErrCampaignInactive   = errors.New("campaign is not active")
	ErrMissingCardDetails = errors.New("card payment metadata incomplete")
	ErrInvalidStatus      = errors.New("invalid subscription status")
	ErrInvalidOperation   = errors.New("only monthly donations can be updated")
)

// cardMetaFields are the payment metadata keys a CARD donation must carry.
// Presence only; no card validation logic lives here.
var cardMetaFields = []string{"cardNumber", "cardExpiry", "cardCVV", "cardHolderName"}

const defaultListLimit = 20
const maxListLimit = 100

// donationService is the transactional core of the ledger. It is the only
// code path that creates or deletes donations, and through the repository
// the only path that adjusts campaign/category running totals.
type donationService struct {
	donationRepo portsrepo.DonationRepositoryFacade
	campaignRepo portsrepo.CampaignReader
	categoryRepo portsrepo.CategoryReader
	rates        portssvc.RateProvider
	events       portssvc.EventPublisher
	now          func() time.Time
}

// NewDonationService creates a new DonationService. events may be nil when
// no broker is configured.
func NewDonationService(
	donationRepo portsrepo.DonationRepositoryFacade,
	campaignRepo portsrepo.CampaignReader,
	categoryRepo portsrepo.CategoryReader,
	rates portssvc.RateProvider,
	events portssvc.EventPublisher,
) portssvc.DonationSvcFacade {
	return &donationService{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		categoryRepo: categoryRepo,
		rates:        rates,
		events:       events,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

type ledgerOperation int

const (
	opRead ledgerOperation = iota
	opDelete
	opUpdateSubscription
)

// authorize is the single admin-vs-donor gate for donation operations.
// Admins are unrestricted; donors are scoped to their own rows. The result
// deliberately says nothing about whether the row exists.
func (s *donationService) authorize(actor domain.Actor, op ledgerOperation, donorID string) error {
	if actor.IsAdmin() {
		return nil
	}
	if op == opDelete {
		return fmt.Errorf("%w: only admins may delete donations", apperrors.ErrForbidden)
	}
	if actor.UserID != donorID {
		return apperrors.ErrForbidden
	}
	return nil
}

// validateAllocations is the advisory gate before the write transaction.
// Target existence is checked with one batched query per target kind.
func (s *donationService) validateAllocations(ctx context.Context, campaignAllocs []dto.CampaignAllocationInput, categoryAllocs []dto.CategoryAllocationInput) error {
	if len(campaignAllocs) == 0 && len(categoryAllocs) == 0 {
		return ErrEmptyAllocation
	}

	if len(campaignAllocs) > 0 {
		ids := make([]string, 0, len(campaignAllocs))
		for _, a := range campaignAllocs {
			ids = append(ids, a.CampaignID)
		}
		campaigns, err := s.campaignRepo.FindCampaignsByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to fetch campaigns for validation: %w", err)
		}
		for _, a := range campaignAllocs {
			campaign, ok := campaigns[a.CampaignID]
			if !ok {
				return fmt.Errorf("%w: campaign %s", ErrTargetNotFound, a.CampaignID)
			}
			if !campaign.IsActive {
				return fmt.Errorf("%w: campaign %s", ErrCampaignInactive, a.CampaignID)
			}
		}
	}

	if len(categoryAllocs) > 0 {
		ids := make([]string, 0, len(categoryAllocs))
		for _, a := range categoryAllocs {
			ids = append(ids, a.CategoryID)
		}
		categories, err := s.categoryRepo.FindCategoriesByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to fetch categories for validation: %w", err)
		}
		for _, a := range categoryAllocs {
			if _, ok := categories[a.CategoryID]; !ok {
				return fmt.Errorf("%w: category %s", ErrTargetNotFound, a.CategoryID)
			}
		}
	}

	return nil
}

// CreateDonation validates the request, normalizes amounts to USD, computes
// fees and persists the donation with its allocation lines and target
// increments in one transaction.
func (s *donationService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest, actor domain.Actor) (*domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateAllocations(ctx, req.CampaignAllocations, req.CategoryAllocations); err != nil {
		return nil, err
	}

	if req.PaymentMethod == domain.PaymentCard {
		for _, field := range cardMetaFields {
			if req.PaymentMeta[field] == "" {
				return nil, fmt.Errorf("%w: missing %s", ErrMissingCardDetails, field)
			}
		}
	}

	rate, err := s.rates.GetRate(ctx, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	now := s.now()
	donationID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}

	// Base amount is the sum of the allocation lines; per-line USD values
	// stay unrounded so increments and the recorded base agree exactly.
	baseAmount := decimal.Zero
	baseAmountUSD := decimal.Zero
	campaignDeltas := make(map[string]decimal.Decimal)
	categoryDeltas := make(map[string]decimal.Decimal)

	items := make([]domain.DonationItem, 0, len(req.CampaignAllocations))
	for _, a := range req.CampaignAllocations {
		amountUSD := a.Amount.Div(rate)
		baseAmount = baseAmount.Add(a.Amount)
		baseAmountUSD = baseAmountUSD.Add(amountUSD)
		campaignDeltas[a.CampaignID] = campaignDeltas[a.CampaignID].Add(amountUSD)
		items = append(items, domain.DonationItem{
			ItemID:      uuid.NewString(),
			DonationID:  donationID,
			CampaignID:  a.CampaignID,
			Amount:      a.Amount,
			AmountUSD:   amountUSD,
			AuditFields: audit,
		})
	}

	categoryItems := make([]domain.DonationCategoryItem, 0, len(req.CategoryAllocations))
	for _, a := range req.CategoryAllocations {
		amountUSD := a.Amount.Div(rate)
		baseAmount = baseAmount.Add(a.Amount)
		baseAmountUSD = baseAmountUSD.Add(amountUSD)
		categoryDeltas[a.CategoryID] = categoryDeltas[a.CategoryID].Add(amountUSD)
		categoryItems = append(categoryItems, domain.DonationCategoryItem{
			ItemID:      uuid.NewString(),
			DonationID:  donationID,
			CategoryID:  a.CategoryID,
			Amount:      a.Amount,
			AmountUSD:   amountUSD,
			AuditFields: audit,
		})
	}

	fees, totalAmount := money.ComputeTotals(baseAmount, req.TeamSupport, req.CoverFees)

	donation := domain.Donation{
		DonationID:    donationID,
		DonorID:       actor.UserID,
		CurrencyCode:  req.CurrencyCode,
		Amount:        baseAmount,
		AmountUSD:     baseAmountUSD,
		TeamSupport:   req.TeamSupport,
		CoverFees:     req.CoverFees,
		Fees:          fees,
		TotalAmount:   totalAmount,
		Type:          req.Type,
		Status:        domain.StatusActive,
		PaymentMethod: req.PaymentMethod,
		PaymentMeta:   req.PaymentMeta,
		Items:         items,
		CategoryItems: categoryItems,
		AuditFields:   audit,
	}

	if donation.IsMonthly() {
		day := now.Day()
		if req.BillingDay != nil {
			day = *req.BillingDay
		}
		day = domain.ClampBillingDay(day)
		donation.BillingDay = &day

		lastBilling := now
		nextBilling := domain.AddCalendarMonth(now)
		donation.LastBillingDate = &lastBilling
		donation.NextBillingDate = &nextBilling
	}

	if err := s.donationRepo.SaveDonation(ctx, donation, campaignDeltas, categoryDeltas); err != nil {
		logger.Error("Failed to save donation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save donation: %w", err)
	}

	logger.Info("Donation created",
		slog.String("donation_id", donationID),
		slog.String("type", string(donation.Type)),
		slog.String("total", totalAmount.String()),
	)

	if s.events != nil {
		s.events.PublishDonationCreated(ctx, &donation)
	}

	return &donation, nil
}

// DeleteDonation is admin only. The repository reverses every allocation's
// effect on its target before removing the row, all in one transaction.
func (s *donationService) DeleteDonation(ctx context.Context, donationID string, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorize(actor, opDelete, ""); err != nil {
		return err
	}

	if err := s.donationRepo.DeleteDonation(ctx, donationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete donation", slog.String("donation_id", donationID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete donation %s: %w", donationID, err)
	}

	logger.Info("Donation deleted", slog.String("donation_id", donationID))

	if s.events != nil {
		s.events.PublishDonationDeleted(ctx, donationID)
	}

	return nil
}

// UpdateSubscription applies a lifecycle transition and/or billing day
// change. The mutation runs against a freshly read, row-locked donation so
// concurrent updates serialize.
func (s *donationService) UpdateSubscription(ctx context.Context, donationID string, req dto.UpdateSubscriptionRequest, actor domain.Actor) (*domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Status == nil && req.BillingDay == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}
	if req.Status != nil && !domain.ValidSubscriptionStatus(*req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
	}

	now := s.now()
	updated, err := s.donationRepo.UpdateSubscription(ctx, donationID, func(d *domain.Donation) error {
		if err := s.authorize(actor, opUpdateSubscription, d.DonorID); err != nil {
			return err
		}
		if !d.IsMonthly() {
			return ErrInvalidOperation
		}

		if req.Status != nil {
			if err := s.applyTransition(d, *req.Status, actor, now); err != nil {
				return err
			}
		}

		if req.BillingDay != nil {
			day := domain.ClampBillingDay(*req.BillingDay)
			d.BillingDay = &day
			if d.Status == domain.StatusActive {
				next := domain.NextBillingFromDay(now, day)
				d.NextBillingDate = &next
			}
		}

		d.LastUpdatedAt = now
		d.LastUpdatedBy = actor.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Subscription updated",
		slog.String("donation_id", donationID),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

// applyTransition enforces the lifecycle rules on a freshly read donation.
// Cancellation is admin mediated; owners may only pause. Reactivation from
// either stopped state recomputes the next billing date from the billing day.
func (s *donationService) applyTransition(d *domain.Donation, target domain.SubscriptionStatus, actor domain.Actor, now time.Time) error {
	if target == d.Status {
		return nil
	}

	switch target {
	case domain.StatusPaused:
		if d.Status != domain.StatusActive {
			return fmt.Errorf("%w: cannot pause a %s subscription", ErrInvalidStatus, d.Status)
		}
		d.Status = domain.StatusPaused

	case domain.StatusCancelled:
		if !actor.IsAdmin() {
			return fmt.Errorf("%w: only admins may cancel subscriptions", apperrors.ErrForbidden)
		}
		if d.Status != domain.StatusActive && d.Status != domain.StatusPaused {
			return fmt.Errorf("%w: cannot cancel a %s subscription", ErrInvalidStatus, d.Status)
		}
		d.Status = domain.StatusCancelled

	case domain.StatusActive:
		day := domain.MaxBillingDay
		if d.BillingDay != nil {
			day = *d.BillingDay
		}
		next := domain.NextBillingFromDay(now, day)
		d.Status = domain.StatusActive
		d.NextBillingDate = &next

	default:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, target)
	}

	return nil
}

// GetDonationByID returns a donation visible to the actor.
func (s *donationService) GetDonationByID(ctx context.Context, donationID string, actor domain.Actor) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, opRead, donation.DonorID); err != nil {
		return nil, err
	}
	return donation, nil
}

// ListDonations lists all donations, admin only.
func (s *donationService) ListDonations(ctx context.Context, params dto.ListDonationsParams, actor domain.Actor) (*dto.ListDonationsResponse, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may list all donations", apperrors.ErrForbidden)
	}

	limit := normalizeLimit(params.Limit)
	donations, nextToken, err := s.donationRepo.ListDonations(ctx, limit, params.NextToken)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidToken) {
			return nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	return &dto.ListDonationsResponse{
		Donations: dto.ToDonationResponses(donations),
		NextToken: nextToken,
	}, nil
}

// ListDonationsByDonor lists one donor's donations, visible to the donor
// themselves or an admin.
func (s *donationService) ListDonationsByDonor(ctx context.Context, donorID string, params dto.ListDonationsParams, actor domain.Actor) (*dto.ListDonationsResponse, error) {
	if err := s.authorize(actor, opRead, donorID); err != nil {
		return nil, err
	}

	limit := normalizeLimit(params.Limit)
	donations, nextToken, err := s.donationRepo.ListDonationsByDonor(ctx, donorID, limit, params.NextToken)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidToken) {
			return nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to list donations for donor %s: %w", donorID, err)
	}

	return &dto.ListDonationsResponse{
		Donations: dto.ToDonationResponses(donations),
		NextToken: nextToken,
	}, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
