package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/apperrors"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/models"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCampaignRepository struct {
	BaseRepository
}

func newPgxCampaignRepository(pool *pgxpool.Pool) portsrepo.CampaignRepositoryFacade {
	return &PgxCampaignRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CampaignRepositoryFacade = (*PgxCampaignRepository)(nil)

const campaignColumns = `campaign_id, title, description, target_amount, current_amount, is_active, category_id, priority, created_at, created_by, last_updated_at, last_updated_by`

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var m models.Campaign
	err := row.Scan(
		&m.CampaignID,
		&m.Title,
		&m.Description,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.IsActive,
		&m.CategoryID,
		&m.Priority,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindCampaignByID retrieves a single campaign.
func (r *PgxCampaignRepository) FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE campaign_id = $1;`
	m, err := scanCampaign(r.Pool.QueryRow(ctx, query, campaignID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("campaign with ID %s not found", campaignID))
		}
		return nil, apperrors.NewAppError(500, "failed to find campaign", err)
	}
	campaign := mapping.ToDomainCampaign(*m)
	return &campaign, nil
}

// FindCampaignsByIDs retrieves multiple campaigns in one batched query.
// Missing IDs are simply absent from the result map.
func (r *PgxCampaignRepository) FindCampaignsByIDs(ctx context.Context, campaignIDs []string) (map[string]domain.Campaign, error) {
	if len(campaignIDs) == 0 {
		return map[string]domain.Campaign{}, nil
	}

	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE campaign_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, campaignIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query campaigns by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Campaign, len(campaignIDs))
	for rows.Next() {
		m, err := scanCampaign(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan campaign row", err)
		}
		result[m.CampaignID] = mapping.ToDomainCampaign(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating campaign rows", err)
	}
	return result, nil
}

// ListCampaigns retrieves campaigns ordered by priority, then creation time.
func (r *PgxCampaignRepository) ListCampaigns(ctx context.Context, onlyActive bool) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY priority ASC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list campaigns", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		m, err := scanCampaign(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan campaign row", err)
		}
		campaigns = append(campaigns, mapping.ToDomainCampaign(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating campaign rows", err)
	}
	return campaigns, nil
}

// SaveCampaign persists a new campaign.
func (r *PgxCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	m := mapping.ToModelCampaign(campaign)
	query := `
		INSERT INTO campaigns (campaign_id, title, description, target_amount, current_amount, is_active, category_id, priority, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CampaignID, m.Title, m.Description, m.TargetAmount, m.CurrentAmount,
		m.IsActive, m.CategoryID, m.Priority,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewAppError(404, "referenced category does not exist", apperrors.ErrNotFound)
		}
		return apperrors.NewAppError(500, "failed to insert campaign", err)
	}
	return nil
}

// UpdateCampaign updates campaign details. current_amount is deliberately
// excluded: only ledger transactions may write it.
func (r *PgxCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.Campaign) error {
	m := mapping.ToModelCampaign(campaign)
	query := `
		UPDATE campaigns
		SET title = $2, description = $3, target_amount = $4, is_active = $5, category_id = $6, priority = $7, last_updated_at = $8, last_updated_by = $9
		WHERE campaign_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CampaignID, m.Title, m.Description, m.TargetAmount,
		m.IsActive, m.CategoryID, m.Priority,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("campaign with ID %s not found", campaign.CampaignID))
	}
	return nil
}

// DeleteCampaign hard-deletes a campaign. Without force it refuses when
// donation allocations reference the campaign. With force it runs the
// cascade as an ordered cleanup pipeline inside one transaction:
// allocation rows first, then donations left with no allocations of either
// kind, then the campaign row itself.
func (r *PgxCampaignRepository) DeleteCampaign(ctx context.Context, campaignID string, force bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM campaigns WHERE campaign_id = $1);`, campaignID).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check campaign existence", err)
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("campaign with ID %s not found", campaignID))
	}

	var allocationCount int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM donation_items WHERE campaign_id = $1;`, campaignID).Scan(&allocationCount); err != nil {
		return apperrors.NewAppError(500, "failed to count campaign allocations", err)
	}

	if allocationCount > 0 {
		if !force {
			return apperrors.NewAppError(409,
				fmt.Sprintf("campaign %s has %d donation allocations; pass force to cascade", campaignID, allocationCount),
				apperrors.ErrConflict)
		}

		// Cleanup step 1: drop the campaign's allocation rows.
		if _, err := tx.Exec(ctx, `DELETE FROM donation_items WHERE campaign_id = $1;`, campaignID); err != nil {
			return apperrors.NewAppError(500, "failed to delete campaign allocations", err)
		}

		// Cleanup step 2: drop donations left with no allocations of either
		// kind, so no orphaned donation lingers.
		orphanQuery := `
			DELETE FROM donations d
			WHERE NOT EXISTS (SELECT 1 FROM donation_items di WHERE di.donation_id = d.donation_id)
			  AND NOT EXISTS (SELECT 1 FROM donation_category_items ci WHERE ci.donation_id = d.donation_id);
		`
		if _, err := tx.Exec(ctx, orphanQuery); err != nil {
			return apperrors.NewAppError(500, "failed to delete orphaned donations", err)
		}
	}

	// Cleanup step 3: the campaign row itself.
	if _, err := tx.Exec(ctx, `DELETE FROM campaigns WHERE campaign_id = $1;`, campaignID); err != nil {
		return apperrors.NewAppError(500, "failed to delete campaign", err)
	}

	return r.Commit(ctx, tx)
}
