package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/apperrors"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxStatsRepository runs the read-only aggregate queries behind the
// dashboard. Each method issues one query and is safe to call concurrently.
type PgxStatsRepository struct {
	donations *PgxDonationRepository
	db        *pgxpool.Pool
}

func newPgxStatsRepository(pool *pgxpool.Pool, donations *PgxDonationRepository) portsrepo.StatsRepository {
	return &PgxStatsRepository{donations: donations, db: pool}
}

var _ portsrepo.StatsRepository = (*PgxStatsRepository)(nil)

// filterClause renders the campaign/category filter as an SQL condition on
// the donations table aliased d. A campaign filter matches donations with
// an allocation line to that campaign. A category filter matches direct
// category allocations plus allocations to campaigns belonging to that
// category. Returns the clause (or empty) and the grown argument slice.
func filterClause(filter portsrepo.StatsFilter, args []any) (string, []any) {
	if filter.CampaignID != nil {
		args = append(args, *filter.CampaignID)
		return fmt.Sprintf(`EXISTS (
			SELECT 1 FROM donation_items di
			WHERE di.donation_id = d.donation_id AND di.campaign_id = $%d)`, len(args)), args
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		n := len(args)
		return fmt.Sprintf(`(EXISTS (
			SELECT 1 FROM donation_category_items dci
			WHERE dci.donation_id = d.donation_id AND dci.category_id = $%d)
		OR EXISTS (
			SELECT 1 FROM donation_items di
			JOIN campaigns c ON c.campaign_id = di.campaign_id
			WHERE di.donation_id = d.donation_id AND c.category_id = $%d))`, n, n), args
	}
	return "", args
}

// rangeWhere builds the shared WHERE clause and argument list for a
// [from, to] range plus optional filter.
func rangeWhere(from, to time.Time, filter portsrepo.StatsFilter) (string, []any) {
	args := []any{from, to}
	where := "d.created_at >= $1 AND d.created_at <= $2"
	clause, args := filterClause(filter, args)
	if clause != "" {
		where += " AND " + clause
	}
	return where, args
}

func (r *PgxStatsRepository) FindDonationsInRange(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) ([]domain.Donation, error) {
	where, args := rangeWhere(from, to, filter)
	query := `SELECT ` + donationColumns + ` FROM donations d WHERE ` + where + ` ORDER BY d.created_at ASC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query donations in range", err)
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		m, err := scanDonation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan donation row", err)
		}
		donations = append(donations, mapping.ToDomainDonation(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating donations in range", err)
	}

	refs := make([]*domain.Donation, len(donations))
	for i := range donations {
		refs[i] = &donations[i]
	}
	if err := r.donations.loadAllocations(ctx, refs); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *PgxStatsRepository) CountDonations(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (int64, error) {
	where, args := rangeWhere(from, to, filter)
	query := `SELECT COUNT(*) FROM donations d WHERE ` + where + `;`

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count donations", err)
	}
	return count, nil
}

func (r *PgxStatsRepository) SumDonationAmountUSD(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (decimal.Decimal, error) {
	where, args := rangeWhere(from, to, filter)
	query := `SELECT COALESCE(SUM(d.amount_usd), 0) FROM donations d WHERE ` + where + `;`

	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum donation amounts", err)
	}
	return sum, nil
}

func (r *PgxStatsRepository) CountDonationsByType(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (map[domain.DonationType]int64, error) {
	where, args := rangeWhere(from, to, filter)
	query := `SELECT d.type, COUNT(*) FROM donations d WHERE ` + where + ` GROUP BY d.type;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count donations by type", err)
	}
	defer rows.Close()

	counts := map[domain.DonationType]int64{
		domain.OneTime: 0,
		domain.Monthly: 0,
	}
	for rows.Next() {
		var kind string
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan type count row", err)
		}
		counts[domain.DonationType(kind)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating type count rows", err)
	}
	return counts, nil
}

func (r *PgxStatsRepository) MonthlySubscriptionTotals(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (active, stopped domain.AllocationTotals, err error) {
	where, args := rangeWhere(from, to, filter)
	query := `
		SELECT
			COUNT(*) FILTER (WHERE d.status = 'ACTIVE'),
			COALESCE(SUM(d.amount_usd) FILTER (WHERE d.status = 'ACTIVE'), 0),
			COUNT(*) FILTER (WHERE d.status IN ('PAUSED', 'CANCELLED')),
			COALESCE(SUM(d.amount_usd) FILTER (WHERE d.status IN ('PAUSED', 'CANCELLED')), 0)
		FROM donations d
		WHERE d.type = 'MONTHLY' AND ` + where + `;`

	if scanErr := r.db.QueryRow(ctx, query, args...).Scan(
		&active.Count, &active.AmountUSD, &stopped.Count, &stopped.AmountUSD,
	); scanErr != nil {
		err = apperrors.NewAppError(500, "failed to sum subscription totals", scanErr)
		return
	}
	return active, stopped, nil
}

func (r *PgxStatsRepository) AllocationTotalsByKind(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (campaign, category domain.AllocationTotals, err error) {
	where, args := rangeWhere(from, to, filter)

	campaignQuery := `
		SELECT COUNT(*), COALESCE(SUM(di.amount_usd), 0)
		FROM donation_items di
		JOIN donations d ON d.donation_id = di.donation_id
		WHERE ` + where + `;`
	if scanErr := r.db.QueryRow(ctx, campaignQuery, args...).Scan(&campaign.Count, &campaign.AmountUSD); scanErr != nil {
		err = apperrors.NewAppError(500, "failed to sum campaign allocations", scanErr)
		return
	}

	categoryQuery := `
		SELECT COUNT(*), COALESCE(SUM(dci.amount_usd), 0)
		FROM donation_category_items dci
		JOIN donations d ON d.donation_id = dci.donation_id
		WHERE ` + where + `;`
	if scanErr := r.db.QueryRow(ctx, categoryQuery, args...).Scan(&category.Count, &category.AmountUSD); scanErr != nil {
		err = apperrors.NewAppError(500, "failed to sum category allocations", scanErr)
		return
	}

	return campaign, category, nil
}

func (r *PgxStatsRepository) SumTeamSupportAndFees(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter) (teamSupport, fees decimal.Decimal, err error) {
	where, args := rangeWhere(from, to, filter)
	query := `SELECT COALESCE(SUM(d.team_support), 0), COALESCE(SUM(d.fees), 0) FROM donations d WHERE ` + where + `;`

	if scanErr := r.db.QueryRow(ctx, query, args...).Scan(&teamSupport, &fees); scanErr != nil {
		err = apperrors.NewAppError(500, "failed to sum team support and fees", scanErr)
		return
	}
	return teamSupport, fees, nil
}

// RecentDonations resolves donor name and first target title in the query
// itself so the feed needs no follow-up lookups.
func (r *PgxStatsRepository) RecentDonations(ctx context.Context, from, to time.Time, filter portsrepo.StatsFilter, limit int) ([]domain.RecentDonation, error) {
	where, args := rangeWhere(from, to, filter)
	args = append(args, limit)
	query := `
		SELECT
			d.donation_id,
			d.amount_usd,
			COALESCE(u.name, 'Anonymous'),
			d.type,
			COALESCE(
				(SELECT c.title FROM donation_items di
				 JOIN campaigns c ON c.campaign_id = di.campaign_id
				 WHERE di.donation_id = d.donation_id
				 ORDER BY di.created_at ASC LIMIT 1),
				(SELECT cat.title FROM donation_category_items dci
				 JOIN categories cat ON cat.category_id = dci.category_id
				 WHERE dci.donation_id = d.donation_id
				 ORDER BY dci.created_at ASC LIMIT 1),
				''),
			d.created_at
		FROM donations d
		LEFT JOIN users u ON u.user_id = d.donor_id
		WHERE ` + where + fmt.Sprintf(`
		ORDER BY d.created_at DESC, d.donation_id DESC
		LIMIT $%d;`, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent donations", err)
	}
	defer rows.Close()

	var recent []domain.RecentDonation
	for rows.Next() {
		var rd domain.RecentDonation
		var kind string
		if err := rows.Scan(&rd.DonationID, &rd.Amount, &rd.DonorName, &kind, &rd.TargetTitle, &rd.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recent donation row", err)
		}
		rd.Type = domain.DonationType(kind)
		recent = append(recent, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating recent donation rows", err)
	}
	return recent, nil
}
