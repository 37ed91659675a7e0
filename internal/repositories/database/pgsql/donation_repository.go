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
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxDonationRepository is the only code path that writes donations and,
// with them, campaign/category running totals.
type PgxDonationRepository struct {
	BaseRepository
}

func newPgxDonationRepository(pool *pgxpool.Pool) *PgxDonationRepository {
	return &PgxDonationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DonationRepositoryFacade = (*PgxDonationRepository)(nil)

const donationColumns = `donation_id, donor_id, currency_code, amount, amount_usd, team_support, cover_fees, fees, total_amount, type, status, billing_day, last_billing_date, next_billing_date, payment_method, payment_meta, created_at, created_by, last_updated_at, last_updated_by`

func scanDonation(row pgx.Row) (*models.Donation, error) {
	var m models.Donation
	err := row.Scan(
		&m.DonationID,
		&m.DonorID,
		&m.CurrencyCode,
		&m.Amount,
		&m.AmountUSD,
		&m.TeamSupport,
		&m.CoverFees,
		&m.Fees,
		&m.TotalAmount,
		&m.Type,
		&m.Status,
		&m.BillingDay,
		&m.LastBillingDate,
		&m.NextBillingDate,
		&m.PaymentMethod,
		&m.PaymentMeta,
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

// SaveDonation persists the donation, its allocation lines and the target
// increments as one transaction. Increments are evaluated server-side
// (current_amount = current_amount + delta) so concurrent creates never
// lose updates.
func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation, campaignDeltas map[string]decimal.Decimal, categoryDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDonation(donation)
	donationQuery := `
		INSERT INTO donations (` + donationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, donationQuery,
		m.DonationID, m.DonorID, m.CurrencyCode, m.Amount, m.AmountUSD,
		m.TeamSupport, m.CoverFees, m.Fees, m.TotalAmount,
		m.Type, m.Status, m.BillingDay, m.LastBillingDate, m.NextBillingDate,
		m.PaymentMethod, m.PaymentMeta,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert donation "+m.DonationID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO donation_items (item_id, donation_id, campaign_id, amount, amount_usd, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, item := range donation.Items {
		mi := mapping.ToModelDonationItem(item)
		batch.Queue(itemQuery, mi.ItemID, mi.DonationID, mi.CampaignID, mi.Amount, mi.AmountUSD,
			mi.CreatedAt, mi.CreatedBy, mi.LastUpdatedAt, mi.LastUpdatedBy)
	}
	categoryItemQuery := `
		INSERT INTO donation_category_items (item_id, donation_id, category_id, amount, amount_usd, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, item := range donation.CategoryItems {
		mi := mapping.ToModelDonationCategoryItem(item)
		batch.Queue(categoryItemQuery, mi.ItemID, mi.DonationID, mi.CategoryID, mi.Amount, mi.AmountUSD,
			mi.CreatedAt, mi.CreatedBy, mi.LastUpdatedAt, mi.LastUpdatedBy)
	}

	campaignIncrQuery := `UPDATE campaigns SET current_amount = current_amount + $2, last_updated_at = $3, last_updated_by = $4 WHERE campaign_id = $1;`
	for campaignID, delta := range campaignDeltas {
		batch.Queue(campaignIncrQuery, campaignID, delta, donation.LastUpdatedAt, donation.LastUpdatedBy)
	}
	categoryIncrQuery := `UPDATE categories SET current_amount = current_amount + $2, last_updated_at = $3, last_updated_by = $4 WHERE category_id = $1;`
	for categoryID, delta := range categoryDeltas {
		batch.Queue(categoryIncrQuery, categoryID, delta, donation.LastUpdatedAt, donation.LastUpdatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			if isForeignKeyViolation(err) {
				return apperrors.NewAppError(404, "allocation target vanished during save", apperrors.ErrNotFound)
			}
			return apperrors.NewAppError(500, "failed to apply donation batch", err)
		}
		if tag.RowsAffected() == 0 {
			// An increment hit a row that no longer exists.
			br.Close()
			return apperrors.NewAppError(404, "allocation target vanished during save", apperrors.ErrNotFound)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close donation batch", err)
	}

	return r.Commit(ctx, tx)
}

// DeleteDonation reverses every allocation's increment and removes the
// donation with its allocation rows, all in one transaction. The inverse of
// SaveDonation: a create-then-delete round trip leaves every target's
// current_amount exactly where it started.
func (r *PgxDonationRepository) DeleteDonation(ctx context.Context, donationID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM donations WHERE donation_id = $1);`, donationID).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check donation existence", err)
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("donation with ID %s not found", donationID))
	}

	// Reverse campaign increments. COALESCE covers legacy rows that never
	// recorded a USD amount.
	campaignReverseQuery := `
		UPDATE campaigns c
		SET current_amount = c.current_amount - agg.total
		FROM (
			SELECT campaign_id, SUM(CASE WHEN amount_usd <> 0 THEN amount_usd ELSE amount END) AS total
			FROM donation_items
			WHERE donation_id = $1
			GROUP BY campaign_id
		) agg
		WHERE c.campaign_id = agg.campaign_id;
	`
	if _, err := tx.Exec(ctx, campaignReverseQuery, donationID); err != nil {
		return apperrors.NewAppError(500, "failed to reverse campaign totals", err)
	}

	categoryReverseQuery := `
		UPDATE categories c
		SET current_amount = c.current_amount - agg.total
		FROM (
			SELECT category_id, SUM(CASE WHEN amount_usd <> 0 THEN amount_usd ELSE amount END) AS total
			FROM donation_category_items
			WHERE donation_id = $1
			GROUP BY category_id
		) agg
		WHERE c.category_id = agg.category_id;
	`
	if _, err := tx.Exec(ctx, categoryReverseQuery, donationID); err != nil {
		return apperrors.NewAppError(500, "failed to reverse category totals", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM donation_items WHERE donation_id = $1;`, donationID); err != nil {
		return apperrors.NewAppError(500, "failed to delete donation items", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM donation_category_items WHERE donation_id = $1;`, donationID); err != nil {
		return apperrors.NewAppError(500, "failed to delete donation category items", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM donations WHERE donation_id = $1;`, donationID); err != nil {
		return apperrors.NewAppError(500, "failed to delete donation", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateSubscription reads the donation with a row lock, lets the callback
// mutate the fresh copy, and writes the full replacement before commit.
// Concurrent transitions on the same row serialize on the lock.
func (r *PgxDonationRepository) UpdateSubscription(ctx context.Context, donationID string, apply func(*domain.Donation) error) (*domain.Donation, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + donationColumns + ` FROM donations WHERE donation_id = $1 FOR UPDATE;`
	m, err := scanDonation(tx.QueryRow(ctx, query, donationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("donation with ID %s not found", donationID))
		}
		return nil, apperrors.NewAppError(500, "failed to lock donation row", err)
	}
	donation := mapping.ToDomainDonation(*m)

	if err := apply(&donation); err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE donations
		SET status = $2, billing_day = $3, last_billing_date = $4, next_billing_date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE donation_id = $1;
	`
	um := mapping.ToModelDonation(donation)
	if _, err := tx.Exec(ctx, updateQuery,
		um.DonationID, um.Status, um.BillingDay, um.LastBillingDate, um.NextBillingDate,
		um.LastUpdatedAt, um.LastUpdatedBy,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update subscription", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &donation, nil
}

// FindDonationByID retrieves a donation with its allocation lines.
func (r *PgxDonationRepository) FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donation_id = $1;`
	m, err := scanDonation(r.Pool.QueryRow(ctx, query, donationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("donation with ID %s not found", donationID))
		}
		return nil, apperrors.NewAppError(500, "failed to find donation", err)
	}

	donation := mapping.ToDomainDonation(*m)
	if err := r.loadAllocations(ctx, []*domain.Donation{&donation}); err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListDonations pages over all donations, newest first.
func (r *PgxDonationRepository) ListDonations(ctx context.Context, limit int, nextToken *string) ([]domain.Donation, *string, error) {
	return r.listDonations(ctx, "", limit, nextToken)
}

// ListDonationsByDonor pages over one donor's donations, newest first.
func (r *PgxDonationRepository) ListDonationsByDonor(ctx context.Context, donorID string, limit int, nextToken *string) ([]domain.Donation, *string, error) {
	return r.listDonations(ctx, donorID, limit, nextToken)
}

// listDonations implements keyset pagination on (created_at, donation_id).
func (r *PgxDonationRepository) listDonations(ctx context.Context, donorID string, limit int, nextToken *string) ([]domain.Donation, *string, error) {
	args := make([]any, 0, 4)
	query := `SELECT ` + donationColumns + ` FROM donations`

	where := make([]string, 0, 2)
	if donorID != "" {
		args = append(args, donorID)
		where = append(where, fmt.Sprintf("donor_id = $%d", len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, createdAt)
		tsArg := len(args)
		args = append(args, id)
		where = append(where, fmt.Sprintf("(created_at, donation_id) < ($%d, $%d)", tsArg, tsArg+1))
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, donation_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list donations", err)
	}
	defer rows.Close()

	donations := make([]domain.Donation, 0, limit)
	for rows.Next() {
		m, err := scanDonation(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan donation row", err)
		}
		donations = append(donations, mapping.ToDomainDonation(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating donation rows", err)
	}

	var token *string
	if len(donations) > limit {
		donations = donations[:limit]
		last := donations[limit-1]
		t := pagination.EncodeToken(last.CreatedAt, last.DonationID)
		token = &t
	}

	refs := make([]*domain.Donation, len(donations))
	for i := range donations {
		refs[i] = &donations[i]
	}
	if err := r.loadAllocations(ctx, refs); err != nil {
		return nil, nil, err
	}

	return donations, token, nil
}

// loadAllocations populates Items and CategoryItems for a set of donations
// with one batched query per allocation kind.
func (r *PgxDonationRepository) loadAllocations(ctx context.Context, donations []*domain.Donation) error {
	if len(donations) == 0 {
		return nil
	}

	ids := make([]string, len(donations))
	byID := make(map[string]*domain.Donation, len(donations))
	for i, d := range donations {
		ids[i] = d.DonationID
		byID[d.DonationID] = d
	}

	itemQuery := `
		SELECT item_id, donation_id, campaign_id, amount, amount_usd, created_at, created_by, last_updated_at, last_updated_by
		FROM donation_items WHERE donation_id = ANY($1) ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, itemQuery, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to load donation items", err)
	}
	for rows.Next() {
		var mi models.DonationItem
		if err := rows.Scan(&mi.ItemID, &mi.DonationID, &mi.CampaignID, &mi.Amount, &mi.AmountUSD,
			&mi.CreatedAt, &mi.CreatedBy, &mi.LastUpdatedAt, &mi.LastUpdatedBy); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan donation item", err)
		}
		if d, ok := byID[mi.DonationID]; ok {
			d.Items = append(d.Items, mapping.ToDomainDonationItem(mi))
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating donation items", err)
	}

	categoryItemQuery := `
		SELECT item_id, donation_id, category_id, amount, amount_usd, created_at, created_by, last_updated_at, last_updated_by
		FROM donation_category_items WHERE donation_id = ANY($1) ORDER BY created_at ASC;
	`
	rows, err = r.Pool.Query(ctx, categoryItemQuery, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to load donation category items", err)
	}
	for rows.Next() {
		var mi models.DonationCategoryItem
		if err := rows.Scan(&mi.ItemID, &mi.DonationID, &mi.CategoryID, &mi.Amount, &mi.AmountUSD,
			&mi.CreatedAt, &mi.CreatedBy, &mi.LastUpdatedAt, &mi.LastUpdatedBy); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan donation category item", err)
		}
		if d, ok := byID[mi.DonationID]; ok {
			d.CategoryItems = append(d.CategoryItems, mapping.ToDomainDonationCategoryItem(mi))
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating donation category items", err)
	}

	return nil
}
