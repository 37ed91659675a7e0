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

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, title, description, current_amount, priority, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.Title,
		&m.Description,
		&m.CurrentAmount,
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

// FindCategoryByID retrieves a single category.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	m, err := scanCategory(r.db.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("category with ID %s not found", categoryID))
		}
		return nil, apperrors.NewAppError(500, "failed to find category", err)
	}
	category := mapping.ToDomainCategory(*m)
	return &category, nil
}

// FindCategoriesByIDs retrieves multiple categories in one batched query.
func (r *PgxCategoryRepository) FindCategoriesByIDs(ctx context.Context, categoryIDs []string) (map[string]domain.Category, error) {
	if len(categoryIDs) == 0 {
		return map[string]domain.Category{}, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = ANY($1);`
	rows, err := r.db.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Category, len(categoryIDs))
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		result[m.CategoryID] = mapping.ToDomainCategory(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return result, nil
}

// ListCategories retrieves all categories ordered by priority.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY priority ASC, created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list categories", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, mapping.ToDomainCategory(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}

// SaveCategory persists a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, title, description, current_amount, priority, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.CategoryID, m.Title, m.Description, m.CurrentAmount, m.Priority,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert category", err)
	}
	return nil
}

// UpdateCategory updates category details, never current_amount.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET title = $2, description = $3, priority = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, m.CategoryID, m.Title, m.Description, m.Priority, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category with ID %s not found", category.CategoryID))
	}
	return nil
}

// DeleteCategory hard-deletes a category. It refuses while campaigns or
// donation allocations still reference it.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	var campaignRefs, allocationRefs int64
	refQuery := `
		SELECT
			(SELECT COUNT(*) FROM campaigns WHERE category_id = $1),
			(SELECT COUNT(*) FROM donation_category_items WHERE category_id = $1);
	`
	if err := r.db.QueryRow(ctx, refQuery, categoryID).Scan(&campaignRefs, &allocationRefs); err != nil {
		return apperrors.NewAppError(500, "failed to count category references", err)
	}
	if campaignRefs > 0 || allocationRefs > 0 {
		return apperrors.NewAppError(409,
			fmt.Sprintf("category %s is referenced by %d campaigns and %d allocations", categoryID, campaignRefs, allocationRefs),
			apperrors.ErrConflict)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category with ID %s not found", categoryID))
	}
	return nil
}
