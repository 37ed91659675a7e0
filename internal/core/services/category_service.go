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

// categoryService manages donation categories.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory persists a new category, admin only.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, actor domain.Actor) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may create categories", apperrors.ErrForbidden)
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// UpdateCategory applies partial updates, admin only.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, actor domain.Actor) (*domain.Category, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may update categories", apperrors.ErrForbidden)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		category.Title = *req.Title
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Priority != nil {
		category.Priority = *req.Priority
	}
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = actor.UserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}

	return category, nil
}

// DeleteCategory hard-deletes a category, admin only. The repository refuses
// with ErrConflict while campaigns or allocations still reference it.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins may delete categories", apperrors.ErrForbidden)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}
