package services

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
)

// CategoryReaderSvc defines read operations for category data
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category by its ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data
type CategoryWriterSvc interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, actor domain.Actor) (*domain.Category, error)

	// UpdateCategory applies partial updates to a category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, actor domain.Actor) (*domain.Category, error)

	// DeleteCategory removes a category that no campaign or allocation references.
	DeleteCategory(ctx context.Context, categoryID string, actor domain.Actor) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
