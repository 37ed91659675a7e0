package dto

import (
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// UpdateCategoryRequest updates category details. Nil fields are untouched.
type UpdateCategoryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string          `json:"categoryID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Priority      int             `json:"priority"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		Title:         c.Title,
		Description:   c.Description,
		CurrentAmount: c.CurrentAmount,
		Priority:      c.Priority,
		CreatedAt:     c.CreatedAt,
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
