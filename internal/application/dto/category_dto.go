package dto

import "time"

// CreateCategoryRequest cuerpo de POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest cuerpo de PUT /api/categories/:id.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse representación HTTP de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse respuesta de GET /api/categories.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
