package usecase

import (
	"context"
	"time"

	"marzan/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name             string
	Description      string
	Price            float64
	PromotionalPrice *float64
	PromotionEndDate *time.Time
	Category         string
	Tags             []string
	IsActive         bool
}

// UpdateProductInput defines the data required to update a product.
type UpdateProductInput struct {
	ProductID        uuid.UUID
	Name             string
	Description      string
	Price            float64
	PromotionalPrice *float64
	PromotionEndDate *time.Time
	Category         string
	Tags             []string
	IsActive         bool
}

// ImageUpload carries one uploaded image file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReorderImagesInput carries the new gallery order as image IDs, first is primary.
type ReorderImagesInput struct {
	ProductID uuid.UUID
	ImageIDs  []uuid.UUID
}

// CatalogUsecase defines the interface for product catalog management.
type CatalogUsecase interface {
	// ListProducts returns the catalog; activeOnly hides disabled products.
	ListProducts(ctx context.Context, activeOnly bool) ([]*entity.Product, error)

	// GetProduct retrieves one product with its gallery.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct modifies an existing product.
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product, its gallery entries, and stored images.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// AddImages stores the uploads and appends them to the product's gallery.
	AddImages(ctx context.Context, productID uuid.UUID, uploads []*ImageUpload) ([]*entity.ProductImage, error)

	// ReorderImages applies a new display order to the product's gallery.
	// The image at position zero becomes the product's primary image.
	ReorderImages(ctx context.Context, input *ReorderImagesInput) error

	// RemoveImage deletes one gallery entry and its stored file.
	RemoveImage(ctx context.Context, productID, imageID uuid.UUID) error
}
