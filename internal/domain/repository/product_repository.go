// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marzan/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when no product matches the lookup.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductImageNotFound is returned when no product image matches the lookup.
	ErrProductImageNotFound = errors.New("product image not found")
)

// ProductRepository defines the operations for catalog persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its gallery, ordered by display order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns products with their galleries, newest first.
	// When activeOnly is set, inactive products are excluded.
	List(ctx context.Context, activeOnly bool) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product and its gallery.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetPrimaryImageURL updates only the product's primary image column.
	SetPrimaryImageURL(ctx context.Context, productID uuid.UUID, imageURL string) error

	// AddImage appends an image to the product's gallery.
	AddImage(ctx context.Context, image *entity.ProductImage) error

	// ListImages returns the product's gallery ordered by display order.
	ListImages(ctx context.Context, productID uuid.UUID) ([]*entity.ProductImage, error)

	// FindImageByID retrieves a single gallery entry.
	FindImageByID(ctx context.Context, imageID uuid.UUID) (*entity.ProductImage, error)

	// SetImageDisplayOrder updates the display order of one gallery entry.
	SetImageDisplayOrder(ctx context.Context, imageID uuid.UUID, order int) error

	// DeleteImage removes one gallery entry.
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
}
