// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item shown on the storefront. ImageURL always mirrors the
// gallery image at display order zero.
type Product struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Price            float64
	PromotionalPrice *float64   // Discounted price, nil when no promotion is set.
	PromotionEndDate *time.Time // Promotion is active only while now is before this date.
	Category         string
	ImageURL         string // Primary image, synced from the order-zero gallery entry.
	Tags             []string
	IsActive         bool // Inactive products are hidden from the public listing.
	Images           []*ProductImage
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PromotionActive reports whether the promotional price applies at the given time.
func (p *Product) PromotionActive(now time.Time) bool {
	if p.PromotionalPrice == nil {
		return false
	}
	if p.PromotionEndDate == nil {
		return true
	}

	return now.Before(*p.PromotionEndDate)
}

// ProductImage is one entry of a product's ordered gallery. DisplayOrder is a
// dense sequence starting at zero and unique within the product.
type ProductImage struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	ImageURL     string
	DisplayOrder int
	CreatedAt    time.Time
}
