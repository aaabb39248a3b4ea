// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"marzan/internal/domain/entity"
	domainerrors "marzan/internal/domain/errors"
	"marzan/internal/domain/repository"
	"marzan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product with its gallery, ordered by display order.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// List returns products with their galleries, newest first.
func (repo *productRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	tx := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		})
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}

	if err := tx.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":               productM.Name,
			"description":        productM.Description,
			"price":              productM.Price,
			"promotional_price":  productM.PromotionalPrice,
			"promotion_end_date": productM.PromotionEndDate,
			"category":           productM.Category,
			"image_url":          productM.ImageURL,
			"tags":               productM.Tags,
			"is_active":          productM.IsActive,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product and its gallery.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&model.ProductImageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete product images")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetPrimaryImageURL updates only the product's primary image column.
func (repo *productRepository) SetPrimaryImageURL(ctx context.Context, productID uuid.UUID, imageURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		Update("image_url", imageURL)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set primary image URL")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AddImage appends an image to the product's gallery.
func (repo *productRepository) AddImage(ctx context.Context, image *entity.ProductImage) error {
	imageM := fromProductImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// ListImages returns the product's gallery ordered by display order.
func (repo *productRepository) ListImages(ctx context.Context, productID uuid.UUID) ([]*entity.ProductImage, error) {
	var imageModels []*model.ProductImageModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("display_order ASC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product images")
	}

	images := make([]*entity.ProductImage, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toProductImageDomain(imageM))
	}

	return images, nil
}

// FindImageByID retrieves a single gallery entry.
func (repo *productRepository) FindImageByID(ctx context.Context, imageID uuid.UUID) (*entity.ProductImage, error) {
	var imageM model.ProductImageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", imageID).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image by ID")
	}

	return toProductImageDomain(&imageM), nil
}

// SetImageDisplayOrder updates the display order of one gallery entry.
func (repo *productRepository) SetImageDisplayOrder(ctx context.Context, imageID uuid.UUID, order int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductImageModel{}).
		Where("id = ?", imageID).
		Update("display_order", order)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set image display order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductImageNotFound
	}

	return nil
}

// DeleteImage removes one gallery entry.
func (repo *productRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", imageID).
		Delete(&model.ProductImageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductImageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	if data == nil {
		return nil, nil
	}

	var tags []string
	if len(data.Tags) > 0 {
		if err := json.Unmarshal(data.Tags, &tags); err != nil {
			return nil, errors.Wrap(err, "failed to decode product tags")
		}
	}

	images := make([]*entity.ProductImage, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, toProductImageDomain(&data.Images[i]))
	}

	return &entity.Product{
		ID:               data.ID,
		Name:             data.Name,
		Description:      data.Description,
		Price:            data.Price,
		PromotionalPrice: data.PromotionalPrice,
		PromotionEndDate: data.PromotionEndDate,
		Category:         data.Category,
		ImageURL:         data.ImageURL,
		Tags:             tags,
		IsActive:         data.IsActive,
		Images:           images,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	if data == nil {
		return nil, nil
	}

	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode product tags")
	}

	return &model.ProductModel{
		ID:               data.ID,
		Name:             data.Name,
		Description:      data.Description,
		Price:            data.Price,
		PromotionalPrice: data.PromotionalPrice,
		PromotionEndDate: data.PromotionEndDate,
		Category:         data.Category,
		ImageURL:         data.ImageURL,
		Tags:             datatypes.JSON(tagsJSON),
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}

// toProductImageDomain converts a GORM ProductImageModel to a domain ProductImage entity.
func toProductImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:           data.ID,
		ProductID:    data.ProductID,
		ImageURL:     data.ImageURL,
		DisplayOrder: data.DisplayOrder,
		CreatedAt:    data.CreatedAt,
	}
}

// fromProductImageDomain converts a domain ProductImage entity to a GORM ProductImageModel.
func fromProductImageDomain(data *entity.ProductImage) *model.ProductImageModel {
	if data == nil {
		return nil
	}

	return &model.ProductImageModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		ImageURL:     data.ImageURL,
		DisplayOrder: data.DisplayOrder,
		CreatedAt:    data.CreatedAt,
	}
}
