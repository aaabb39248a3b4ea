package impl

import (
	"context"
	"log/slog"

	deliverycontext "marzan/internal/delivery/context"
	"marzan/internal/domain/entity"
	domainerrors "marzan/internal/domain/errors"
	"marzan/internal/domain/repository"
	"marzan/internal/domain/service"
	"marzan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the catalog; activeOnly hides disabled products.
func (srv *catalogService) ListProducts(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves one product with its gallery.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:             input.Name,
		Description:      input.Description,
		Price:            input.Price,
		PromotionalPrice: input.PromotionalPrice,
		PromotionEndDate: input.PromotionEndDate,
		Category:         input.Category,
		Tags:             input.Tags,
		IsActive:         input.IsActive,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// UpdateProduct modifies an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	existing, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.PromotionalPrice = input.PromotionalPrice
	existing.PromotionEndDate = input.PromotionEndDate
	existing.Category = input.Category
	existing.Tags = input.Tags
	existing.IsActive = input.IsActive

	if err := srv.productRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", existing.ID))

	return existing, nil
}

// DeleteProduct removes a product, its gallery entries, and stored images.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	images, err := srv.productRepo.ListImages(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to list product images")
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	// Stored files are removed after the rows; an orphan file is recoverable,
	// a dangling gallery row pointing at nothing is not.
	for _, image := range images {
		if err := srv.imageStore.Delete(ctx, image.ImageURL); err != nil {
			srv.log(ctx).Warn("Failed to delete stored image",
				slog.String("url", image.ImageURL),
				slog.Any("error", err),
			)
		}
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// AddImages stores the uploads and appends them to the product's gallery.
// The first image of an empty gallery becomes the product's primary image.
func (srv *catalogService) AddImages(ctx context.Context, productID uuid.UUID, uploads []*usecase.ImageUpload) ([]*entity.ProductImage, error) {
	if len(uploads) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no images provided")
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// Upload files before touching rows so a storage failure leaves the
	// gallery untouched.
	urls := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		url, err := srv.imageStore.Save(ctx, upload.Filename, upload.ContentType, upload.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store image")
		}
		urls = append(urls, url)
	}

	var added []*entity.ProductImage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		existing, err := productRepo.ListImages(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to list product images")
		}

		nextOrder := len(existing)
		for _, url := range urls {
			image := &entity.ProductImage{
				ProductID:    productID,
				ImageURL:     url,
				DisplayOrder: nextOrder,
			}
			if err := productRepo.AddImage(ctx, image); err != nil {
				return errors.Wrap(err, "failed to add product image")
			}
			added = append(added, image)
			nextOrder++
		}

		if len(existing) == 0 {
			if err := productRepo.SetPrimaryImageURL(ctx, productID, urls[0]); err != nil {
				return errors.Wrap(err, "failed to set primary image")
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product images added",
		slog.Any("productID", productID),
		slog.Int("count", len(added)),
	)

	return added, nil
}

// ReorderImages applies a new display order to the product's gallery.
// The (product_id, display_order) unique index would reject any direct swap,
// so the update runs in two passes: park every entry on a negative placeholder
// order, then assign the final positions. Both passes share one transaction.
func (srv *catalogService) ReorderImages(ctx context.Context, input *usecase.ReorderImagesInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		existing, err := productRepo.ListImages(ctx, input.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to list product images")
		}

		if len(input.ImageIDs) != len(existing) {
			return errors.Wrap(domainerrors.ErrImageOrderInvalid, "order must include every image exactly once")
		}

		byID := make(map[uuid.UUID]*entity.ProductImage, len(existing))
		for _, image := range existing {
			byID[image.ID] = image
		}

		for _, id := range input.ImageIDs {
			image, ok := byID[id]
			if !ok {
				return errors.Wrap(domainerrors.ErrImageOrderInvalid, "unknown image in order")
			}
			if image == nil {
				return errors.Wrap(domainerrors.ErrImageOrderInvalid, "image listed twice in order")
			}
			byID[id] = nil
		}

		// Pass one: park on placeholders.
		for i, id := range input.ImageIDs {
			if err := productRepo.SetImageDisplayOrder(ctx, id, -(i + 1)); err != nil {
				return errors.Wrap(err, "failed to stage image order")
			}
		}

		// Pass two: final positions.
		for i, id := range input.ImageIDs {
			if err := productRepo.SetImageDisplayOrder(ctx, id, i); err != nil {
				return errors.Wrap(err, "failed to apply image order")
			}
		}

		// The gallery's first image doubles as the product's primary image.
		first, err := productRepo.FindImageByID(ctx, input.ImageIDs[0])
		if err != nil {
			return errors.Wrap(err, "failed to load primary image")
		}
		if err := productRepo.SetPrimaryImageURL(ctx, input.ProductID, first.ImageURL); err != nil {
			return errors.Wrap(err, "failed to sync primary image")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Reorder failed", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Product images reordered", slog.Any("productID", input.ProductID))

	return nil
}

// RemoveImage deletes one gallery entry and its stored file, then compacts
// the remaining display orders.
func (srv *catalogService) RemoveImage(ctx context.Context, productID, imageID uuid.UUID) error {
	var removedURL string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		image, err := productRepo.FindImageByID(ctx, imageID)
		if err != nil {
			if errors.Is(err, repository.ErrProductImageNotFound) {
				return errors.Wrap(domainerrors.ErrProductImageNotFound, "image lookup failed")
			}

			return errors.Wrap(err, "failed to find product image")
		}
		if image.ProductID != productID {
			return errors.Wrap(domainerrors.ErrProductImageNotFound, "image belongs to another product")
		}

		if err := productRepo.DeleteImage(ctx, imageID); err != nil {
			return errors.Wrap(err, "failed to delete product image")
		}
		removedURL = image.ImageURL

		remaining, err := productRepo.ListImages(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to list remaining images")
		}

		for i, rest := range remaining {
			if rest.DisplayOrder != i {
				if err := productRepo.SetImageDisplayOrder(ctx, rest.ID, i); err != nil {
					return errors.Wrap(err, "failed to compact image order")
				}
			}
		}

		primaryURL := ""
		if len(remaining) > 0 {
			primaryURL = remaining[0].ImageURL
		}
		if err := productRepo.SetPrimaryImageURL(ctx, productID, primaryURL); err != nil {
			return errors.Wrap(err, "failed to sync primary image")
		}

		return nil
	})

	if err != nil {
		return err
	}

	if err := srv.imageStore.Delete(ctx, removedURL); err != nil {
		srv.log(ctx).Warn("Failed to delete stored image",
			slog.String("url", removedURL),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Product image removed",
		slog.Any("productID", productID),
		slog.Any("imageID", imageID),
	)

	return nil
}
