package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marzan/internal/domain/entity"
	domainerrors "marzan/internal/domain/errors"
	"marzan/internal/domain/repository"
	mockRepo "marzan/internal/mocks/repository"
	mockSvc "marzan/internal/mocks/service"
	"marzan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	imageStore  *mockSvc.MockImageStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		ImageStore:  imageStore,
		Logger:      logger,
	})

	return catalogServiceFixtures{
		service:     svc,
		txManager:   txManager,
		productRepo: productRepo,
		imageStore:  imageStore,
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:     "Cookie Tradicional",
		Price:    12.5,
		Category: "cookies",
		Tags:     []string{"chocolate"},
		IsActive: true,
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, product.Name)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_AddImages_FirstImageBecomesPrimary(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	uploads := []*usecase.ImageUpload{
		{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte{0xFF, 0xD8}},
		{Filename: "side.jpg", ContentType: "image/jpeg", Data: []byte{0xFF, 0xD8}},
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	fx.imageStore.EXPECT().
		Save(ctx, "front.jpg", "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/products/a.jpg", nil)
	fx.imageStore.EXPECT().
		Save(ctx, "side.jpg", "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/products/b.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				ListImages(ctx, productID).
				Return(nil, nil)

			order := 0
			mockProductRepo.EXPECT().
				AddImage(ctx, mock.AnythingOfType("*entity.ProductImage")).
				Run(func(ctx context.Context, image *entity.ProductImage) {
					assert.Equal(t, order, image.DisplayOrder)
					order++
				}).
				Return(nil).
				Twice()

			// The gallery was empty, so the first upload becomes the primary image.
			mockProductRepo.EXPECT().
				SetPrimaryImageURL(ctx, productID, "https://cdn.example.com/products/a.jpg").
				Return(nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	added, err := fx.service.AddImages(ctx, productID, uploads)

	require.NoError(t, err)
	assert.Len(t, added, 2)
}

func TestCatalogService_AddImages_AppendsAfterExisting(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	uploads := []*usecase.ImageUpload{
		{Filename: "extra.jpg", ContentType: "image/jpeg", Data: []byte{0xFF, 0xD8}},
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	fx.imageStore.EXPECT().
		Save(ctx, "extra.jpg", "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/products/c.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			existing := []*entity.ProductImage{
				{ID: uuid.New(), ProductID: productID, DisplayOrder: 0},
				{ID: uuid.New(), ProductID: productID, DisplayOrder: 1},
			}
			mockProductRepo.EXPECT().ListImages(ctx, productID).Return(existing, nil)

			mockProductRepo.EXPECT().
				AddImage(ctx, mock.AnythingOfType("*entity.ProductImage")).
				Run(func(ctx context.Context, image *entity.ProductImage) {
					assert.Equal(t, 2, image.DisplayOrder)
				}).
				Return(nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	added, err := fx.service.AddImages(ctx, productID, uploads)

	require.NoError(t, err)
	assert.Len(t, added, 1)
}

func TestCatalogService_AddImages_NoUploads(t *testing.T) {
	fx := createTestCatalogService(t)

	added, err := fx.service.AddImages(context.Background(), uuid.New(), nil)

	assert.Error(t, err)
	assert.Nil(t, added)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_ReorderImages_TwoPassPermutation(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	imgA := &entity.ProductImage{ID: uuid.New(), ProductID: productID, ImageURL: "https://cdn.example.com/a.jpg", DisplayOrder: 0}
	imgB := &entity.ProductImage{ID: uuid.New(), ProductID: productID, ImageURL: "https://cdn.example.com/b.jpg", DisplayOrder: 1}
	imgC := &entity.ProductImage{ID: uuid.New(), ProductID: productID, ImageURL: "https://cdn.example.com/c.jpg", DisplayOrder: 2}

	// New order: C, A, B.
	input := &usecase.ReorderImagesInput{
		ProductID: productID,
		ImageIDs:  []uuid.UUID{imgC.ID, imgA.ID, imgB.ID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().
				ListImages(ctx, productID).
				Return([]*entity.ProductImage{imgA, imgB, imgC}, nil)

			// Pass one parks every entry on a negative placeholder.
			mockProductRepo.EXPECT().SetImageDisplayOrder(ctx, imgC.ID, -1).Return(nil).Once()
			mockProductRepo.EXPECT().SetImageDisplayOrder(ctx, imgA.ID, -2).Return(nil).Once()
			mockProductRepo.EXPECT().SetImageDisplayOrder(ctx, imgB.ID, -3).Return(nil).Once()

			// Pass two assigns the final positions.
			mockProductRepo.EXPECT().SetImageDisplayOrder(ctx, imgC.ID, 0).Return(nil).Once()
			mockProductRepo.EXPECT().SetImageDisplayOrder(ctx, imgA.ID, 1).Return(nil).Once()
			mockProductRepo.EXPECT().SetImageDisplayOrder(ctx, imgB.ID, 2).Return(nil).Once()

			mockProductRepo.EXPECT().FindImageByID(ctx, imgC.ID).Return(imgC, nil)
			mockProductRepo.EXPECT().
				SetPrimaryImageURL(ctx, productID, imgC.ImageURL).
				Return(nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	err := fx.service.ReorderImages(ctx, input)

	require.NoError(t, err)
}

func TestCatalogService_ReorderImages_RejectsIncompleteOrder(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	imgA := &entity.ProductImage{ID: uuid.New(), ProductID: productID}
	imgB := &entity.ProductImage{ID: uuid.New(), ProductID: productID}

	input := &usecase.ReorderImagesInput{
		ProductID: productID,
		ImageIDs:  []uuid.UUID{imgA.ID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().
				ListImages(ctx, productID).
				Return([]*entity.ProductImage{imgA, imgB}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrImageOrderInvalid))
		}).
		Return(errors.Wrap(domainerrors.ErrImageOrderInvalid, "order must include every image exactly once"))

	err := fx.service.ReorderImages(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageOrderInvalid))
}

func TestCatalogService_ReorderImages_RejectsUnknownImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	imgA := &entity.ProductImage{ID: uuid.New(), ProductID: productID}

	input := &usecase.ReorderImagesInput{
		ProductID: productID,
		ImageIDs:  []uuid.UUID{uuid.New()},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().
				ListImages(ctx, productID).
				Return([]*entity.ProductImage{imgA}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrImageOrderInvalid))
		}).
		Return(errors.Wrap(domainerrors.ErrImageOrderInvalid, "unknown image in order"))

	err := fx.service.ReorderImages(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageOrderInvalid))
}

func TestCatalogService_RemoveImage_CompactsOrdersAndSyncsPrimary(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	removed := &entity.ProductImage{ID: uuid.New(), ProductID: productID, ImageURL: "https://cdn.example.com/old.jpg", DisplayOrder: 0}
	kept := &entity.ProductImage{ID: uuid.New(), ProductID: productID, ImageURL: "https://cdn.example.com/kept.jpg", DisplayOrder: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindImageByID(ctx, removed.ID).Return(removed, nil)
			mockProductRepo.EXPECT().DeleteImage(ctx, removed.ID).Return(nil)
			mockProductRepo.EXPECT().
				ListImages(ctx, productID).
				Return([]*entity.ProductImage{kept}, nil)

			// The survivor moves from order 1 to order 0.
			mockProductRepo.EXPECT().SetImageDisplayOrder(ctx, kept.ID, 0).Return(nil)
			mockProductRepo.EXPECT().
				SetPrimaryImageURL(ctx, productID, kept.ImageURL).
				Return(nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	fx.imageStore.EXPECT().Delete(ctx, removed.ImageURL).Return(nil)

	err := fx.service.RemoveImage(ctx, productID, removed.ID)

	require.NoError(t, err)
}

func TestCatalogService_RemoveImage_WrongProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	image := &entity.ProductImage{ID: uuid.New(), ProductID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindImageByID(ctx, image.ID).Return(image, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrProductImageNotFound))
		}).
		Return(errors.Wrap(domainerrors.ErrProductImageNotFound, "image belongs to another product"))

	err := fx.service.RemoveImage(ctx, productID, image.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductImageNotFound))
}

func TestCatalogService_DeleteProduct_RemovesStoredFiles(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	images := []*entity.ProductImage{
		{ID: uuid.New(), ProductID: productID, ImageURL: "https://cdn.example.com/a.jpg"},
		{ID: uuid.New(), ProductID: productID, ImageURL: "https://cdn.example.com/b.jpg"},
	}

	fx.productRepo.EXPECT().ListImages(ctx, productID).Return(images, nil)
	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)
	fx.imageStore.EXPECT().Delete(ctx, "https://cdn.example.com/a.jpg").Return(nil)
	fx.imageStore.EXPECT().Delete(ctx, "https://cdn.example.com/b.jpg").Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
}
