package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"marzan/internal/delivery/http/response"
	"marzan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the public catalog listing. Staff can pass all=true
// to include disabled products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	activeOnly := c.QueryParam("all") != "true"

	products, err := h.uc.ListProducts(c.Request().Context(), activeOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles the single product request.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

type productRequest struct {
	Name             string     `json:"name"  validate:"required"`
	Description      string     `json:"description"`
	Price            float64    `json:"price" validate:"required,gt=0"`
	PromotionalPrice *float64   `json:"promotional_price"`
	PromotionEndDate *time.Time `json:"promotion_end_date"`
	Category         string     `json:"category"`
	Tags             []string   `json:"tags"`
	IsActive         bool       `json:"is_active"`
}

// CreateProduct handles the product creation request.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		PromotionalPrice: req.PromotionalPrice,
		PromotionEndDate: req.PromotionEndDate,
		Category:         req.Category,
		Tags:             req.Tags,
		IsActive:         req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Produto criado com sucesso")
}

// UpdateProduct handles the product update request.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		ProductID:        productID,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		PromotionalPrice: req.PromotionalPrice,
		PromotionEndDate: req.PromotionEndDate,
		Category:         req.Category,
		Tags:             req.Tags,
		IsActive:         req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Produto atualizado com sucesso")
}

// DeleteProduct handles the product removal request.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Produto removido"}, "Produto removido com sucesso")
}

// AddImages handles multipart image uploads for a product gallery.
// Files are read from the "images" form field.
func (h *CatalogHandler) AddImages(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}

	files := form.File["images"]
	uploads := make([]*usecase.ImageUpload, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Failed to open uploaded file")
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Failed to read uploaded file")
		}

		uploads = append(uploads, &usecase.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	added, err := h.uc.AddImages(c.Request().Context(), productID, uploads)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, added, "Imagens adicionadas com sucesso")
}

type reorderImagesRequest struct {
	ImageIDs []uuid.UUID `json:"image_ids" validate:"required,min=1"`
}

// ReorderImages handles the gallery reorder request. The first ID in the list
// becomes the product's primary image.
func (h *CatalogHandler) ReorderImages(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req reorderImagesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ReorderImages(c.Request().Context(), &usecase.ReorderImagesInput{
		ProductID: productID,
		ImageIDs:  req.ImageIDs,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Ordem atualizada"}, "Ordem das imagens atualizada")
}

// RemoveImage handles the gallery entry removal request.
func (h *CatalogHandler) RemoveImage(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	imageID, err := uuid.Parse(c.Param("imageID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image ID")
	}

	if err := h.uc.RemoveImage(c.Request().Context(), productID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Imagem removida"}, "Imagem removida com sucesso")
}
