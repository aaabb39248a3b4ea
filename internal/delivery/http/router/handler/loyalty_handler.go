package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marzan/internal/delivery/http/response"
	"marzan/internal/domain/entity"
	"marzan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoyaltyHandler holds dependencies for customer loyalty handlers.
type LoyaltyHandler struct {
	uc     usecase.LoyaltyUsecase
	logger *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler, injected by Fx.
func NewLoyaltyHandler(uc usecase.LoyaltyUsecase, logger *slog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		uc:     uc,
		logger: logger,
	}
}

// currentUserID extracts the authenticated user ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

type redeemRequest struct {
	Code string `json:"code" validate:"required"`

	// PurchaseDate is an optional YYYY-MM-DD value from the date picker.
	PurchaseDate string `json:"purchase_date"`
}

// Redeem handles the loyalty code redemption request.
func (h *LoyaltyHandler) Redeem(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req redeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.PurchaseDate, time.Local)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid purchase date")
		}
		purchaseDate = parsed
	}

	output, err := h.uc.Redeem(c.Request().Context(), &usecase.RedeemCodeInput{
		UserID:       userID,
		Code:         req.Code,
		PurchaseDate: purchaseDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Código resgatado com sucesso")
}

// Progress handles the loyalty card progress request.
func (h *LoyaltyHandler) Progress(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.Progress(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// History handles the purchase history request. The period query parameter
// accepts all, month, or year and defaults to all.
func (h *LoyaltyHandler) History(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	purchases, err := h.uc.History(c.Request().Context(), &usecase.HistoryInput{
		UserID: userID,
		Period: entity.PurchasePeriod(c.QueryParam("period")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "")
}

// RewardQR handles the reward QR code request and responds with a PNG image.
func (h *LoyaltyHandler) RewardQR(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.RewardQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
