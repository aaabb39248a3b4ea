package handler

import (
	"log/slog"
	"net/http"

	"marzan/internal/delivery/http/response"
	"marzan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for staff-facing handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type generateCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// GenerateCode handles the code issuance request.
func (h *AdminHandler) GenerateCode(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req generateCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid code issuance input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.GenerateCode(c.Request().Context(), &usecase.GenerateCodeInput{
		Email:   req.Email,
		AdminID: adminID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Código gerado com sucesso")
}

// ResendCode handles the email resend request for an issued code.
func (h *AdminHandler) ResendCode(c echo.Context) error {
	codeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid code ID")
	}

	if err := h.uc.ResendCode(c.Request().Context(), codeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "E-mail reenviado"}, "Reenvio agendado com sucesso")
}

type whatsAppShareRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// WhatsAppShareLink handles the request for a pre-filled wa.me share link.
func (h *AdminHandler) WhatsAppShareLink(c echo.Context) error {
	codeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid code ID")
	}

	var req whatsAppShareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.uc.WhatsAppShareLink(c.Request().Context(), &usecase.WhatsAppShareInput{
		CodeID: codeID,
		Phone:  req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": link}, "")
}

// ListCodes handles the issued code listing request.
func (h *AdminHandler) ListCodes(c echo.Context) error {
	codes, err := h.uc.ListCodes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, codes, "")
}

// ListUsers handles the customer search request.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// ActiveRewards handles the unclaimed reward listing request.
func (h *AdminHandler) ActiveRewards(c echo.Context) error {
	rewards, err := h.uc.ActiveRewards(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rewards, "")
}

// ClaimReward handles the reward hand-over request.
func (h *AdminHandler) ClaimReward(c echo.Context) error {
	rewardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reward ID")
	}

	if err := h.uc.ClaimReward(c.Request().Context(), rewardID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Prêmio entregue"}, "Prêmio resgatado com sucesso")
}
