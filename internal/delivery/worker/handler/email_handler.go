// Package handler contains the task handlers for the worker delivery.
package handler

import (
	"context"
	"log/slog"

	"marzan/internal/domain/repository"
	"marzan/internal/domain/service"
	"marzan/internal/infra/tasks"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EmailHandler processes loyalty code delivery tasks from the queue.
type EmailHandler struct {
	codeRepo repository.LoyaltyCodeRepository
	mailer   service.Mailer
	logger   *slog.Logger
}

// EmailHandlerParams holds dependencies for the EmailHandler, injected by Fx.
type EmailHandlerParams struct {
	fx.In

	CodeRepo repository.LoyaltyCodeRepository
	Mailer   service.Mailer
	Logger   *slog.Logger
}

// NewEmailHandler is the constructor for EmailHandler.
func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	return &EmailHandler{
		codeRepo: params.CodeRepo,
		mailer:   params.Mailer,
		logger:   params.Logger,
	}
}

// HandleSendCodeEmail delivers the loyalty code email for an issued code.
// The code is re-read from the database so a resend always sees current
// state; codes deleted or redeemed since enqueueing are skipped.
func (h *EmailHandler) HandleSendCodeEmail(ctx context.Context, task *asynq.Task) error {
	payload, err := tasks.ParseSendCodeEmailPayload(task.Payload())
	if err != nil {
		// A malformed payload never becomes valid; retrying is pointless.
		h.logger.Error("[Worker] Invalid send code payload", slog.Any("error", err))

		return nil
	}

	code, err := h.codeRepo.FindByID(ctx, payload.CodeID)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			h.logger.Warn("[Worker] Code no longer exists, dropping task",
				slog.String("code_id", payload.CodeID.String()),
			)

			return nil
		}

		return errors.Wrap(err, "failed to load code for email delivery")
	}

	if code.IsUsed() {
		h.logger.Info("[Worker] Code already redeemed, skipping email",
			slog.String("code_id", code.ID.String()),
		)

		return nil
	}

	if err := h.mailer.SendLoyaltyCode(ctx, code.Email, code.Code); err != nil {
		return errors.Wrap(err, "failed to send loyalty code email")
	}

	h.logger.Info("[Worker] Loyalty code email sent",
		slog.String("code_id", code.ID.String()),
	)

	return nil
}
