package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marzan/config"
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

// loyaltyService implements the LoyaltyUsecase interface.
type loyaltyService struct {
	txManager       repository.TransactionManager
	purchaseRepo    repository.PurchaseRepository
	rewardRepo      repository.RewardRepository
	qrcodeService   service.QRCodeService
	eventPublisher  service.EventPublisher
	rewardThreshold int64
	logger          *slog.Logger
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PurchaseRepo   repository.PurchaseRepository
	RewardRepo     repository.RewardRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewLoyaltyService is the constructor for loyaltyService.
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	threshold := int64(entity.RewardThreshold)
	if params.Config != nil && params.Config.Loyalty != nil && params.Config.Loyalty.RewardThreshold > 0 {
		threshold = int64(params.Config.Loyalty.RewardThreshold)
	}

	return &loyaltyService{
		txManager:       params.TxManager,
		purchaseRepo:    params.PurchaseRepo,
		rewardRepo:      params.RewardRepo,
		qrcodeService:   params.QRCodeService,
		eventPublisher:  params.EventPublisher,
		rewardThreshold: threshold,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *loyaltyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Redeem validates and consumes a loyalty code in a single transaction.
// The code row is locked for the duration, so two customers racing on the
// same code serialize and the loser sees it as already used.
func (srv *loyaltyService) Redeem(ctx context.Context, input *usecase.RedeemCodeInput) (*usecase.RedeemCodeOutput, error) {
	codeValue := strings.ToUpper(strings.TrimSpace(input.Code))
	srv.log(ctx).Info("Redeeming loyalty code", slog.Any("userID", input.UserID))

	output := &usecase.RedeemCodeOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()
		userRepo := repoFactory.UserRepo()
		purchaseRepo := repoFactory.PurchaseRepo()
		rewardRepo := repoFactory.RewardRepo()

		code, err := codeRepo.FindByCodeForUpdate(ctx, codeValue)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return errors.Wrap(domainerrors.ErrCodeNotFound, "code lookup failed")
			}

			return errors.Wrap(err, "failed to find code for update")
		}

		if code.IsUsed() {
			return errors.Wrap(domainerrors.ErrCodeAlreadyUsed, "code already redeemed")
		}

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load redeeming user")
		}

		// Codes are bound to the email they were issued for.
		if !strings.EqualFold(code.Email, user.Email) {
			return errors.Wrap(domainerrors.ErrCodeEmailMismatch, "code issued for another email")
		}

		now := time.Now()
		if err := codeRepo.MarkUsed(ctx, code.ID, user.ID, now); err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return errors.Wrap(domainerrors.ErrCodeAlreadyUsed, "code already redeemed")
			}

			return errors.Wrap(err, "failed to mark code used")
		}

		// The purchase carries the customer-reported date; the code itself is
		// always consumed at redemption time.
		purchaseDate := input.PurchaseDate
		if purchaseDate.IsZero() {
			purchaseDate = now
		}

		purchase := &entity.Purchase{
			UserID:        user.ID,
			TransactionID: code.Code,
			Verified:      true,
			PurchasedAt:   purchaseDate,
		}
		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to append purchase to ledger")
		}
		output.Purchase = purchase

		count, err := purchaseRepo.CountByUser(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count purchases")
		}
		output.PurchaseCount = count

		// Every threshold-th purchase completes a card and earns a reward.
		if count > 0 && count%srv.rewardThreshold == 0 {
			reward := &entity.Reward{
				UserID:     user.ID,
				RewardType: entity.RewardTypeCookieBox,
				ExpiryDate: now.AddDate(0, 1, 0),
			}
			if err := rewardRepo.Create(ctx, reward); err != nil {
				if errors.Is(err, repository.ErrActiveRewardExists) {
					// The customer still holds an unclaimed reward; the
					// purchase stands but no second reward is issued.
					srv.log(ctx).Warn("Reward threshold reached with unclaimed reward outstanding",
						slog.Any("userID", user.ID),
					)

					return nil
				}

				return errors.Wrap(err, "failed to create reward")
			}
			output.Reward = reward
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Redemption failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.publishRedeemEvents(ctx, input.UserID, codeValue, output.Reward)

	srv.log(ctx).Info("Loyalty code redeemed",
		slog.Any("userID", input.UserID),
		slog.Int64("purchaseCount", output.PurchaseCount),
		slog.Bool("rewardIssued", output.Reward != nil),
	)

	return output, nil
}

// publishRedeemEvents publishes the redemption events. Publishing is best
// effort; a failed publish never rolls back a committed redemption.
func (srv *loyaltyService) publishRedeemEvents(ctx context.Context, userID uuid.UUID, code string, reward *entity.Reward) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	now := time.Now()

	if err := srv.eventPublisher.PublishLoyaltyEvent(ctx, &service.LoyaltyEvent{
		RequestID:  requestID,
		Type:       service.EventCodeRedeemed,
		UserID:     userID.String(),
		Code:       code,
		OccurredAt: now,
	}); err != nil {
		srv.log(ctx).Warn("Failed to publish code redeemed event", slog.Any("error", err))
	}

	if reward != nil {
		if err := srv.eventPublisher.PublishLoyaltyEvent(ctx, &service.LoyaltyEvent{
			RequestID:  requestID,
			Type:       service.EventRewardIssued,
			UserID:     userID.String(),
			RewardID:   reward.ID.String(),
			OccurredAt: now,
		}); err != nil {
			srv.log(ctx).Warn("Failed to publish reward issued event", slog.Any("error", err))
		}
	}
}

// Progress reports the customer's stamp count and active reward.
func (srv *loyaltyService) Progress(ctx context.Context, userID uuid.UUID) (*usecase.ProgressOutput, error) {
	count, err := srv.purchaseRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count purchases")
	}

	output := &usecase.ProgressOutput{
		PurchaseCount: count,
		CurrentStamps: count % srv.rewardThreshold,
		Threshold:     srv.rewardThreshold,
	}

	reward, err := srv.rewardRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrRewardNotFound) {
			return nil, errors.Wrap(err, "failed to load active reward")
		}
	} else {
		output.ActiveReward = reward
		output.RewardStatus = entity.RewardStatusAvailable

		return output, nil
	}

	// No active reward; a past reward means the last one was handed over.
	if _, err := srv.rewardRepo.FindLatestByUser(ctx, userID); err != nil {
		if !errors.Is(err, repository.ErrRewardNotFound) {
			return nil, errors.Wrap(err, "failed to load latest reward")
		}
		output.RewardStatus = entity.RewardStatusPending
	} else {
		output.RewardStatus = entity.RewardStatusClaimed
	}

	return output, nil
}

// History lists the customer's purchases for the selected period.
func (srv *loyaltyService) History(ctx context.Context, input *usecase.HistoryInput) ([]*entity.Purchase, error) {
	period := input.Period
	if period == "" {
		period = entity.PeriodAll
	}
	if !period.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown history period")
	}

	purchases, err := srv.purchaseRepo.ListByUser(ctx, input.UserID, period)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}

// RewardQR renders the PNG QR code for the customer's active reward.
func (srv *loyaltyService) RewardQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	reward, err := srv.rewardRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRewardNotFound, "no active reward")
		}

		return nil, errors.Wrap(err, "failed to load active reward")
	}

	png, err := srv.qrcodeService.GenerateRewardQR(reward.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reward QR code")
	}

	return png, nil
}
