package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"net/url"
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

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager       repository.TransactionManager
	codeRepo        repository.LoyaltyCodeRepository
	userRepo        repository.UserRepository
	rewardRepo      repository.RewardRepository
	dispatcher      service.CodeDispatcher
	eventPublisher  service.EventPublisher
	codeMaxAttempts int
	siteURL         string
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CodeRepo       repository.LoyaltyCodeRepository
	UserRepo       repository.UserRepository
	RewardRepo     repository.RewardRepository
	Dispatcher     service.CodeDispatcher
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	maxAttempts := 5
	siteURL := "https://marzantaste.com"
	if params.Config != nil && params.Config.Loyalty != nil {
		if params.Config.Loyalty.CodeMaxAttempts > 0 {
			maxAttempts = params.Config.Loyalty.CodeMaxAttempts
		}
		if params.Config.Loyalty.SiteURL != "" {
			siteURL = params.Config.Loyalty.SiteURL
		}
	}

	return &adminService{
		txManager:       params.TxManager,
		codeRepo:        params.CodeRepo,
		userRepo:        params.UserRepo,
		rewardRepo:      params.RewardRepo,
		dispatcher:      params.Dispatcher,
		eventPublisher:  params.EventPublisher,
		codeMaxAttempts: maxAttempts,
		siteURL:         siteURL,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateCode issues a fresh single-use code bound to a customer email.
// Generation retries on the rare code collision; the unique constraint on the
// code column is the arbiter under concurrency.
func (srv *adminService) GenerateCode(ctx context.Context, input *usecase.GenerateCodeInput) (*usecase.GenerateCodeOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Generating loyalty code", slog.String("email", email))

	var issued *entity.LoyaltyCode

	for attempt := 1; attempt <= srv.codeMaxAttempts; attempt++ {
		codeValue, err := randomCode()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate random code")
		}

		code := &entity.LoyaltyCode{
			Code:      codeValue,
			Email:     email,
			CreatedBy: &input.AdminID,
		}

		err = srv.codeRepo.Create(ctx, code)
		if err == nil {
			issued = code

			break
		}
		if !errors.Is(err, repository.ErrDuplicateCode) {
			return nil, errors.Wrap(err, "failed to store loyalty code")
		}

		srv.log(ctx).Warn("Code collision, retrying",
			slog.Int("attempt", attempt),
		)
	}

	if issued == nil {
		return nil, errors.Wrap(domainerrors.ErrCodeGenerationFailed, "exhausted code generation attempts")
	}

	// Email delivery is queued best effort; issuance stands even when the
	// queue is down so staff can resend or share via WhatsApp.
	emailQueued := true
	if err := srv.dispatcher.EnqueueSendCode(ctx, issued.ID); err != nil {
		emailQueued = false
		srv.log(ctx).Error("Failed to enqueue code email",
			slog.Any("codeID", issued.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Loyalty code issued",
		slog.Any("codeID", issued.ID),
		slog.Bool("emailQueued", emailQueued),
	)

	return &usecase.GenerateCodeOutput{
		Code:        issued,
		EmailQueued: emailQueued,
	}, nil
}

// ResendCode re-queues the delivery email for an existing unused code.
func (srv *adminService) ResendCode(ctx context.Context, codeID uuid.UUID) error {
	code, err := srv.codeRepo.FindByID(ctx, codeID)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return errors.Wrap(domainerrors.ErrCodeNotFound, "code lookup failed")
		}

		return errors.Wrap(err, "failed to find code")
	}

	if code.IsUsed() {
		return errors.Wrap(domainerrors.ErrCodeAlreadyUsed, "cannot resend a redeemed code")
	}

	if err := srv.dispatcher.EnqueueSendCode(ctx, code.ID); err != nil {
		return errors.Wrap(err, "failed to enqueue code email")
	}

	srv.log(ctx).Info("Code email re-queued", slog.Any("codeID", codeID))

	return nil
}

// WhatsAppShareLink builds a wa.me link pre-filled with the code message.
func (srv *adminService) WhatsAppShareLink(ctx context.Context, input *usecase.WhatsAppShareInput) (string, error) {
	code, err := srv.codeRepo.FindByID(ctx, input.CodeID)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return "", errors.Wrap(domainerrors.ErrCodeNotFound, "code lookup failed")
		}

		return "", errors.Wrap(err, "failed to find code")
	}

	digits := digitsOnly(input.Phone)
	if digits == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "phone number has no digits")
	}

	message := "Seu código de fidelidade Marzan Taste: " + code.Code +
		"\n\nResgate em: " + srv.siteURL

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message), nil
}

// ListCodes returns all issued codes, newest first.
func (srv *adminService) ListCodes(ctx context.Context) ([]*entity.LoyaltyCode, error) {
	codes, err := srv.codeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list codes")
	}

	return codes, nil
}

// ListUsers searches registered customers by name or email.
func (srv *adminService) ListUsers(ctx context.Context, query string) ([]*entity.User, error) {
	users, err := srv.userRepo.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}

// ActiveRewards lists all unclaimed rewards with their owners.
func (srv *adminService) ActiveRewards(ctx context.Context) ([]*entity.ActiveReward, error) {
	rewards, err := srv.rewardRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active rewards")
	}

	return rewards, nil
}

// ClaimReward marks a reward as handed over. The repository guard makes a
// repeated claim a no-op, so double-scanning at the counter is harmless.
func (srv *adminService) ClaimReward(ctx context.Context, rewardID uuid.UUID) error {
	var claimed *entity.Reward

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rewardRepo := repoFactory.RewardRepo()

		reward, err := rewardRepo.FindByID(ctx, rewardID)
		if err != nil {
			if errors.Is(err, repository.ErrRewardNotFound) {
				return errors.Wrap(domainerrors.ErrRewardNotFound, "reward lookup failed")
			}

			return errors.Wrap(err, "failed to find reward")
		}

		if err := rewardRepo.Claim(ctx, rewardID, time.Now()); err != nil {
			return errors.Wrap(err, "failed to claim reward")
		}

		claimed = reward

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Claim failed", slog.Any("rewardID", rewardID), slog.Any("error", err))

		return err
	}

	if publishErr := srv.eventPublisher.PublishLoyaltyEvent(ctx, &service.LoyaltyEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventRewardClaimed,
		UserID:     claimed.UserID.String(),
		RewardID:   rewardID.String(),
		OccurredAt: time.Now(),
	}); publishErr != nil {
		srv.log(ctx).Warn("Failed to publish reward claimed event", slog.Any("error", publishErr))
	}

	srv.log(ctx).Info("Reward claimed", slog.Any("rewardID", rewardID))

	return nil
}

// randomCode draws a fresh 6-character code from the allowed charset using
// crypto/rand so codes are not guessable from issuance order.
func randomCode() (string, error) {
	charset := entity.CodeCharset
	max := big.NewInt(int64(len(charset)))

	b := make([]byte, entity.CodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// digitsOnly strips everything but digits from a phone number.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
