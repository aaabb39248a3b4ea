package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marzan/config"
	"marzan/internal/domain/entity"
	domainerrors "marzan/internal/domain/errors"
	"marzan/internal/domain/repository"
	"marzan/internal/domain/service"
	mockRepo "marzan/internal/mocks/repository"
	mockSvc "marzan/internal/mocks/service"
	"marzan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// loyaltyServiceFixtures holds all test dependencies for loyalty service tests.
type loyaltyServiceFixtures struct {
	service        usecase.LoyaltyUsecase
	txManager      *mockRepo.MockTransactionManager
	purchaseRepo   *mockRepo.MockPurchaseRepository
	rewardRepo     *mockRepo.MockRewardRepository
	qrcodeService  *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestLoyaltyService(t *testing.T) loyaltyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	rewardRepo := mockRepo.NewMockRewardRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewLoyaltyService(LoyaltyServiceParams{
		TxManager:      txManager,
		PurchaseRepo:   purchaseRepo,
		RewardRepo:     rewardRepo,
		QRCodeService:  qrcodeService,
		EventPublisher: eventPublisher,
		Config: &config.Config{
			Loyalty: &config.LoyaltyConfig{RewardThreshold: 10},
		},
		Logger: logger,
	})

	return loyaltyServiceFixtures{
		service:        svc,
		txManager:      txManager,
		purchaseRepo:   purchaseRepo,
		rewardRepo:     rewardRepo,
		qrcodeService:  qrcodeService,
		eventPublisher: eventPublisher,
	}
}

func TestLoyaltyService_Redeem_Success(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	codeID := uuid.New()
	input := &usecase.RedeemCodeInput{UserID: userID, Code: "  abc123 "}

	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123", Email: "maria@example.com"}
	user := &entity.User{ID: userID, Email: "Maria@Example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockRewardRepo := mockRepo.NewMockRewardRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)
			mockFactory.EXPECT().RewardRepo().Return(mockRewardRepo)

			// The raw input is trimmed and uppercased before lookup.
			mockCodeRepo.EXPECT().FindByCodeForUpdate(ctx, "ABC123").Return(code, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockCodeRepo.EXPECT().
				MarkUsed(ctx, codeID, userID, mock.AnythingOfType("time.Time")).
				Return(nil)
			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Run(func(ctx context.Context, purchase *entity.Purchase) {
					assert.Equal(t, userID, purchase.UserID)
					assert.Equal(t, "ABC123", purchase.TransactionID)
					assert.True(t, purchase.Verified)
				}).
				Return(nil)
			mockPurchaseRepo.EXPECT().CountByUser(ctx, userID).Return(int64(3), nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).
		Run(func(ctx context.Context, event *service.LoyaltyEvent) {
			assert.Equal(t, service.EventCodeRedeemed, event.Type)
			assert.Equal(t, "ABC123", event.Code)
		}).
		Return(nil)

	output, err := fx.service.Redeem(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(3), output.PurchaseCount)
	assert.NotNil(t, output.Purchase)
	// Without a customer-reported date the purchase is dated at redemption time.
	assert.WithinDuration(t, time.Now(), output.Purchase.PurchasedAt, 5*time.Second)
	assert.Nil(t, output.Reward)
}

func TestLoyaltyService_Redeem_UsesReportedPurchaseDate(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	codeID := uuid.New()
	purchaseDate := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	input := &usecase.RedeemCodeInput{UserID: userID, Code: "ABC123", PurchaseDate: purchaseDate}

	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123", Email: "maria@example.com"}
	user := &entity.User{ID: userID, Email: "maria@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockRewardRepo := mockRepo.NewMockRewardRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)
			mockFactory.EXPECT().RewardRepo().Return(mockRewardRepo)

			mockCodeRepo.EXPECT().FindByCodeForUpdate(ctx, "ABC123").Return(code, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			// The code is consumed now even when the purchase is backdated.
			mockCodeRepo.EXPECT().
				MarkUsed(ctx, codeID, userID, mock.AnythingOfType("time.Time")).
				Run(func(ctx context.Context, id, usedBy uuid.UUID, usedAt time.Time) {
					assert.WithinDuration(t, time.Now(), usedAt, 5*time.Second)
				}).
				Return(nil)
			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Run(func(ctx context.Context, purchase *entity.Purchase) {
					assert.Equal(t, purchaseDate, purchase.PurchasedAt)
				}).
				Return(nil)
			mockPurchaseRepo.EXPECT().CountByUser(ctx, userID).Return(int64(4), nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).
		Return(nil)

	output, err := fx.service.Redeem(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, purchaseDate, output.Purchase.PurchasedAt)
}

func TestLoyaltyService_Redeem_TenthPurchaseEarnsReward(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	codeID := uuid.New()
	input := &usecase.RedeemCodeInput{UserID: userID, Code: "ABC123"}

	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123", Email: "maria@example.com"}
	user := &entity.User{ID: userID, Email: "maria@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockRewardRepo := mockRepo.NewMockRewardRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)
			mockFactory.EXPECT().RewardRepo().Return(mockRewardRepo)

			mockCodeRepo.EXPECT().FindByCodeForUpdate(ctx, "ABC123").Return(code, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockCodeRepo.EXPECT().
				MarkUsed(ctx, codeID, userID, mock.AnythingOfType("time.Time")).
				Return(nil)
			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Return(nil)
			mockPurchaseRepo.EXPECT().CountByUser(ctx, userID).Return(int64(10), nil)
			mockRewardRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Reward")).
				Run(func(ctx context.Context, reward *entity.Reward) {
					assert.Equal(t, userID, reward.UserID)
					assert.Equal(t, entity.RewardTypeCookieBox, reward.RewardType)
					// Expiry is one calendar month out.
					assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), reward.ExpiryDate, 5*time.Second)
				}).
				Return(nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).
		Return(nil).
		Twice()

	output, err := fx.service.Redeem(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), output.PurchaseCount)
	assert.NotNil(t, output.Reward)
}

func TestLoyaltyService_Redeem_NoSecondRewardWhileUnclaimed(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	codeID := uuid.New()
	input := &usecase.RedeemCodeInput{UserID: userID, Code: "ABC123"}

	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123", Email: "maria@example.com"}
	user := &entity.User{ID: userID, Email: "maria@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockRewardRepo := mockRepo.NewMockRewardRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)
			mockFactory.EXPECT().RewardRepo().Return(mockRewardRepo)

			mockCodeRepo.EXPECT().FindByCodeForUpdate(ctx, "ABC123").Return(code, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockCodeRepo.EXPECT().
				MarkUsed(ctx, codeID, userID, mock.AnythingOfType("time.Time")).
				Return(nil)
			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Return(nil)
			mockPurchaseRepo.EXPECT().CountByUser(ctx, userID).Return(int64(20), nil)
			mockRewardRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Reward")).
				Return(repository.ErrActiveRewardExists)

			// The purchase stands; the outstanding reward blocks a second one.
			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).
		Return(nil).
		Once()

	output, err := fx.service.Redeem(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(20), output.PurchaseCount)
	assert.Nil(t, output.Reward)
}

func TestLoyaltyService_Redeem_CodeNotFound(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	input := &usecase.RedeemCodeInput{UserID: uuid.New(), Code: "NOPE99"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
			mockFactory.EXPECT().PurchaseRepo().Return(mockRepo.NewMockPurchaseRepository(t))
			mockFactory.EXPECT().RewardRepo().Return(mockRepo.NewMockRewardRepository(t))

			mockCodeRepo.EXPECT().
				FindByCodeForUpdate(ctx, "NOPE99").
				Return(nil, repository.ErrCodeNotFound)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
		}).
		Return(errors.Wrap(domainerrors.ErrCodeNotFound, "code lookup failed"))

	output, err := fx.service.Redeem(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestLoyaltyService_Redeem_CodeAlreadyUsed(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	usedAt := time.Now().Add(-time.Hour)
	input := &usecase.RedeemCodeInput{UserID: userID, Code: "ABC123"}

	code := &entity.LoyaltyCode{
		ID:     uuid.New(),
		Code:   "ABC123",
		Email:  "maria@example.com",
		UsedAt: &usedAt,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
			mockFactory.EXPECT().PurchaseRepo().Return(mockRepo.NewMockPurchaseRepository(t))
			mockFactory.EXPECT().RewardRepo().Return(mockRepo.NewMockRewardRepository(t))

			mockCodeRepo.EXPECT().FindByCodeForUpdate(ctx, "ABC123").Return(code, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrCodeAlreadyUsed))
		}).
		Return(errors.Wrap(domainerrors.ErrCodeAlreadyUsed, "code already redeemed"))

	output, err := fx.service.Redeem(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeAlreadyUsed))
}

func TestLoyaltyService_Redeem_EmailMismatch(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RedeemCodeInput{UserID: userID, Code: "ABC123"}

	code := &entity.LoyaltyCode{ID: uuid.New(), Code: "ABC123", Email: "someone.else@example.com"}
	user := &entity.User{ID: userID, Email: "maria@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockRepo.NewMockPurchaseRepository(t))
			mockFactory.EXPECT().RewardRepo().Return(mockRepo.NewMockRewardRepository(t))

			mockCodeRepo.EXPECT().FindByCodeForUpdate(ctx, "ABC123").Return(code, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrCodeEmailMismatch))
		}).
		Return(errors.Wrap(domainerrors.ErrCodeEmailMismatch, "code issued for another email"))

	output, err := fx.service.Redeem(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeEmailMismatch))
}

func TestLoyaltyService_Redeem_PublishFailureDoesNotFailRedemption(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	codeID := uuid.New()
	input := &usecase.RedeemCodeInput{UserID: userID, Code: "ABC123"}

	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123", Email: "maria@example.com"}
	user := &entity.User{ID: userID, Email: "maria@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)
			mockFactory.EXPECT().RewardRepo().Return(mockRepo.NewMockRewardRepository(t))

			mockCodeRepo.EXPECT().FindByCodeForUpdate(ctx, "ABC123").Return(code, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockCodeRepo.EXPECT().
				MarkUsed(ctx, codeID, userID, mock.AnythingOfType("time.Time")).
				Return(nil)
			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Return(nil)
			mockPurchaseRepo.EXPECT().CountByUser(ctx, userID).Return(int64(1), nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.Redeem(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.PurchaseCount)
}

func TestLoyaltyService_Progress(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	reward := &entity.Reward{ID: uuid.New(), UserID: userID}

	fx.purchaseRepo.EXPECT().CountByUser(ctx, userID).Return(int64(13), nil)
	fx.rewardRepo.EXPECT().FindActiveByUser(ctx, userID).Return(reward, nil)

	output, err := fx.service.Progress(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(13), output.PurchaseCount)
	assert.Equal(t, int64(3), output.CurrentStamps)
	assert.Equal(t, int64(10), output.Threshold)
	assert.Equal(t, entity.RewardStatusAvailable, output.RewardStatus)
	assert.Equal(t, reward, output.ActiveReward)
}

func TestLoyaltyService_Progress_NoActiveReward(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.purchaseRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
	fx.rewardRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrRewardNotFound)
	fx.rewardRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(nil, repository.ErrRewardNotFound)

	output, err := fx.service.Progress(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.CurrentStamps)
	assert.Equal(t, entity.RewardStatusPending, output.RewardStatus)
	assert.Nil(t, output.ActiveReward)
}

func TestLoyaltyService_Progress_ClaimedReward(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	claimedAt := time.Now().Add(-24 * time.Hour)

	fx.purchaseRepo.EXPECT().CountByUser(ctx, userID).Return(int64(12), nil)
	fx.rewardRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrRewardNotFound)
	fx.rewardRepo.EXPECT().
		FindLatestByUser(ctx, userID).
		Return(&entity.Reward{ID: uuid.New(), UserID: userID, ClaimedAt: &claimedAt}, nil)

	output, err := fx.service.Progress(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.RewardStatusClaimed, output.RewardStatus)
	assert.Nil(t, output.ActiveReward)
}

func TestLoyaltyService_History_DefaultsToAll(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	purchases := []*entity.Purchase{{ID: uuid.New(), UserID: userID}}

	fx.purchaseRepo.EXPECT().
		ListByUser(ctx, userID, entity.PeriodAll).
		Return(purchases, nil)

	result, err := fx.service.History(ctx, &usecase.HistoryInput{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, purchases, result)
}

func TestLoyaltyService_History_InvalidPeriod(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()

	result, err := fx.service.History(ctx, &usecase.HistoryInput{
		UserID: uuid.New(),
		Period: entity.PurchasePeriod("fortnight"),
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLoyaltyService_RewardQR_Success(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	reward := &entity.Reward{ID: uuid.New(), UserID: userID}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.rewardRepo.EXPECT().FindActiveByUser(ctx, userID).Return(reward, nil)
	fx.qrcodeService.EXPECT().GenerateRewardQR(reward.ID, userID).Return(png, nil)

	result, err := fx.service.RewardQR(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestLoyaltyService_RewardQR_NoActiveReward(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.rewardRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrRewardNotFound)

	result, err := fx.service.RewardQR(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrRewardNotFound))
}
