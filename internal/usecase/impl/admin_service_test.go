package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
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

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service        usecase.AdminUsecase
	txManager      *mockRepo.MockTransactionManager
	codeRepo       *mockRepo.MockLoyaltyCodeRepository
	userRepo       *mockRepo.MockUserRepository
	rewardRepo     *mockRepo.MockRewardRepository
	dispatcher     *mockSvc.MockCodeDispatcher
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	codeRepo := mockRepo.NewMockLoyaltyCodeRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	rewardRepo := mockRepo.NewMockRewardRepository(t)
	dispatcher := mockSvc.NewMockCodeDispatcher(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAdminService(AdminServiceParams{
		TxManager:      txManager,
		CodeRepo:       codeRepo,
		UserRepo:       userRepo,
		RewardRepo:     rewardRepo,
		Dispatcher:     dispatcher,
		EventPublisher: eventPublisher,
		Config: &config.Config{
			Loyalty: &config.LoyaltyConfig{
				CodeMaxAttempts: 3,
				SiteURL:         "https://marzantaste.com",
			},
		},
		Logger: logger,
	})

	return adminServiceFixtures{
		service:        svc,
		txManager:      txManager,
		codeRepo:       codeRepo,
		userRepo:       userRepo,
		rewardRepo:     rewardRepo,
		dispatcher:     dispatcher,
		eventPublisher: eventPublisher,
	}
}

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestAdminService_GenerateCode_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	adminID := uuid.New()
	input := &usecase.GenerateCodeInput{Email: "  Maria@Example.com ", AdminID: adminID}

	fx.codeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoyaltyCode")).
		Run(func(ctx context.Context, code *entity.LoyaltyCode) {
			code.ID = uuid.New()
			assert.Regexp(t, codePattern, code.Code)
			assert.Equal(t, "maria@example.com", code.Email)
			require.NotNil(t, code.CreatedBy)
			assert.Equal(t, adminID, *code.CreatedBy)
		}).
		Return(nil)

	fx.dispatcher.EXPECT().
		EnqueueSendCode(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	output, err := fx.service.GenerateCode(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.EmailQueued)
	assert.Regexp(t, codePattern, output.Code.Code)
}

func TestAdminService_GenerateCode_RetriesOnCollision(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.GenerateCodeInput{Email: "maria@example.com", AdminID: uuid.New()}

	fx.codeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoyaltyCode")).
		Return(repository.ErrDuplicateCode).
		Once()
	fx.codeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoyaltyCode")).
		Return(nil).
		Once()

	fx.dispatcher.EXPECT().
		EnqueueSendCode(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	output, err := fx.service.GenerateCode(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output.Code)
}

func TestAdminService_GenerateCode_ExhaustsAttempts(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.GenerateCodeInput{Email: "maria@example.com", AdminID: uuid.New()}

	fx.codeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoyaltyCode")).
		Return(repository.ErrDuplicateCode).
		Times(3)

	output, err := fx.service.GenerateCode(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeGenerationFailed))
}

func TestAdminService_GenerateCode_QueueDownStillIssues(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.GenerateCodeInput{Email: "maria@example.com", AdminID: uuid.New()}

	fx.codeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoyaltyCode")).
		Return(nil)
	fx.dispatcher.EXPECT().
		EnqueueSendCode(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(errors.New("redis connection refused"))

	output, err := fx.service.GenerateCode(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.EmailQueued)
	assert.NotNil(t, output.Code)
}

func TestAdminService_ResendCode_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	codeID := uuid.New()
	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123", Email: "maria@example.com"}

	fx.codeRepo.EXPECT().FindByID(ctx, codeID).Return(code, nil)
	fx.dispatcher.EXPECT().EnqueueSendCode(ctx, codeID).Return(nil)

	err := fx.service.ResendCode(ctx, codeID)

	require.NoError(t, err)
}

func TestAdminService_ResendCode_UsedCode(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	codeID := uuid.New()
	usedAt := time.Now().Add(-time.Hour)
	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123", UsedAt: &usedAt}

	fx.codeRepo.EXPECT().FindByID(ctx, codeID).Return(code, nil)

	err := fx.service.ResendCode(ctx, codeID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeAlreadyUsed))
}

func TestAdminService_ResendCode_QueueFailureIsAnError(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	codeID := uuid.New()
	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123"}

	fx.codeRepo.EXPECT().FindByID(ctx, codeID).Return(code, nil)
	fx.dispatcher.EXPECT().
		EnqueueSendCode(ctx, codeID).
		Return(errors.New("redis connection refused"))

	err := fx.service.ResendCode(ctx, codeID)

	assert.Error(t, err)
}

func TestAdminService_WhatsAppShareLink(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	codeID := uuid.New()
	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123", Email: "maria@example.com"}

	fx.codeRepo.EXPECT().FindByID(ctx, codeID).Return(code, nil)

	link, err := fx.service.WhatsAppShareLink(ctx, &usecase.WhatsAppShareInput{
		CodeID: codeID,
		Phone:  "+55 (11) 91234-5678",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511912345678?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	message := parsed.Query().Get("text")
	assert.Contains(t, message, "ABC123")
	assert.Contains(t, message, "https://marzantaste.com")
}

func TestAdminService_WhatsAppShareLink_NoDigits(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	codeID := uuid.New()
	code := &entity.LoyaltyCode{ID: codeID, Code: "ABC123"}

	fx.codeRepo.EXPECT().FindByID(ctx, codeID).Return(code, nil)

	link, err := fx.service.WhatsAppShareLink(ctx, &usecase.WhatsAppShareInput{
		CodeID: codeID,
		Phone:  "not a number",
	})

	assert.Error(t, err)
	assert.Empty(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_ListCodes(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	codes := []*entity.LoyaltyCode{{ID: uuid.New(), Code: "ABC123"}}

	fx.codeRepo.EXPECT().List(ctx).Return(codes, nil)

	result, err := fx.service.ListCodes(ctx)

	require.NoError(t, err)
	assert.Equal(t, codes, result)
}

func TestAdminService_ListUsers_TrimsQuery(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New(), Name: "Maria Silva"}}

	fx.userRepo.EXPECT().Search(ctx, "maria").Return(users, nil)

	result, err := fx.service.ListUsers(ctx, "  maria ")

	require.NoError(t, err)
	assert.Equal(t, users, result)
}

func TestAdminService_ClaimReward_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	rewardID := uuid.New()
	userID := uuid.New()
	reward := &entity.Reward{ID: rewardID, UserID: userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRewardRepo := mockRepo.NewMockRewardRepository(t)

			mockFactory.EXPECT().RewardRepo().Return(mockRewardRepo)
			mockRewardRepo.EXPECT().FindByID(ctx, rewardID).Return(reward, nil)
			mockRewardRepo.EXPECT().
				Claim(ctx, rewardID, mock.AnythingOfType("time.Time")).
				Return(nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).
		Run(func(ctx context.Context, event *service.LoyaltyEvent) {
			assert.Equal(t, service.EventRewardClaimed, event.Type)
			assert.Equal(t, rewardID.String(), event.RewardID)
		}).
		Return(nil)

	err := fx.service.ClaimReward(ctx, rewardID)

	require.NoError(t, err)
}

func TestAdminService_ClaimReward_RepeatedClaimIsNoOp(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	rewardID := uuid.New()
	userID := uuid.New()
	claimedAt := time.Now().Add(-time.Hour)
	reward := &entity.Reward{ID: rewardID, UserID: userID, ClaimedAt: &claimedAt}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRewardRepo := mockRepo.NewMockRewardRepository(t)

			mockFactory.EXPECT().RewardRepo().Return(mockRewardRepo)
			mockRewardRepo.EXPECT().FindByID(ctx, rewardID).Return(reward, nil)

			// The claimed_at IS NULL guard touches zero rows for a reward that
			// was already handed over; the repository reports success.
			mockRewardRepo.EXPECT().
				Claim(ctx, rewardID, mock.AnythingOfType("time.Time")).
				Return(nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).
		Return(nil)

	err := fx.service.ClaimReward(ctx, rewardID)

	require.NoError(t, err)
}

func TestAdminService_ClaimReward_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	rewardID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRewardRepo := mockRepo.NewMockRewardRepository(t)

			mockFactory.EXPECT().RewardRepo().Return(mockRewardRepo)
			mockRewardRepo.EXPECT().
				FindByID(ctx, rewardID).
				Return(nil, repository.ErrRewardNotFound)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrRewardNotFound))
		}).
		Return(errors.Wrap(domainerrors.ErrRewardNotFound, "reward lookup failed"))

	err := fx.service.ClaimReward(ctx, rewardID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRewardNotFound))
}

func TestRandomCode_ShapeAndCharset(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		code, err := randomCode()
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
		seen[code] = struct{}{}
	}
	// 50 draws from a 36^6 space colliding down to a handful would mean a broken generator.
	assert.Greater(t, len(seen), 45)
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5511912345678", digitsOnly("+55 (11) 91234-5678"))
	assert.Equal(t, "", digitsOnly("no digits here"))
	assert.Equal(t, "123", digitsOnly("123"))
}
