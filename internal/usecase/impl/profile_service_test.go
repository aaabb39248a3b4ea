package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	postalLookup *mockSvc.MockPostalLookup
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	postalLookup := mockSvc.NewMockPostalLookup(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProfileService(ProfileServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		PostalLookup: postalLookup,
		Logger:       logger,
	})

	return profileServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		postalLookup: postalLookup,
	}
}

func TestProfileService_Get_BackfillsLegacyAddress(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Name:    "Maria Silva",
		Address: "Rua das Flores, nº123, Centro, São Paulo/SP, CEP 01310-100",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.Get(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "01310-100", got.CEP)
	assert.Equal(t, "Rua das Flores", got.Street)
	assert.Equal(t, "123", got.Number)
	assert.Equal(t, "Centro", got.Neighborhood)
	assert.Equal(t, "São Paulo", got.City)
	assert.Equal(t, "SP", got.State)
}

func TestProfileService_Get_KeepsStructuredFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Address: "Rua das Flores, nº123, Centro, São Paulo/SP, CEP 01310-100",
		Street:  "Avenida Paulista",
		Number:  "900",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.Get(ctx, userID)

	require.NoError(t, err)
	// Structured fields already exist, so the legacy line is left alone.
	assert.Equal(t, "Avenida Paulista", got.Street)
	assert.Equal(t, "900", got.Number)
	assert.Empty(t, got.CEP)
}

func TestProfileService_Get_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.Get(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_Update_RegeneratesLegacyAddress(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		UserID:       userID,
		Name:         "  Maria Silva  ",
		Phone:        " +55 11 91234-5678 ",
		CEP:          "01310100",
		Street:       " Avenida Paulista ",
		Number:       "900",
		Complement:   "Apto 42",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "sp",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "maria@example.com"}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Name == "Maria Silva" &&
						user.CEP == "01310-100" &&
						user.State == "SP" &&
						user.Address == "Avenida Paulista, nº900, Complemento: Apto 42, Bela Vista, São Paulo/SP, CEP 01310-100"
				})).
				Return(nil)

			err := fn(mockFactory)
			require.NoError(t, err)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", updated.Name)
	assert.Equal(t, "+55 11 91234-5678", updated.Phone)
	assert.Equal(t, "01310-100", updated.CEP)
	assert.Equal(t, "SP", updated.State)
}

func TestProfileService_Update_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{UserID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByID(ctx, input.UserID).
				Return(nil, repository.ErrUserNotFound)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed"))

	updated, err := fx.service.Update(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_LookupCEP_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	resolved := &service.PostalAddress{
		CEP:          "01310-100",
		Street:       "Avenida Paulista",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
	}

	fx.postalLookup.EXPECT().Lookup(ctx, "01310-100").Return(resolved, nil)

	got, err := fx.service.LookupCEP(ctx, "01310-100")

	require.NoError(t, err)
	assert.Equal(t, resolved, got)
}

func TestProfileService_LookupCEP_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.postalLookup.EXPECT().Lookup(ctx, "99999-999").Return(nil, service.ErrCEPNotFound)

	got, err := fx.service.LookupCEP(ctx, "99999-999")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrCEPNotFound))
}

func TestProfileService_LookupCEP_ServiceDown(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.postalLookup.EXPECT().
		Lookup(ctx, "01310-100").
		Return(nil, errors.New("viacep request failed"))

	got, err := fx.service.LookupCEP(ctx, "01310-100")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrExternalService))
}
