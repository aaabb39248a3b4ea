package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marzan/internal/delivery/context"
	"marzan/internal/domain/address"
	"marzan/internal/domain/entity"
	domainerrors "marzan/internal/domain/errors"
	"marzan/internal/domain/repository"
	"marzan/internal/domain/service"
	"marzan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	postalLookup service.PostalLookup
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	PostalLookup service.PostalLookup
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		postalLookup: params.PostalLookup,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get retrieves the profile. Accounts created before the structured address
// form only carry the legacy single-line address; for those the line is parsed
// into the structured fields on the way out. Nothing is written back.
func (srv *profileService) Get(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	backfillAddressFields(user)

	return user, nil
}

// backfillAddressFields fills empty structured fields from the legacy line.
func backfillAddressFields(user *entity.User) {
	if user.Address == "" || hasStructuredAddress(user) {
		return
	}

	fields, _ := address.Parse(user.Address)
	user.CEP = address.FormatCEP(fields.CEP)
	user.Street = fields.Street
	user.Number = fields.Number
	user.Complement = fields.Complement
	user.Neighborhood = fields.Neighborhood
	user.City = fields.City
	user.State = fields.State
}

func hasStructuredAddress(user *entity.User) bool {
	return user.CEP != "" || user.Street != "" || user.Number != "" ||
		user.Complement != "" || user.Neighborhood != "" ||
		user.City != "" || user.State != ""
}

// Update saves the profile. The legacy single-line address is regenerated from
// the structured fields so older readers keep seeing a coherent value.
func (srv *profileService) Update(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// The CEP is stored in its display shape, 00000-000.
		fields := address.Fields{
			CEP:          address.FormatCEP(input.CEP),
			Street:       strings.TrimSpace(input.Street),
			Number:       strings.TrimSpace(input.Number),
			Complement:   strings.TrimSpace(input.Complement),
			Neighborhood: strings.TrimSpace(input.Neighborhood),
			City:         strings.TrimSpace(input.City),
			State:        strings.ToUpper(strings.TrimSpace(input.State)),
		}

		user.Name = strings.TrimSpace(input.Name)
		user.Phone = strings.TrimSpace(input.Phone)
		user.CEP = fields.CEP
		user.Street = fields.Street
		user.Number = fields.Number
		user.Complement = fields.Complement
		user.Neighborhood = fields.Neighborhood
		user.City = fields.City
		user.State = fields.State
		user.Address = address.Format(fields)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", input.UserID))

	return updated, nil
}

// LookupCEP resolves a postal code for address autofill.
func (srv *profileService) LookupCEP(ctx context.Context, cep string) (*service.PostalAddress, error) {
	resolved, err := srv.postalLookup.Lookup(ctx, cep)
	if err != nil {
		if errors.Is(err, service.ErrCEPNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCEPNotFound, "cep lookup failed")
		}

		return nil, errors.Wrap(domainerrors.ErrExternalService, "postal lookup failed")
	}

	return resolved, nil
}
