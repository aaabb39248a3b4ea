// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"marzan/internal/domain/entity"
	domainerrors "marzan/internal/domain/errors"
	"marzan/internal/domain/repository"
	"marzan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loyaltyCodeRepository implements the repository.LoyaltyCodeRepository interface.
type loyaltyCodeRepository struct {
	db *gorm.DB
}

// NewLoyaltyCodeRepository is the constructor for loyaltyCodeRepository.
func NewLoyaltyCodeRepository(db *gorm.DB) repository.LoyaltyCodeRepository {
	return &loyaltyCodeRepository{
		db: db,
	}
}

// Create persists a newly issued code.
func (repo *loyaltyCodeRepository) Create(ctx context.Context, code *entity.LoyaltyCode) error {
	codeM := fromLoyaltyCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCode
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loyalty code")
	}

	// Update the entity with generated values
	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindByID retrieves a code by its record ID.
func (repo *loyaltyCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyCode, error) {
	var codeM model.LoyaltyCodeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty code by ID")
	}

	return toLoyaltyCodeDomain(&codeM), nil
}

// FindByCodeForUpdate retrieves a code by its value with a row lock.
// The lock holds until the surrounding transaction commits, so two concurrent
// redemptions of the same code serialize here.
func (repo *loyaltyCodeRepository) FindByCodeForUpdate(ctx context.Context, code string) (*entity.LoyaltyCode, error) {
	var codeM model.LoyaltyCodeModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty code for update")
	}

	return toLoyaltyCodeDomain(&codeM), nil
}

// MarkUsed stamps the code as redeemed. The used_at IS NULL guard keeps the
// code single-use even if a caller skips the row lock.
func (repo *loyaltyCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedBy uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCodeModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Updates(map[string]any{
			"used_at": usedAt,
			"used_by": usedBy,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark loyalty code used")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// List returns all issued codes, newest first.
func (repo *loyaltyCodeRepository) List(ctx context.Context) ([]*entity.LoyaltyCode, error) {
	var codeModels []*model.LoyaltyCodeModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&codeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list loyalty codes")
	}

	codes := make([]*entity.LoyaltyCode, 0, len(codeModels))
	for _, codeM := range codeModels {
		codes = append(codes, toLoyaltyCodeDomain(codeM))
	}

	return codes, nil
}

// --- Mapper Functions ---

// toLoyaltyCodeDomain converts a GORM LoyaltyCodeModel to a domain LoyaltyCode entity.
func toLoyaltyCodeDomain(data *model.LoyaltyCodeModel) *entity.LoyaltyCode {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyCode{
		ID:        data.ID,
		Code:      data.Code,
		Email:     data.Email,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UsedAt:    data.UsedAt,
		UsedBy:    data.UsedBy,
	}
}

// fromLoyaltyCodeDomain converts a domain LoyaltyCode entity to a GORM LoyaltyCodeModel.
func fromLoyaltyCodeDomain(data *entity.LoyaltyCode) *model.LoyaltyCodeModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyCodeModel{
		ID:        data.ID,
		Code:      data.Code,
		Email:     data.Email,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UsedAt:    data.UsedAt,
		UsedBy:    data.UsedBy,
	}
}
