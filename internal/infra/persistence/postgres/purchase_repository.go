// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marzan/internal/domain/entity"
	domainerrors "marzan/internal/domain/errors"
	"marzan/internal/domain/repository"
	"marzan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create appends a purchase to the ledger.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt

	return nil
}

// CountByUser returns the total number of ledger entries for a user.
func (repo *purchaseRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count purchases by user")
	}

	return count, nil
}

// ListByUser returns the user's purchases within the period, newest first.
// Month and year filters compare calendar fields of purchased_at against the
// current date, so "month" means the current calendar month, not the last 30 days.
func (repo *purchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID, period entity.PurchasePeriod) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	tx := repo.db.WithContext(ctx).Where("user_id = ?", userID)

	switch period {
	case entity.PeriodMonth:
		tx = tx.Where("date_trunc('month', purchased_at) = date_trunc('month', now())")
	case entity.PeriodYear:
		tx = tx.Where("date_trunc('year', purchased_at) = date_trunc('year', now())")
	case entity.PeriodAll:
		// No filter.
	}

	if err := tx.Order("purchased_at DESC").Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchases by user")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:            data.ID,
		UserID:        data.UserID,
		TransactionID: data.TransactionID,
		Amount:        data.Amount,
		Verified:      data.Verified,
		PurchasedAt:   data.PurchasedAt,
		CreatedAt:     data.CreatedAt,
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:            data.ID,
		UserID:        data.UserID,
		TransactionID: data.TransactionID,
		Amount:        data.Amount,
		Verified:      data.Verified,
		PurchasedAt:   data.PurchasedAt,
		CreatedAt:     data.CreatedAt,
	}
}
