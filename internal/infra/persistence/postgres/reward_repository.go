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
)

// rewardRepository implements the repository.RewardRepository interface.
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{
		db: db,
	}
}

// Create persists a newly earned reward. The partial unique index on
// rewards(user_id) WHERE claimed_at IS NULL rejects a second unclaimed reward.
func (repo *rewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	rewardM := fromRewardDomain(reward)

	if err := repo.db.WithContext(ctx).Create(rewardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveRewardExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reward")
	}

	reward.ID = rewardM.ID
	reward.CreatedAt = rewardM.CreatedAt

	return nil
}

// FindByID retrieves a reward by its ID.
func (repo *rewardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	var rewardM model.RewardModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by ID")
	}

	return toRewardDomain(&rewardM), nil
}

// FindActiveByUser retrieves the user's unclaimed reward, if any.
func (repo *rewardRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Reward, error) {
	var rewardM model.RewardModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND claimed_at IS NULL", userID).
		First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find active reward by user")
	}

	return toRewardDomain(&rewardM), nil
}

// FindLatestByUser retrieves the user's most recent reward regardless of state.
func (repo *rewardRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Reward, error) {
	var rewardM model.RewardModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest reward by user")
	}

	return toRewardDomain(&rewardM), nil
}

// Claim stamps the reward as handed over. The claimed_at IS NULL guard makes
// a repeated claim a no-op rather than an error.
func (repo *rewardRepository) Claim(ctx context.Context, id uuid.UUID, claimedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RewardModel{}).
		Where("id = ? AND claimed_at IS NULL", id).
		Update("claimed_at", claimedAt)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim reward")
	}

	if result.RowsAffected == 0 {
		// Distinguish an already-claimed reward from a missing one.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.RewardModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to verify reward existence")
		}
		if count == 0 {
			return repository.ErrRewardNotFound
		}
	}

	return nil
}

// ListActive returns all unclaimed rewards joined with the owning customer, newest first.
func (repo *rewardRepository) ListActive(ctx context.Context) ([]*entity.ActiveReward, error) {
	var rows []struct {
		model.RewardModel
		UserName  string
		UserEmail string
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.RewardModel{}).
		Select("rewards.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = rewards.user_id").
		Where("rewards.claimed_at IS NULL").
		Order("rewards.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active rewards")
	}

	rewards := make([]*entity.ActiveReward, 0, len(rows))
	for i := range rows {
		rewards = append(rewards, &entity.ActiveReward{
			Reward:    *toRewardDomain(&rows[i].RewardModel),
			UserName:  rows[i].UserName,
			UserEmail: rows[i].UserEmail,
		})
	}

	return rewards, nil
}

// --- Mapper Functions ---

// toRewardDomain converts a GORM RewardModel to a domain Reward entity.
func toRewardDomain(data *model.RewardModel) *entity.Reward {
	if data == nil {
		return nil
	}

	return &entity.Reward{
		ID:         data.ID,
		UserID:     data.UserID,
		RewardType: data.RewardType,
		ExpiryDate: data.ExpiryDate,
		ClaimedAt:  data.ClaimedAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromRewardDomain converts a domain Reward entity to a GORM RewardModel.
func fromRewardDomain(data *entity.Reward) *model.RewardModel {
	if data == nil {
		return nil
	}

	return &model.RewardModel{
		ID:         data.ID,
		UserID:     data.UserID,
		RewardType: data.RewardType,
		ExpiryDate: data.ExpiryDate,
		ClaimedAt:  data.ClaimedAt,
		CreatedAt:  data.CreatedAt,
	}
}
