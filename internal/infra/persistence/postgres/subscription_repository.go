package postgres

import (
	"context"
	"time"

	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	"inkpress/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Upsert grants a subscription, doing nothing if the user already holds one
// for the same package. ON CONFLICT DO NOTHING keeps repeated payment
// verifications idempotent.
func (repo *subscriptionRepository) Upsert(ctx context.Context, sub *entity.PackageSubscription) error {
	subM := fromPackageSubscriptionDomain(sub)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "package_id"}},
			DoNothing: true,
		}).
		Create(subM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPackageNotFound.WrapMessage("invalid user or package reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt

	return nil
}

// ListByUser returns the user's subscriptions with package details preloaded.
func (repo *subscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PackageSubscription, error) {
	var subModels []*model.PackageSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Package").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions by user")
	}

	subs := make([]*entity.PackageSubscription, 0, len(subModels))
	for _, subM := range subModels {
		subs = append(subs, toPackageSubscriptionDomain(subM))
	}

	return subs, nil
}

// HasActive reports whether the user holds any subscription that has not expired.
func (repo *subscriptionRepository) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PackageSubscriptionModel{}).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count active subscriptions")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toPackageSubscriptionDomain converts a GORM PackageSubscriptionModel to a domain entity.
func toPackageSubscriptionDomain(data *model.PackageSubscriptionModel) *entity.PackageSubscription {
	if data == nil {
		return nil
	}

	return &entity.PackageSubscription{
		ID:        data.ID,
		UserID:    data.UserID,
		PackageID: data.PackageID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		Package:   toPackageDomain(data.Package),
	}
}

// fromPackageSubscriptionDomain converts a domain entity to a GORM PackageSubscriptionModel.
func fromPackageSubscriptionDomain(data *entity.PackageSubscription) *model.PackageSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PackageSubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PackageID: data.PackageID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
