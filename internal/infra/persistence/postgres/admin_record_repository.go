package postgres

import (
	"context"

	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	"inkpress/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adminRecordRepository implements the repository.AdminRecordRepository interface.
type adminRecordRepository struct {
	db *gorm.DB
}

// NewAdminRecordRepository is the constructor for adminRecordRepository.
func NewAdminRecordRepository(db *gorm.DB) repository.AdminRecordRepository {
	return &adminRecordRepository{
		db: db,
	}
}

// FindByUserID retrieves the admin record for a user, including authored post IDs.
func (repo *adminRecordRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminRecord, error) {
	var recordM model.AdminRecordModel

	if err := repo.db.WithContext(ctx).
		Preload("Posts").
		Where("user_id = ?", userID).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin record by user ID")
	}

	return toAdminRecordDomain(&recordM), nil
}

// List returns all admin records with their users preloaded.
func (repo *adminRecordRepository) List(ctx context.Context) ([]*entity.AdminRecord, error) {
	var recordModels []*model.AdminRecordModel

	if err := repo.db.WithContext(ctx).
		Preload("Posts").
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list admin records")
	}

	records := make([]*entity.AdminRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toAdminRecordDomain(recordM))
	}

	return records, nil
}

// Upsert creates the admin record for a user if it does not already exist.
// Re-approving a previously demoted admin keeps the original record.
func (repo *adminRecordRepository) Upsert(ctx context.Context, record *entity.AdminRecord) error {
	recordM := fromAdminRecordDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert admin record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// SetActive toggles the active flag on an admin record.
func (repo *adminRecordRepository) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminRecordModel{}).
		Where("user_id = ?", userID).
		Update("is_active", active)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admin record active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdminRecordNotFound
	}

	return nil
}

// AppendPost links a post to the admin's authorship history.
// ON CONFLICT DO NOTHING keeps the link idempotent on retries.
func (repo *adminRecordRepository) AppendPost(ctx context.Context, userID, postID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Exec("INSERT INTO admin_posts (admin_user_id, post_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			userID, postID).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAdminRecordNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append post to admin record")
	}

	return nil
}

// --- Mapper Functions ---

// toAdminRecordDomain converts a GORM AdminRecordModel to a domain AdminRecord entity.
func toAdminRecordDomain(data *model.AdminRecordModel) *entity.AdminRecord {
	if data == nil {
		return nil
	}

	postIDs := make([]uuid.UUID, 0, len(data.Posts))
	for i := range data.Posts {
		postIDs = append(postIDs, data.Posts[i].ID)
	}

	return &entity.AdminRecord{
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		IsActive:  data.IsActive,
		PostIDs:   postIDs,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAdminRecordDomain converts a domain AdminRecord entity to a GORM AdminRecordModel.
func fromAdminRecordDomain(data *entity.AdminRecord) *model.AdminRecordModel {
	if data == nil {
		return nil
	}

	return &model.AdminRecordModel{
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
