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
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// FindByID retrieves a single request by ID, preloading the requester.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Requester").
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// List returns requests matching the filter, newest first.
func (repo *requestRepository) List(ctx context.Context, filter repository.RequestFilter) ([]*entity.Request, error) {
	query := repo.db.WithContext(ctx).Preload("Requester")

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var requestModels []*model.RequestModel
	if err := query.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	requests := make([]*entity.Request, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// ListByRequester returns requests submitted by the given user, newest first.
func (repo *requestRepository) ListByRequester(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("requested_by = ?", userID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests by requester")
	}

	requests := make([]*entity.Request, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// Create persists a new request record.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid requester reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// UpdateDecision records the outcome of a review on a pending request.
// The status guard in the WHERE clause keeps decisions single-shot even
// under concurrent reviewers.
func (repo *requestRepository) UpdateDecision(ctx context.Context, request *entity.Request) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ? AND status = ?", request.ID, entity.RequestStatusPending.String()).
		Updates(map[string]any{
			"status":     request.Status.String(),
			"checked_by": request.CheckedBy,
			"checked_at": request.CheckedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update request decision")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrRequestAlreadyDecided
	}

	return nil
}

// HasPending reports whether the user already has a pending request of the given type.
func (repo *requestRepository) HasPending(ctx context.Context, userID uuid.UUID, requestType entity.RequestType) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("requested_by = ? AND type = ? AND status = ?",
			userID, requestType.String(), entity.RequestStatusPending.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count pending requests")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM RequestModel to a domain Request entity.
func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	return &entity.Request{
		ID:           data.ID,
		Type:         entity.RequestType(data.Type),
		Description:  data.Description,
		Status:       entity.RequestStatus(data.Status),
		RequestedBy:  data.RequestedBy,
		RequestedFor: data.RequestedFor,
		CheckedBy:    data.CheckedBy,
		CheckedAt:    data.CheckedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Requester:    toUserDomain(data.Requester),
	}
}

// fromRequestDomain converts a domain Request entity to a GORM RequestModel.
func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:           data.ID,
		Type:         data.Type.String(),
		Description:  data.Description,
		Status:       data.Status.String(),
		RequestedBy:  data.RequestedBy,
		RequestedFor: data.RequestedFor,
		CheckedBy:    data.CheckedBy,
		CheckedAt:    data.CheckedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
