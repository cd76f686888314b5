package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	mockRepo "inkpress/internal/mocks/repository"
	mockSvc "inkpress/internal/mocks/service"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service         usecase.RequestUsecase
	txManager       *mockRepo.MockTransactionManager
	requestRepo     *mockRepo.MockRequestRepository
	userRepo        *mockRepo.MockUserRepository
	adminRecordRepo *mockRepo.MockAdminRecordRepository
	eventPublisher  *mockSvc.MockEventPublisher
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	adminRecordRepo := mockRepo.NewMockAdminRecordRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRequestService(RequestServiceParams{
		TxManager:       txManager,
		RequestRepo:     requestRepo,
		UserRepo:        userRepo,
		AdminRecordRepo: adminRecordRepo,
		EventPublisher:  eventPublisher,
		Logger:          logger,
	})

	return requestServiceFixtures{
		service:         service,
		txManager:       txManager,
		requestRepo:     requestRepo,
		userRepo:        userRepo,
		adminRecordRepo: adminRecordRepo,
		eventPublisher:  eventPublisher,
	}
}

func TestRequestService_SubmitAdminRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.requestRepo.EXPECT().HasPending(ctx, user.ID, entity.RequestTypeAdmin).Return(false, nil)
	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Request")).
		Run(func(ctx context.Context, request *entity.Request) {
			request.ID = uuid.New()
			assert.Equal(t, entity.RequestStatusPending, request.Status)
			assert.Equal(t, entity.RequestTypeAdmin, request.Type)
		}).
		Return(nil)

	request, err := fx.service.SubmitAdminRequest(ctx, usecase.SubmitAdminRequestInput{
		UserID:      user.ID,
		Description: "I write well",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
}

func TestRequestService_SubmitAdminRequest_AlreadyStaff(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	_, err := fx.service.SubmitAdminRequest(ctx, usecase.SubmitAdminRequestInput{UserID: admin.ID})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestRequestService_SubmitAdminRequest_DuplicatePending(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.requestRepo.EXPECT().HasPending(ctx, user.ID, entity.RequestTypeAdmin).Return(true, nil)

	_, err := fx.service.SubmitAdminRequest(ctx, usecase.SubmitAdminRequestInput{UserID: user.ID})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestRequestService_Decide_ApproveAdminRequest(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	requester := &entity.User{ID: uuid.New(), Name: "Promoted", Email: "p@example.com", Role: entity.RoleUser}
	request := &entity.Request{
		ID:          uuid.New(),
		Type:        entity.RequestTypeAdmin,
		Status:      entity.RequestStatusPending,
		RequestedBy: requester.ID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAdminRecordRepo := mockRepo.NewMockAdminRecordRepository(t)

			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AdminRecordRepo().Return(mockAdminRecordRepo)

			mockRequestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
			mockRequestRepo.EXPECT().
				UpdateDecision(ctx, mock.AnythingOfType("*entity.Request")).
				Run(func(ctx context.Context, updated *entity.Request) {
					assert.Equal(t, entity.RequestStatusApproved, updated.Status)
					require.NotNil(t, updated.CheckedBy)
					assert.Equal(t, reviewerID, *updated.CheckedBy)
					assert.NotNil(t, updated.CheckedAt)
				}).
				Return(nil)

			mockUserRepo.EXPECT().FindByID(ctx, requester.ID).Return(requester, nil)
			mockUserRepo.EXPECT().UpdateRole(ctx, requester.ID, entity.RoleAdmin).Return(nil)
			mockAdminRecordRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.AdminRecord")).
				Run(func(ctx context.Context, record *entity.AdminRecord) {
					assert.Equal(t, requester.ID, record.UserID)
					assert.Equal(t, requester.Email, record.Email)
					assert.True(t, record.IsActive)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	decided, err := fx.service.Decide(ctx, usecase.DecideRequestInput{
		RequestID:  request.ID,
		ReviewerID: reviewerID,
		Action:     "approve",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, decided.Status)
}

func TestRequestService_Decide_ApproveCategoryRequest(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	category := &entity.Category{ID: uuid.New(), Name: "Tech", IsApproved: false}
	request := &entity.Request{
		ID:           uuid.New(),
		Type:         entity.RequestTypeCategory,
		Status:       entity.RequestStatusPending,
		RequestedBy:  uuid.New(),
		RequestedFor: category.Name,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockRequestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
			mockRequestRepo.EXPECT().
				UpdateDecision(ctx, mock.AnythingOfType("*entity.Request")).
				Return(nil)

			mockCategoryRepo.EXPECT().FindByName(ctx, category.Name).Return(category, nil)
			mockCategoryRepo.EXPECT().SetApproved(ctx, category.ID, true).Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	decided, err := fx.service.Decide(ctx, usecase.DecideRequestInput{
		RequestID:  request.ID,
		ReviewerID: reviewerID,
		Action:     "approve",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, decided.Status)
}

func TestRequestService_Decide_RejectLeavesRoleUntouched(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	request := &entity.Request{
		ID:          uuid.New(),
		Type:        entity.RequestTypeAdmin,
		Status:      entity.RequestStatusPending,
		RequestedBy: uuid.New(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)

			mockRequestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
			mockRequestRepo.EXPECT().
				UpdateDecision(ctx, mock.AnythingOfType("*entity.Request")).
				Run(func(ctx context.Context, updated *entity.Request) {
					assert.Equal(t, entity.RequestStatusRejected, updated.Status)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	decided, err := fx.service.Decide(ctx, usecase.DecideRequestInput{
		RequestID:  request.ID,
		ReviewerID: uuid.New(),
		Action:     "reject",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, decided.Status)
}

func TestRequestService_Decide_AlreadyDecided(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	request := &entity.Request{
		ID:     uuid.New(),
		Type:   entity.RequestTypeAdmin,
		Status: entity.RequestStatusApproved,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)
			mockRequestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Decide(ctx, usecase.DecideRequestInput{
		RequestID:  request.ID,
		ReviewerID: uuid.New(),
		Action:     "reject",
	})

	assert.ErrorIs(t, err, domainerrors.ErrRequestAlreadyDecided)
}

func TestRequestService_Decide_InvalidAction(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.Decide(context.Background(), usecase.DecideRequestInput{
		RequestID:  uuid.New(),
		ReviewerID: uuid.New(),
		Action:     "escalate",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequestAction)
}

func TestRequestService_SetAdminActive_Suspend(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAdminRecordRepo := mockRepo.NewMockAdminRecordRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AdminRecordRepo().Return(mockAdminRecordRepo)

			mockUserRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockUserRepo.EXPECT().SetActive(ctx, admin.ID, false).Return(nil)
			mockAdminRecordRepo.EXPECT().SetActive(ctx, admin.ID, false).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.SetAdminActive(ctx, usecase.SetAdminActiveInput{UserID: admin.ID, Active: false})

	assert.NoError(t, err)
}

func TestRequestService_SetAdminActive_NotAnAdmin(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	err := fx.service.SetAdminActive(ctx, usecase.SetAdminActiveInput{UserID: user.ID, Active: false})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRequestService_ListMyRequests(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Request{{ID: uuid.New(), RequestedBy: userID}}

	fx.requestRepo.EXPECT().ListByRequester(ctx, userID).Return(expected, nil)

	requests, err := fx.service.ListMyRequests(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}
