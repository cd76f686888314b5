package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inkpress/internal/delivery/context"
	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	"inkpress/internal/domain/service"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	txManager           repository.TransactionManager
	requestRepo         repository.RequestRepository
	userRepo            repository.UserRepository
	adminRecordRepo     repository.AdminRecordRepository
	notificationService service.NotificationService
	eventPublisher      service.EventPublisher
	logger              *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	RequestRepo         repository.RequestRepository
	UserRepo            repository.UserRepository
	AdminRecordRepo     repository.AdminRecordRepository
	NotificationService service.NotificationService `optional:"true"`
	EventPublisher      service.EventPublisher
	Logger              *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:           params.TxManager,
		requestRepo:         params.RequestRepo,
		userRepo:            params.UserRepo,
		adminRecordRepo:     params.AdminRecordRepo,
		notificationService: params.NotificationService,
		eventPublisher:      params.EventPublisher,
		logger:              params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitAdminRequest files a pending admin promotion request.
func (srv *requestService) SubmitAdminRequest(ctx context.Context, input usecase.SubmitAdminRequestInput) (*entity.Request, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find requesting user")
	}

	if user.Role.IsStaff() {
		return nil, domainerrors.ErrConflict.WrapMessage("user already holds a staff role")
	}

	pending, err := srv.requestRepo.HasPending(ctx, input.UserID, entity.RequestTypeAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check pending requests")
	}
	if pending {
		return nil, domainerrors.ErrConflict.WrapMessage("an admin request is already pending for this user")
	}

	request := &entity.Request{
		Type:        entity.RequestTypeAdmin,
		Description: input.Description,
		Status:      entity.RequestStatusPending,
		RequestedBy: input.UserID,
	}
	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin request submitted",
		slog.Any("requestID", request.ID),
		slog.Any("userID", input.UserID),
	)

	return request, nil
}

// ListRequests returns the ledger filtered by type and status.
func (srv *requestService) ListRequests(ctx context.Context, filter repository.RequestFilter) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// ListMyRequests returns the calling user's own submissions.
func (srv *requestService) ListMyRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user requests")
	}

	return requests, nil
}

// Decide applies a terminal decision to a pending request. The decision and
// its side effects run in one transaction; a request that is already decided
// is rejected with a conflict instead of being silently re-applied.
func (srv *requestService) Decide(ctx context.Context, input usecase.DecideRequestInput) (*entity.Request, error) {
	decision, ok := entity.DecisionFromString(input.Action)
	if !ok {
		return nil, domainerrors.ErrInvalidRequestAction
	}

	var decided *entity.Request
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.RequestRepo()

		request, err := requestRepo.FindByID(ctx, input.RequestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to find request")
		}

		if request.Status.IsTerminal() {
			return domainerrors.ErrRequestAlreadyDecided
		}

		now := time.Now()
		request.Status = decision
		request.CheckedBy = &input.ReviewerID
		request.CheckedAt = &now

		if err := requestRepo.UpdateDecision(ctx, request); err != nil {
			return err
		}

		if decision == entity.RequestStatusApproved {
			if err := srv.applyApproval(ctx, repoFactory, request); err != nil {
				return err
			}
		}

		decided = request

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Request decided",
		slog.Any("requestID", decided.ID),
		slog.String("decision", decided.Status.String()),
		slog.Any("reviewerID", input.ReviewerID),
	)

	srv.notifyRequester(ctx, decided)
	srv.publishDecisionEvent(ctx, decided)

	return decided, nil
}

// applyApproval runs the side effect of an approval inside the decision transaction.
func (srv *requestService) applyApproval(ctx context.Context, repoFactory repository.RepositoryFactory, request *entity.Request) error {
	switch request.Type {
	case entity.RequestTypeAdmin:
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, request.RequestedBy)
		if err != nil {
			return errors.Wrap(err, "failed to find user for promotion")
		}

		if err := userRepo.UpdateRole(ctx, request.RequestedBy, entity.RoleAdmin); err != nil {
			return errors.Wrap(err, "failed to promote user to admin")
		}

		record := &entity.AdminRecord{
			UserID:   user.ID,
			Name:     user.Name,
			Email:    user.Email,
			IsActive: true,
		}

		return repoFactory.AdminRecordRepo().Upsert(ctx, record)

	case entity.RequestTypeCategory:
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByName(ctx, request.RequestedFor)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("provisional category missing for approved request")
			}

			return errors.Wrap(err, "failed to find provisional category")
		}

		return categoryRepo.SetApproved(ctx, category.ID, true)

	default:
		return domainerrors.ErrInvalidRequestAction.WrapMessage("unknown request type")
	}
}

// notifyRequester pushes the decision to the requester's device, best effort.
func (srv *requestService) notifyRequester(ctx context.Context, request *entity.Request) {
	if srv.notificationService == nil {
		return
	}

	requester, err := srv.userRepo.FindByID(ctx, request.RequestedBy)
	if err != nil || requester.DeviceToken == "" {
		return
	}

	title := "Request approved"
	body := "Your " + request.Type.String() + " request has been approved."
	if request.Status == entity.RequestStatusRejected {
		title = "Request rejected"
		body = "Your " + request.Type.String() + " request has been rejected."
	}

	data := map[string]string{
		"request_id": request.ID.String(),
		"type":       request.Type.String(),
		"status":     request.Status.String(),
	}

	if err := srv.notificationService.SendSingleNotification(ctx, requester.DeviceToken, title, body, data); err != nil {
		srv.log(ctx).Warn("Failed to push request decision",
			slog.Any("requestID", request.ID),
			slog.Any("error", err),
		)
	}
}

// publishDecisionEvent emits the decision for async consumers, best effort.
func (srv *requestService) publishDecisionEvent(ctx context.Context, request *entity.Request) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventRequestDecided,
		SubjectID:  request.ID.String(),
		ActorID:    request.RequestedBy.String(),
		OccurredAt: time.Now().UTC(),
		Attributes: map[string]string{
			"request_type": request.Type.String(),
			"decision":     request.Status.String(),
		},
	}

	if err := srv.eventPublisher.PublishEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish request decision event",
			slog.Any("requestID", request.ID),
			slog.Any("error", err),
		)
	}
}

// ListAdminRecords returns the roster of promoted admins.
func (srv *requestService) ListAdminRecords(ctx context.Context) ([]*entity.AdminRecord, error) {
	records, err := srv.adminRecordRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin records")
	}

	return records, nil
}

// SetAdminActive toggles an admin user and their roster record together.
func (srv *requestService) SetAdminActive(ctx context.Context, input usecase.SetAdminActiveInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if user.Role != entity.RoleAdmin {
			return domainerrors.ErrValidationFailed.WrapMessage("user is not an admin")
		}

		if err := repoFactory.UserRepo().SetActive(ctx, input.UserID, input.Active); err != nil {
			return errors.Wrap(err, "failed to toggle user active flag")
		}

		if err := repoFactory.AdminRecordRepo().SetActive(ctx, input.UserID, input.Active); err != nil &&
			!errors.Is(err, repository.ErrAdminRecordNotFound) {
			return errors.Wrap(err, "failed to toggle admin record")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Admin active flag toggled",
		slog.Any("userID", input.UserID),
		slog.Bool("active", input.Active),
	)

	return nil
}
