package impl

import (
	"context"
	"log/slog"
	"time"

	"inkpress/config"
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

// paisaPerRupee converts stored rupee amounts for the gateway.
const paisaPerRupee = 100

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager        repository.TransactionManager
	paymentRepo      repository.PaymentRepository
	packageRepo      repository.PackageRepository
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	gateway          service.PaymentGateway
	qrcodeService    service.QRCodeService
	eventPublisher   service.EventPublisher
	dashboardURL     string
	homeURL          string
	logger           *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	PaymentRepo      repository.PaymentRepository
	PackageRepo      repository.PackageRepository
	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	Gateway          service.PaymentGateway
	QRCodeService    service.QRCodeService
	EventPublisher   service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	var dashboardURL, homeURL string
	if params.Config.Redirects != nil {
		dashboardURL = params.Config.Redirects.DashboardURL
		homeURL = params.Config.Redirects.HomeURL
	}

	return &paymentService{
		txManager:        params.TxManager,
		paymentRepo:      params.PaymentRepo,
		packageRepo:      params.PackageRepo,
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		gateway:          params.Gateway,
		qrcodeService:    params.QRCodeService,
		eventPublisher:   params.EventPublisher,
		dashboardURL:     dashboardURL,
		homeURL:          homeURL,
		logger:           params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initiate opens a gateway checkout session and records a pending payment.
// The payment row is written only after the gateway accepts the initiate
// call, so no orphaned pending rows appear on gateway failure.
func (srv *paymentService) Initiate(ctx context.Context, input usecase.InitiatePaymentInput) (*usecase.InitiatePaymentOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find paying user")
	}

	pkg, err := srv.packageRepo.FindByID(ctx, input.PackageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package for purchase")
	}

	orderID := uuid.New()
	session, err := srv.gateway.InitiateCheckout(ctx, &service.CheckoutRequest{
		OrderID:       orderID,
		OrderName:     pkg.Name,
		AmountPaisa:   pkg.Price * paisaPerRupee,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
	})
	if err != nil {
		srv.log(ctx).Error("Gateway initiate failed",
			slog.Any("packageID", pkg.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentGatewayFailed.WrapMessage("checkout initiation failed")
	}

	payment := &entity.Payment{
		OrderID:    orderID.String(),
		Pidx:       session.Pidx,
		PaymentURL: session.PaymentURL,
		Amount:     pkg.Price,
		UserID:     user.ID,
		PackageID:  pkg.ID,
		Method:     entity.PaymentMethodKhalti,
		Status:     entity.PaymentStatusPending,
	}
	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment initiated",
		slog.Any("paymentID", payment.ID),
		slog.String("pidx", payment.Pidx),
		slog.Int64("amount", payment.Amount),
	)

	return &usecase.InitiatePaymentOutput{
		Payment:    payment,
		PaymentURL: session.PaymentURL,
	}, nil
}

// Verify confirms a transaction against the gateway. On a completed lookup
// it marks the payment completed and grants the package subscription in one
// transaction; the unique (user, package) pair makes replays harmless.
func (srv *paymentService) Verify(ctx context.Context, input usecase.VerifyPaymentInput) (*usecase.VerifyPaymentOutput, error) {
	if input.Pidx == "" || input.Status == "" || input.PurchaseOrderID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("pidx, status and purchase_order_id are required")
	}

	payment, err := srv.paymentRepo.FindByPidx(ctx, input.Pidx)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by pidx")
	}

	// Replayed callback on an already-completed payment: nothing to redo.
	if payment.Status == entity.PaymentStatusCompleted {
		return &usecase.VerifyPaymentOutput{Payment: payment, RedirectURL: srv.dashboardURL}, nil
	}

	lookup, err := srv.gateway.LookupPayment(ctx, input.Pidx)
	if err != nil {
		srv.log(ctx).Error("Gateway lookup failed", slog.String("pidx", input.Pidx), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentGatewayFailed.WrapMessage("payment lookup failed")
	}

	if lookup.Status == service.GatewayStatusCompleted && lookup.Pidx == input.Pidx {
		// The gateway must have captured exactly what was asked for. A
		// mismatch means the session was tampered with; grant nothing.
		if lookup.TotalAmount != payment.Amount*paisaPerRupee {
			srv.log(ctx).Error("Gateway amount mismatch",
				slog.String("pidx", input.Pidx),
				slog.Int64("expectedPaisa", payment.Amount*paisaPerRupee),
				slog.Int64("gatewayPaisa", lookup.TotalAmount),
			)

			return nil, domainerrors.ErrConflict.WrapMessage("gateway amount does not match the payment")
		}

		if err := srv.grantSubscription(ctx, payment); err != nil {
			return nil, err
		}

		payment.Status = entity.PaymentStatusCompleted
		srv.publishPaymentEvent(ctx, payment)

		return &usecase.VerifyPaymentOutput{Payment: payment, RedirectURL: srv.dashboardURL}, nil
	}

	// A terminal non-completed gateway state (expired, canceled) closes the
	// payment as failed; anything else leaves it pending for a later retry.
	if lookup.IsTerminal() {
		if err := srv.paymentRepo.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed); err != nil {
			return nil, err
		}
		payment.Status = entity.PaymentStatusFailed
	}

	srv.log(ctx).Info("Payment not completed",
		slog.String("pidx", input.Pidx),
		slog.String("gatewayStatus", lookup.Status),
	)

	return &usecase.VerifyPaymentOutput{Payment: payment, RedirectURL: srv.homeURL}, nil
}

// grantSubscription marks the payment completed and grants premium access atomically.
func (srv *paymentService) grantSubscription(ctx context.Context, payment *entity.Payment) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pkg, err := repoFactory.PackageRepo().FindByID(ctx, payment.PackageID)
		if err != nil {
			return errors.Wrap(err, "failed to find package for subscription grant")
		}

		if err := repoFactory.PaymentRepo().UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted); err != nil {
			return err
		}

		sub := &entity.PackageSubscription{
			UserID:    payment.UserID,
			PackageID: payment.PackageID,
			ExpiresAt: time.Now().AddDate(0, 0, pkg.ExpiryDays),
		}

		return repoFactory.SubscriptionRepo().Upsert(ctx, sub)
	})
}

func (srv *paymentService) publishPaymentEvent(ctx context.Context, payment *entity.Payment) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventPaymentCompleted,
		SubjectID:  payment.ID.String(),
		ActorID:    payment.UserID.String(),
		OccurredAt: time.Now().UTC(),
		Attributes: map[string]string{
			"package_id": payment.PackageID.String(),
			"pidx":       payment.Pidx,
		},
	}

	if err := srv.eventPublisher.PublishEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish payment event",
			slog.Any("paymentID", payment.ID),
			slog.Any("error", err),
		)
	}
}

// ListForViewer returns all payments for superadmins and the viewer's own otherwise.
func (srv *paymentService) ListForViewer(ctx context.Context, viewerID uuid.UUID, viewerRole entity.Role) ([]*entity.Payment, error) {
	if viewerRole == entity.RoleSuperadmin {
		payments, err := srv.paymentRepo.ListAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list all payments")
		}

		return payments, nil
	}

	payments, err := srv.paymentRepo.ListByUser(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user payments")
	}

	return payments, nil
}

// CheckoutQR renders the pending payment's checkout URL as a PNG QR code.
// Only the payer can fetch it, and only while the payment is pending. The
// stored session URL is reused as-is; opening a fresh gateway session here
// would hand the customer a pidx the verify callback could never match.
func (srv *paymentService) CheckoutQR(ctx context.Context, paymentID, viewerID uuid.UUID) ([]byte, error) {
	payment, err := srv.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment for QR")
	}

	if payment.UserID != viewerID {
		return nil, domainerrors.ErrForbidden
	}

	if payment.Status != entity.PaymentStatusPending {
		return nil, domainerrors.ErrConflict.WrapMessage("payment is no longer pending")
	}

	if payment.PaymentURL == "" {
		return nil, domainerrors.ErrConflict.WrapMessage("payment has no open checkout session")
	}

	png, err := srv.qrcodeService.GenerateCheckoutQR(payment.PaymentURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate checkout QR")
	}

	return png, nil
}

// ListSubscriptions returns the user's package subscriptions.
func (srv *paymentService) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.PackageSubscription, error) {
	subs, err := srv.subscriptionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subs, nil
}

// HasActiveSubscription reports whether the user currently holds unexpired premium access.
func (srv *paymentService) HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error) {
	active, err := srv.subscriptionRepo.HasActive(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check active subscription")
	}

	return active, nil
}
