package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"inkpress/config"
	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	"inkpress/internal/domain/service"
	mockRepo "inkpress/internal/mocks/repository"
	mockSvc "inkpress/internal/mocks/service"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service          usecase.PaymentUsecase
	txManager        *mockRepo.MockTransactionManager
	paymentRepo      *mockRepo.MockPaymentRepository
	packageRepo      *mockRepo.MockPackageRepository
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	gateway          *mockSvc.MockPaymentGateway
	qrcodeService    *mockSvc.MockQRCodeService
	eventPublisher   *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	packageRepo := mockRepo.NewMockPackageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Redirects = &config.RedirectsConfig{
		DashboardURL: "https://app.example.com/dashboard",
		HomeURL:      "https://app.example.com/",
	}

	svc := NewPaymentService(PaymentServiceParams{
		TxManager:        txManager,
		PaymentRepo:      paymentRepo,
		PackageRepo:      packageRepo,
		UserRepo:         userRepo,
		SubscriptionRepo: subscriptionRepo,
		Gateway:          gateway,
		QRCodeService:    qrcodeService,
		EventPublisher:   eventPublisher,
		Config:           cfg,
		Logger:           logger,
	})

	return paymentServiceFixtures{
		service:          svc,
		txManager:        txManager,
		paymentRepo:      paymentRepo,
		packageRepo:      packageRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		qrcodeService:    qrcodeService,
		eventPublisher:   eventPublisher,
	}
}

func TestPaymentService_Initiate_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Payer", Email: "payer@example.com"}
	pkg := &entity.Package{ID: uuid.New(), Name: "Monthly", Price: 500, ExpiryDays: 30}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pkg.ID).Return(pkg, nil)
	fx.gateway.EXPECT().
		InitiateCheckout(ctx, mock.AnythingOfType("*service.CheckoutRequest")).
		Run(func(ctx context.Context, req *service.CheckoutRequest) {
			// 500 rupees go over the wire as 50000 paisa.
			assert.Equal(t, int64(50000), req.AmountPaisa)
			assert.Equal(t, pkg.Name, req.OrderName)
			assert.Equal(t, user.Email, req.CustomerEmail)
		}).
		Return(&service.CheckoutSession{Pidx: "px123", PaymentURL: "https://pay.example.com/px123"}, nil)
	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(ctx context.Context, payment *entity.Payment) {
			payment.ID = uuid.New()
			assert.Equal(t, entity.PaymentStatusPending, payment.Status)
			assert.Equal(t, entity.PaymentMethodKhalti, payment.Method)
			assert.Equal(t, int64(500), payment.Amount)
			assert.Equal(t, "https://pay.example.com/px123", payment.PaymentURL)
		}).
		Return(nil)

	output, err := fx.service.Initiate(ctx, usecase.InitiatePaymentInput{UserID: user.ID, PackageID: pkg.ID})

	require.NoError(t, err)
	assert.Equal(t, "px123", output.Payment.Pidx)
	assert.Equal(t, "https://pay.example.com/px123", output.PaymentURL)
}

func TestPaymentService_Initiate_GatewayFailureLeavesNoRecord(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "payer@example.com"}
	pkg := &entity.Package{ID: uuid.New(), Name: "Monthly", Price: 500, ExpiryDays: 30}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pkg.ID).Return(pkg, nil)
	fx.gateway.EXPECT().
		InitiateCheckout(ctx, mock.AnythingOfType("*service.CheckoutRequest")).
		Return(nil, assert.AnError)

	_, err := fx.service.Initiate(ctx, usecase.InitiatePaymentInput{UserID: user.ID, PackageID: pkg.ID})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentGatewayFailed)
	fx.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_Initiate_UnknownPackage(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	packageID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, packageID).Return(nil, repository.ErrPackageNotFound)

	_, err := fx.service.Initiate(ctx, usecase.InitiatePaymentInput{UserID: user.ID, PackageID: packageID})

	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestPaymentService_Verify_CompletedGrantsSubscription(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	pkg := &entity.Package{ID: uuid.New(), Name: "Monthly", Price: 500, ExpiryDays: 30}
	payment := &entity.Payment{
		ID:        uuid.New(),
		OrderID:   uuid.New().String(),
		Pidx:      "px123",
		Amount:    500,
		UserID:    uuid.New(),
		PackageID: pkg.ID,
		Status:    entity.PaymentStatusPending,
	}

	fx.paymentRepo.EXPECT().FindByPidx(ctx, "px123").Return(payment, nil)
	fx.gateway.EXPECT().
		LookupPayment(ctx, "px123").
		Return(&service.LookupResult{Pidx: "px123", Status: service.GatewayStatusCompleted, TotalAmount: 50000}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackageRepo := mockRepo.NewMockPackageRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().PackageRepo().Return(mockPackageRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubscriptionRepo)

			mockPackageRepo.EXPECT().FindByID(ctx, pkg.ID).Return(pkg, nil)
			mockPaymentRepo.EXPECT().
				UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted).
				Return(nil)
			mockSubscriptionRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.PackageSubscription")).
				Run(func(ctx context.Context, sub *entity.PackageSubscription) {
					assert.Equal(t, payment.UserID, sub.UserID)
					assert.Equal(t, pkg.ID, sub.PackageID)
					assert.WithinDuration(t, time.Now().AddDate(0, 0, pkg.ExpiryDays), sub.ExpiresAt, time.Minute)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	output, err := fx.service.Verify(ctx, usecase.VerifyPaymentInput{
		Pidx:            "px123",
		Status:          "Completed",
		PurchaseOrderID: payment.OrderID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, output.Payment.Status)
	assert.Equal(t, "https://app.example.com/dashboard", output.RedirectURL)
}

func TestPaymentService_Verify_ReplayOnCompletedPaymentIsIdempotent(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: uuid.New().String(),
		Pidx:    "px123",
		Status:  entity.PaymentStatusCompleted,
	}

	fx.paymentRepo.EXPECT().FindByPidx(ctx, "px123").Return(payment, nil)

	output, err := fx.service.Verify(ctx, usecase.VerifyPaymentInput{
		Pidx:            "px123",
		Status:          "Completed",
		PurchaseOrderID: payment.OrderID,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com/dashboard", output.RedirectURL)
	fx.gateway.AssertNotCalled(t, "LookupPayment", mock.Anything, mock.Anything)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPaymentService_Verify_TerminalNonCompletedClosesAsFailed(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: uuid.New().String(),
		Pidx:    "px123",
		Status:  entity.PaymentStatusPending,
	}

	fx.paymentRepo.EXPECT().FindByPidx(ctx, "px123").Return(payment, nil)
	fx.gateway.EXPECT().
		LookupPayment(ctx, "px123").
		Return(&service.LookupResult{Pidx: "px123", Status: service.GatewayStatusExpired}, nil)
	fx.paymentRepo.EXPECT().
		UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed).
		Return(nil)

	output, err := fx.service.Verify(ctx, usecase.VerifyPaymentInput{
		Pidx:            "px123",
		Status:          "Expired",
		PurchaseOrderID: payment.OrderID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, output.Payment.Status)
	assert.Equal(t, "https://app.example.com/", output.RedirectURL)
}

func TestPaymentService_Verify_PendingAtGatewayLeavesPaymentOpen(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: uuid.New().String(),
		Pidx:    "px123",
		Status:  entity.PaymentStatusPending,
	}

	fx.paymentRepo.EXPECT().FindByPidx(ctx, "px123").Return(payment, nil)
	fx.gateway.EXPECT().
		LookupPayment(ctx, "px123").
		Return(&service.LookupResult{Pidx: "px123", Status: service.GatewayStatusPending}, nil)

	output, err := fx.service.Verify(ctx, usecase.VerifyPaymentInput{
		Pidx:            "px123",
		Status:          "Pending",
		PurchaseOrderID: payment.OrderID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, output.Payment.Status)
	fx.paymentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Verify_AmountMismatchGrantsNothing(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: uuid.New().String(),
		Pidx:    "px123",
		Amount:  500,
		Status:  entity.PaymentStatusPending,
	}

	fx.paymentRepo.EXPECT().FindByPidx(ctx, "px123").Return(payment, nil)
	// Gateway reports completion for 100 rupees against a 500 rupee payment.
	fx.gateway.EXPECT().
		LookupPayment(ctx, "px123").
		Return(&service.LookupResult{Pidx: "px123", Status: service.GatewayStatusCompleted, TotalAmount: 10000}, nil)

	_, err := fx.service.Verify(ctx, usecase.VerifyPaymentInput{
		Pidx:            "px123",
		Status:          "Completed",
		PurchaseOrderID: payment.OrderID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.paymentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Verify_MissingParams(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.Verify(context.Background(), usecase.VerifyPaymentInput{Pidx: "px123"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_ListForViewer_SuperadminSeesAll(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	all := []*entity.Payment{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.paymentRepo.EXPECT().ListAll(ctx).Return(all, nil)

	payments, err := fx.service.ListForViewer(ctx, uuid.New(), entity.RoleSuperadmin)

	require.NoError(t, err)
	assert.Equal(t, all, payments)
}

func TestPaymentService_ListForViewer_UserSeesOwnOnly(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	own := []*entity.Payment{{ID: uuid.New(), UserID: viewerID}}

	fx.paymentRepo.EXPECT().ListByUser(ctx, viewerID).Return(own, nil)

	payments, err := fx.service.ListForViewer(ctx, viewerID, entity.RoleUser)

	require.NoError(t, err)
	assert.Equal(t, own, payments)
}

func TestPaymentService_CheckoutQR_OnlyPayerWhilePending(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payerID := uuid.New()
	payment := &entity.Payment{
		ID:         uuid.New(),
		OrderID:    uuid.New().String(),
		Pidx:       "px123",
		PaymentURL: "https://pay.example.com/px123",
		Amount:     500,
		UserID:     payerID,
		Status:     entity.PaymentStatusPending,
	}

	fx.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)
	fx.qrcodeService.EXPECT().
		GenerateCheckoutQR("https://pay.example.com/px123").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.CheckoutQR(ctx, payment.ID, payerID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

// A QR fetch must reuse the stored checkout session. Opening a new gateway
// session would hand the customer a pidx that FindByPidx could never match,
// leaving a captured payment stuck pending.
func TestPaymentService_CheckoutQR_KeepsStoredSessionVerifiable(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payerID := uuid.New()
	pkg := &entity.Package{ID: uuid.New(), Name: "Monthly", Price: 500, ExpiryDays: 30}
	payment := &entity.Payment{
		ID:         uuid.New(),
		OrderID:    uuid.New().String(),
		Pidx:       "px123",
		PaymentURL: "https://pay.example.com/px123",
		Amount:     500,
		UserID:     payerID,
		PackageID:  pkg.ID,
		Status:     entity.PaymentStatusPending,
	}

	fx.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)
	fx.qrcodeService.EXPECT().
		GenerateCheckoutQR(payment.PaymentURL).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	_, err := fx.service.CheckoutQR(ctx, payment.ID, payerID)
	require.NoError(t, err)
	fx.gateway.AssertNotCalled(t, "InitiateCheckout", mock.Anything, mock.Anything)

	// Paying through the QR redirects back with the stored pidx, which the
	// verify flow resolves and completes.
	fx.paymentRepo.EXPECT().FindByPidx(ctx, payment.Pidx).Return(payment, nil)
	fx.gateway.EXPECT().
		LookupPayment(ctx, payment.Pidx).
		Return(&service.LookupResult{Pidx: payment.Pidx, Status: service.GatewayStatusCompleted, TotalAmount: 50000}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackageRepo := mockRepo.NewMockPackageRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().PackageRepo().Return(mockPackageRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)
			mockFactory.EXPECT().SubscriptionRepo().Return(mockSubscriptionRepo)

			mockPackageRepo.EXPECT().FindByID(ctx, pkg.ID).Return(pkg, nil)
			mockPaymentRepo.EXPECT().
				UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted).
				Return(nil)
			mockSubscriptionRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.PackageSubscription")).
				Return(nil)

			return fn(mockFactory)
		})
	fx.eventPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	output, err := fx.service.Verify(ctx, usecase.VerifyPaymentInput{
		Pidx:            payment.Pidx,
		Status:          "Completed",
		PurchaseOrderID: payment.OrderID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, output.Payment.Status)
}

func TestPaymentService_CheckoutQR_NoStoredSessionRejected(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payerID := uuid.New()
	payment := &entity.Payment{
		ID:     uuid.New(),
		UserID: payerID,
		Status: entity.PaymentStatusPending,
	}

	fx.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	_, err := fx.service.CheckoutQR(ctx, payment.ID, payerID)

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestPaymentService_CheckoutQR_StrangerForbidden(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payment := &entity.Payment{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: entity.PaymentStatusPending,
	}

	fx.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	_, err := fx.service.CheckoutQR(ctx, payment.ID, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_CheckoutQR_CompletedPaymentRejected(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payerID := uuid.New()
	payment := &entity.Payment{
		ID:     uuid.New(),
		UserID: payerID,
		Status: entity.PaymentStatusCompleted,
	}

	fx.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	_, err := fx.service.CheckoutQR(ctx, payment.ID, payerID)

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestPaymentService_HasActiveSubscription(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().HasActive(ctx, userID).Return(true, nil)

	active, err := fx.service.HasActiveSubscription(ctx, userID)

	require.NoError(t, err)
	assert.True(t, active)
}
