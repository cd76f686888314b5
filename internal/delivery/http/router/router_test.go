package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkpress/internal/delivery/http/middleware"
	"inkpress/internal/delivery/http/router/handler"
	"inkpress/internal/delivery/http/validator"
	"inkpress/internal/domain/entity"
	"inkpress/internal/domain/repository"
	"inkpress/internal/domain/service"
	mockRepo "inkpress/internal/mocks/repository"
	mockSvc "inkpress/internal/mocks/service"
	"inkpress/internal/usecase"
	"inkpress/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Handlers outside the route under test never get invoked; embedding the
// interface satisfies the constructor without implementing anything.
type stubUserUC struct{ usecase.UserUsecase }
type stubRequestUC struct{ usecase.RequestUsecase }
type stubCategoryUC struct{ usecase.CategoryUsecase }
type stubPackageUC struct{ usecase.PackageUsecase }
type stubPaymentUC struct{ usecase.PaymentUsecase }

// routerFixtures holds the wired echo instance and the mocks behind the
// post routes.
type routerFixtures struct {
	echo      *echo.Echo
	tokenSvc  *mockSvc.MockTokenService
	postRepo  *mockRepo.MockPostRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockSvc.NewMockTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	postUC := impl.NewPostService(impl.PostServiceParams{
		TxManager:      txManager,
		PostRepo:       postRepo,
		CategoryRepo:   categoryRepo,
		EventPublisher: eventPublisher,
		Logger:         logger,
	})

	e := echo.New()
	e.Validator = validator.New()

	r := NewRouter(RouterParams{
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: stubUserUC{}, Logger: logger}),
		RequestHandler:  handler.NewRequestHandler(handler.RequestHandlerParams{RequestUC: stubRequestUC{}, Logger: logger}),
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: stubCategoryUC{}, Logger: logger}),
		PackageHandler:  handler.NewPackageHandler(handler.PackageHandlerParams{PackageUC: stubPackageUC{}, Logger: logger}),
		PaymentHandler:  handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: stubPaymentUC{}, Logger: logger}),
		PostHandler:     handler.NewPostHandler(handler.PostHandlerParams{PostUC: postUC, Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return routerFixtures{
		echo:      e,
		tokenSvc:  tokenSvc,
		postRepo:  postRepo,
		txManager: txManager,
	}
}

func doRequest(fx routerFixtures, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

// A plain user must be able to delete their own post. The route carries no
// role gate; ownership is decided in the usecase.
func TestRouter_PlainUserDeletesOwnPost(t *testing.T) {
	fx := createTestRouter(t)

	userID := uuid.New()
	post := &entity.Post{ID: uuid.New(), CreatedBy: userID}

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("user-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)
	fx.postRepo.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().Delete(mock.Anything, post.ID).Return(nil)

			return fn(mockFactory)
		})

	rec := doRequest(fx, http.MethodDelete, "/posts/"+post.ID.String(), "user-token")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PlainUserCannotDeleteAnothersPost(t *testing.T) {
	fx := createTestRouter(t)

	userID := uuid.New()
	post := &entity.Post{ID: uuid.New(), CreatedBy: uuid.New()}

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("user-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)
	fx.postRepo.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)

	rec := doRequest(fx, http.MethodDelete, "/posts/"+post.ID.String(), "user-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

// Publishing stays staff-only at the route, so a plain user is rejected
// before the handler runs.
func TestRouter_PostCreateRequiresStaff(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("user-token").
		Return(&service.Claims{UserID: uuid.New(), Role: entity.RoleUser}, nil)

	rec := doRequest(fx, http.MethodPost, "/posts", "user-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	fx.postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
