package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	"inkpress/internal/domain/service"
	mockRepo "inkpress/internal/mocks/repository"
	mockSvc "inkpress/internal/mocks/service"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           usecase.UserUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	authRepo          *mockRepo.MockAuthRepository
	refreshTokenRepo  *mockRepo.MockRefreshTokenRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		AuthRepo:          authRepo,
		RefreshTokenRepo:  refreshTokenRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Logger:            logger,
	})

	return userServiceFixtures{
		service:           service,
		txManager:         txManager,
		userRepo:          userRepo,
		authRepo:          authRepo,
		refreshTokenRepo:  refreshTokenRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
	}
}

func newGoogleUser(email string) *service.OAuthUser {
	return &service.OAuthUser{
		ID:            "google-uid-" + email,
		Email:         email,
		Name:          "Google User",
		Provider:      entity.ProviderTypeGoogle,
		EmailVerified: true,
	}
}

func newRefreshClaims(userID uuid.UUID, role entity.Role) *service.Claims {
	return &service.Claims{UserID: userID, Role: role, Type: "refresh"}
}

func expectSessionOpened(fx userServiceFixtures, ctx context.Context, userID uuid.UUID, role entity.Role) {
	fx.tokenService.EXPECT().GenerateTokens(userID, role).Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "hashed_password", auth.PasswordHash)
					assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.True(t, output.User.IsActive)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Role:     entity.RoleUser,
		IsActive: true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().
		FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "stored_hash"}, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	expectSessionOpened(fx, ctx, user.ID, user.Role)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmailHidesExistence(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", IsActive: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().
		FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "stored_hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "suspended@example.com", IsActive: false}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().
		FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "stored_hash"}, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
}

func TestUserService_GoogleSignIn_ExistingCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "g@example.com", Role: entity.RoleUser, IsActive: true}

	oauthUser := newGoogleUser(user.Email)
	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "valid_id_token").Return(oauthUser, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindByProviderUID(ctx, entity.ProviderTypeGoogle, oauthUser.ID).
				Return(&entity.Authentication{UserID: user.ID, Provider: entity.ProviderTypeGoogle}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	expectSessionOpened(fx, ctx, user.ID, user.Role)

	output, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "valid_id_token"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestUserService_GoogleSignIn_FirstSignInCreatesAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	oauthUser := newGoogleUser("fresh@example.com")

	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "valid_id_token").Return(oauthUser, nil)

	var createdID uuid.UUID
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindByProviderUID(ctx, entity.ProviderTypeGoogle, oauthUser.ID).
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, oauthUser.Email).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					createdID = user.ID
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), entity.RoleUser).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	output, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "valid_id_token"})

	require.NoError(t, err)
	assert.Equal(t, createdID, output.User.ID)
	assert.Equal(t, oauthUser.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestUserService_GoogleSignIn_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "bogus").
		Return(nil, errors.New("token expired"))

	_, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "bogus"})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old_refresh").
		Return(newRefreshClaims(user.ID, user.Role), nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "old_hash").
		Return(&entity.RefreshToken{UserID: user.ID, TokenHash: "old_hash", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, user.Role).Return("new_access", "new_refresh", nil)
	fx.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, "old_hash").Return(nil)
	fx.tokenService.EXPECT().HashToken("new_refresh").Return("new_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, "new_hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old_refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestUserService_Refresh_UnknownTokenRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("revoked").
		Return(newRefreshClaims(userID, entity.RoleUser), nil)
	fx.tokenService.EXPECT().HashToken("revoked").Return("revoked_hash")
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "revoked_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "revoked"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_ExpiredRecordRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("stale").
		Return(newRefreshClaims(userID, entity.RoleUser), nil)
	fx.tokenService.EXPECT().HashToken("stale").Return("stale_hash")
	fx.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "stale_hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "stale_hash", ExpiresAt: time.Now().Add(-time.Minute)}, nil)

	_, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "stale"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_IdempotentWhenAlreadyGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().HashToken("gone").Return("gone_hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, "gone_hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "gone"})

	assert.NoError(t, err)
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Old Name", ProfilePicture: "old.png"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "New Name", updated.Name)
			assert.Equal(t, "old.png", updated.ProfilePicture)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: user.ID, Name: "New Name"})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestUserService_RegisterDeviceToken_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateDeviceToken(ctx, userID, "fcm_token").
		Return(repository.ErrUserNotFound)

	err := fx.service.RegisterDeviceToken(ctx, usecase.RegisterDeviceInput{UserID: userID, DeviceToken: "fcm_token"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
