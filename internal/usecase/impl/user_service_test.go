package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/domain/service"
	mockRepo "blvgames/internal/mocks/repository"
	mockSvc "blvgames/internal/mocks/service"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	fx.service = NewUserService(UserServiceParams{
		TxManager:        fx.txManager,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Config:           newTestConfig(0),
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:         "Ana Quispe",
		Email:        "  Ana@Example.com ",
		Password:     "Password123!",
		BusinessName: "Andes Interactive",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").
		Return(nil, repository.ErrAuthNotFound)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == userID &&
				auth.ProviderUserID == "ana@example.com" &&
				auth.PasswordHash == "hashed_password"
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "ana@example.com", output.User.Email)
	assert.Equal(t, entity.RoleCreator, output.User.Role)
	assert.Equal(t, "Andes Interactive", output.User.BusinessName)
	assert.Equal(t, entity.DefaultLogoURL("Andes Interactive"), output.User.Logo)
}

func TestUserService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterInput{
		Name:         "Ana Quispe",
		Email:        "ana@example.com",
		Password:     strings.Repeat("x", service.MaxPasswordBytes+1),
		BusinessName: "Andes Interactive",
	}
	fx.hasher.EXPECT().Hash(input.Password).Return("", service.ErrPasswordTooLong)

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:         "Ana Quispe",
		Email:        "ana@example.com",
		Password:     "Password123!",
		BusinessName: "Andes Interactive",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)

	// No UserRepo expectation: a second user must never be created.
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_Register_DuplicateEmailRace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:         "Ana Quispe",
		Email:        "ana@example.com",
		Password:     "Password123!",
		BusinessName: "Andes Interactive",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").
		Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_Register_MissingField(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
		field string
	}{
		{
			name:  "missing name",
			input: usecase.RegisterInput{Email: "a@b.bo", Password: "x", BusinessName: "Studio"},
			field: "name",
		},
		{
			name:  "blank email",
			input: usecase.RegisterInput{Name: "Ana", Email: "   ", Password: "x", BusinessName: "Studio"},
			field: "email",
		},
		{
			name:  "missing password",
			input: usecase.RegisterInput{Name: "Ana", Email: "a@b.bo", BusinessName: "Studio"},
			field: "password",
		},
		{
			name:  "missing business name",
			input: usecase.RegisterInput{Name: "Ana", Email: "a@b.bo", Password: "x"},
			field: "businessName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			output, err := fx.service.Register(context.Background(), &tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingField))

			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.field, appErr.Details())
		})
	}
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterInput{
		Name:         "Ana",
		Email:        "ana@example.com",
		Password:     "Password123!",
		BusinessName: "Studio",
	}
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt exploded"))

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Role: entity.RoleCreator}
	authRecord := &entity.Authentication{UserID: user.ID, Provider: entity.ProviderTypeEmail, PasswordHash: "hashed"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").Return(authRecord, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, mock.Anything).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == "refresh-hash"
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ANA@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	authRecord := &entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").Return(authRecord, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	fx.tokenService.EXPECT().ValidateToken("refresh").
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, user.Roles().ToStrings()).Return("new-access", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_RefreshToken_AccessTokenRejected(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateToken("access").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_SessionOfAnotherUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateToken("refresh").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: uuid.New()}, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateToken("refresh").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_ExpiredSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.tokenService.EXPECT().ValidateToken("refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)}, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout(t *testing.T) {
	t.Run("deletes the session even when the token no longer validates", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		fx.tokenService.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
		fx.tokenService.EXPECT().HashToken("expired").Return("expired-hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "expired-hash").Return(nil)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "expired"}))
	})

	t.Run("blank token", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: " "})

		assert.True(t, errors.Is(err, domainerrors.ErrMissingField))
	})
}

func TestUserService_LogoutAllDevices(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	require.NoError(t, fx.service.LogoutAllDevices(ctx, userID))
}
