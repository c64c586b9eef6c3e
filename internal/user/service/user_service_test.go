package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/Nikhar-savaliya/blogsite-api/internal/errors"
	"github.com/Nikhar-savaliya/blogsite-api/internal/mocks"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/domain"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/dto"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/service"
)

func newTestUserService(repo domain.UserRepository) (*service.UserService, *service.TokenService) {
	tokens := service.NewTokenService("test-secret", 60)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewUserService(repo, tokens, logger), tokens
}

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s, _ := newTestUserService(mockRepo)

	input := dto.RegisterInput{
		Name:     "Bob",
		Email:    "bob@y.com",
		Password: "secret1",
	}

	var created *domain.User

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().UsernameExists(gomock.Any(), "bob").Return(false, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) error {
			created = user
			return nil
		})

	user, err := s.Register(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created, user)
	assert.Equal(t, "Bob", user.PersonalInfo.Fullname)
	assert.Equal(t, "bob@y.com", user.PersonalInfo.Email)
	assert.Equal(t, "bob", user.PersonalInfo.Username)
	assert.NotZero(t, user.JoinedAt)

	// stored credential is a verifiable hash, not the plaintext
	assert.NotEqual(t, input.Password, user.PersonalInfo.Password)
	match, err := service.VerifyPassword(input.Password, user.PersonalInfo.Password)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestUserService_Register_EmailAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s, _ := newTestUserService(mockRepo)

	input := dto.RegisterInput{Name: "Bob", Email: "bob@y.com", Password: "secret1"}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).
		Return(&domain.User{PersonalInfo: domain.PersonalInfo{Email: input.Email}}, nil)

	user, err := s.Register(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	assert.Nil(t, user)
}

func TestUserService_Register_GetByEmailError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s, _ := newTestUserService(mockRepo)

	expectedError := errors.New("database error")
	mockRepo.EXPECT().GetByEmail(gomock.Any(), "bob@y.com").Return(nil, expectedError)

	user, err := s.Register(context.Background(), dto.RegisterInput{
		Name: "Bob", Email: "bob@y.com", Password: "secret1",
	})

	assert.Equal(t, expectedError, err)
	assert.Nil(t, user)
}

func TestUserService_Register_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s, _ := newTestUserService(mockRepo)

	expectedError := errors.New("create error")

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "bob@y.com").Return(nil, nil)
	mockRepo.EXPECT().UsernameExists(gomock.Any(), "bob").Return(false, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(expectedError)

	user, err := s.Register(context.Background(), dto.RegisterInput{
		Name: "Bob", Email: "bob@y.com", Password: "secret1",
	})

	assert.Equal(t, expectedError, err)
	assert.Nil(t, user)
}

func TestUserService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s, tokens := newTestUserService(mockRepo)

	hash, err := service.HashPassword("secret1")
	require.NoError(t, err)

	user := &domain.User{
		PersonalInfo: domain.PersonalInfo{
			Email:    "bob@y.com",
			Password: hash,
			Username: "bob",
		},
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "bob@y.com").Return(user, nil)

	resp, err := s.Login(context.Background(), dto.LoginInput{Email: "bob@y.com", Password: "secret1"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotEmpty(t, resp.AccessToken)

	subject, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), subject)
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s, _ := newTestUserService(mockRepo)

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@y.com").Return(nil, nil)

	resp, err := s.Login(context.Background(), dto.LoginInput{Email: "nobody@y.com", Password: "secret1"})

	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	assert.Nil(t, resp)
}

func TestUserService_Login_InvalidPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s, _ := newTestUserService(mockRepo)

	hash, err := service.HashPassword("correct-password")
	require.NoError(t, err)

	user := &domain.User{
		PersonalInfo: domain.PersonalInfo{Email: "bob@y.com", Password: hash},
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "bob@y.com").Return(user, nil)

	resp, err := s.Login(context.Background(), dto.LoginInput{Email: "bob@y.com", Password: "wrong-password"})

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, resp)
}
