package service

import (
	"context"
	"log/slog"
	"time"

	autherror "github.com/Nikhar-savaliya/blogsite-api/internal/errors"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/domain"
	"github.com/Nikhar-savaliya/blogsite-api/internal/user/dto"
)

type UserService struct {
	repo      domain.UserRepository
	tokens    *TokenService
	usernames *UsernameAllocator
	logger    *slog.Logger
}

func NewUserService(repo domain.UserRepository, tokens *TokenService, logger *slog.Logger) *UserService {
	return &UserService{
		repo:      repo,
		tokens:    tokens,
		usernames: NewUsernameAllocator(repo),
		logger:    logger,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	username, err := s.usernames.Allocate(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		PersonalInfo: domain.PersonalInfo{
			Fullname: input.Name,
			Email:    input.Email,
			Password: hashedPassword,
			Username: username,
		},
		JoinedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"username", user.PersonalInfo.Username,
		"fullname", user.PersonalInfo.Fullname,
	)

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	match, err := VerifyPassword(input.Password, user.PersonalInfo.Password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, autherror.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{AccessToken: token}, nil
}
