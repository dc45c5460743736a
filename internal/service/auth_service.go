package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/events"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// AuthResult is a user paired with a freshly issued bearer token.
type AuthResult struct {
	User  model.UserSummary `json:"user"`
	Token string            `json:"token"`
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    auth.TokenService
	publisher events.Publisher
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens auth.TokenService, publisher events.Publisher) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		publisher: publisher,
	}
}

// Register creates a user with a hashed password and returns it with a token.
// Duplicate emails are rejected by the store's unique index, not by a lookup.
func (s *authService) Register(ctx context.Context, email, name, password string) (*AuthResult, error) {
	user, err := createUser(ctx, s.userRepo, email, name, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	summary := model.NewUserSummary(user)
	publish(ctx, s.publisher, events.New(events.UserRegistered, user.ID, summary))

	return &AuthResult{User: summary, Token: token}, nil
}

// Login authenticates a user. An unknown email and a wrong password both return
// ErrInvalidCredentials after the same amount of bcrypt work.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			auth.BurnPasswordCheck(password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := auth.PasswordMatches(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{User: model.NewUserSummary(user), Token: token}, nil
}

// createUser hashes the password and inserts the user.
func createUser(ctx context.Context, repo repository.UserRepository, email, name, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
