package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/internal/cache"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/events"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// UserService exposes user read and create operations.
type UserService interface {
	CreateUser(ctx context.Context, email, name, password string) (*model.UserSummary, error)
	GetUser(ctx context.Context, id uint) (*model.UserDetail, error)
	ListUsers(ctx context.Context) ([]model.UserListItem, error)
}

type userService struct {
	repo      repository.UserRepository
	cache     *cache.Client
	publisher events.Publisher
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client, publisher events.Publisher) UserService {
	return &userService{repo: repo, cache: cache, publisher: publisher}
}

// CreateUser stores a user without issuing a token.
func (s *userService) CreateUser(ctx context.Context, email, name, password string) (*model.UserSummary, error) {
	user, err := createUser(ctx, s.repo, email, name, password)
	if err != nil {
		return nil, err
	}
	summary := model.NewUserSummary(user)
	publish(ctx, s.publisher, events.New(events.UserCreated, user.ID, summary))
	return &summary, nil
}

// GetUser returns the user with their posts and comments.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.UserDetail, error) {
	var cached model.UserDetail
	if s.cache.GetJSON(ctx, cache.UserKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByIDWithActivity(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	detail := model.NewUserDetail(user)
	s.cache.SetJSON(ctx, cache.UserKey(id), detail, cache.DefaultTTL)
	return &detail, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.UserListItem, error) {
	users, err := s.repo.ListWithPostTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	items := make([]model.UserListItem, 0, len(users))
	for i := range users {
		items = append(items, model.NewUserListItem(&users[i]))
	}
	return items, nil
}
