package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blogapi/internal/cache"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/events"
	"blogapi/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	users := new(MockUserRepository)
	pub := &recordingPublisher{}
	svc := NewUserService(users, nil, pub)

	users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 11
	}).Return(nil)

	summary, err := svc.CreateUser(context.Background(), "b@x.com", "B", "pw")
	require.NoError(t, err)
	assert.Equal(t, uint(11), summary.ID)
	assert.Equal(t, "b@x.com", summary.Email)
	assert.Equal(t, []string{events.UserCreated}, pub.types())

	stored := users.Calls[0].Arguments.Get(1).(*model.User)
	assert.NotEqual(t, "pw", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_GetUserNotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByIDWithActivity", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewUserService(users, nil, events.NopPublisher{})

	detail, err := svc.GetUser(context.Background(), 9)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_GetUserCached(t *testing.T) {
	c, mr := newTestCache(t)
	users := new(MockUserRepository)
	users.On("FindByIDWithActivity", mock.Anything, uint(1)).
		Return(&model.User{ID: 1, Email: "a@x.com", Name: "A", Posts: []model.Post{{ID: 4, Title: "t", AuthorID: 1}}}, nil).
		Once()
	svc := NewUserService(users, c, events.NopPublisher{})
	ctx := context.Background()

	first, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, first.Posts, 1)
	assert.NotNil(t, first.Comments)
	assert.True(t, mr.Exists(cache.UserKey(1)))

	second, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Posts[0].Title, second.Posts[0].Title)
	users.AssertNumberOfCalls(t, "FindByIDWithActivity", 1)
}

func TestUserService_ListUsers(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ListWithPostTitles", mock.Anything).Return([]model.User{
		{ID: 1, Email: "a@x.com", Name: "A", PasswordHash: "h", Posts: []model.Post{{ID: 2, Title: "hello"}}},
		{ID: 3, Email: "b@x.com", Name: "B"},
	}, nil)
	svc := NewUserService(users, nil, events.NopPublisher{})

	list, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []model.PostRef{{ID: 2, Title: "hello"}}, list[0].Posts)
	assert.NotNil(t, list[1].Posts)
	assert.Empty(t, list[1].Posts)
}

func TestUserService_ListUsersEmpty(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ListWithPostTitles", mock.Anything).Return([]model.User{}, nil)
	svc := NewUserService(users, nil, events.NopPublisher{})

	list, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
