package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blogapi/internal/config"
	"blogapi/internal/db"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open(config.DriverSQLite, filepath.Join(t.TempDir(), "blog.db"), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gormDB))
	t.Cleanup(func() { _ = db.Close(gormDB) })
	return gormDB
}

func seedUser(t *testing.T, repo UserRepository, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Name: "User " + email, PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	first := seedUser(t, repo, "a@x.com")
	assert.NotZero(t, first.ID)

	err := repo.Create(ctx, &model.User{Email: "a@x.com", Name: "B", PasswordHash: "h"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	// Email comparison is exact: a different case is a different address.
	require.NoError(t, repo.Create(ctx, &model.User{Email: "A@x.com", Name: "C", PasswordHash: "h"}))
}

func TestUserRepository_ConcurrentDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(context.Background(), &model.User{
				Email: "race@x.com", Name: fmt.Sprint(i), PasswordHash: "h",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, apperrors.ErrDuplicateEmail):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)
}

func TestUserRepository_Find(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, repo, "a@x.com")

	got, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)

	_, err = repo.FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostRepository_CreateRequiresAuthor(t *testing.T) {
	gormDB := newTestDB(t)
	posts := NewPostRepository(gormDB)
	ctx := context.Background()

	err := posts.Create(ctx, &model.Post{Title: "orphan", AuthorID: 404})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAuthor)

	err = posts.Create(ctx, &model.Post{Title: "no author"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAuthor)

	list, err := posts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPostRepository_ForeignKeyEnforced(t *testing.T) {
	gormDB := newTestDB(t)

	// Bypass the existence check to prove the schema itself rejects dangling rows.
	err := gormDB.Create(&model.Post{Title: "dangling", AuthorID: 77}).Error
	assert.Error(t, err)

	var count int64
	require.NoError(t, gormDB.Model(&model.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostRepository_FindByIDProjections(t *testing.T) {
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	posts := NewPostRepository(gormDB)
	comments := NewCommentRepository(gormDB)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@x.com")
	bob := seedUser(t, users, "bob@x.com")

	post := &model.Post{Title: "Hello", Content: "World", AuthorID: alice.ID}
	require.NoError(t, posts.Create(ctx, post))
	assert.False(t, post.Published)
	assert.False(t, post.CreatedAt.IsZero())

	require.NoError(t, comments.Create(ctx, &model.Comment{Content: "nice", AuthorID: bob.ID, PostID: post.ID}))

	got, err := posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice@x.com", got.Author.Email)
	assert.Empty(t, got.Author.PasswordHash)
	require.Len(t, got.Comments, 1)
	require.NotNil(t, got.Comments[0].Author)
	assert.Equal(t, bob.ID, got.Comments[0].Author.ID)
	assert.Empty(t, got.Comments[0].Author.Email)
	assert.Empty(t, got.Comments[0].Author.PasswordHash)

	_, err = posts.FindByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommentRepository_CreateRequiresReferences(t *testing.T) {
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	posts := NewPostRepository(gormDB)
	comments := NewCommentRepository(gormDB)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@x.com")
	post := &model.Post{Title: "Hello", AuthorID: alice.ID}
	require.NoError(t, posts.Create(ctx, post))

	err := comments.Create(ctx, &model.Comment{Content: "x", AuthorID: 404, PostID: post.ID})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAuthor)

	err = comments.Create(ctx, &model.Comment{Content: "x", AuthorID: alice.ID, PostID: 404})
	assert.ErrorIs(t, err, apperrors.ErrUnknownPost)

	require.NoError(t, comments.Create(ctx, &model.Comment{Content: "ok", AuthorID: alice.ID, PostID: post.ID}))

	list, err := comments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hello", list[0].Post.Title)
	assert.Equal(t, alice.Name, list[0].Author.Name)
}

func TestUserRepository_ActivityAndListing(t *testing.T) {
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	posts := NewPostRepository(gormDB)
	comments := NewCommentRepository(gormDB)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@x.com")
	seedUser(t, users, "bob@x.com")
	p1 := &model.Post{Title: "one", Content: "body one", AuthorID: alice.ID}
	p2 := &model.Post{Title: "two", Content: "body two", AuthorID: alice.ID, Published: true}
	require.NoError(t, posts.Create(ctx, p1))
	require.NoError(t, posts.Create(ctx, p2))
	require.NoError(t, comments.Create(ctx, &model.Comment{Content: "self", AuthorID: alice.ID, PostID: p1.ID}))

	got, err := users.FindByIDWithActivity(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 2)
	assert.True(t, got.Posts[1].Published)
	assert.Len(t, got.Comments, 1)

	list, err := users.ListWithPostTitles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Len(t, list[0].Posts, 2)
	assert.Equal(t, "one", list[0].Posts[0].Title)
	assert.Empty(t, list[0].Posts[0].Content, "only id and title are loaded")
	assert.Empty(t, list[1].Posts)

	// The serialized model never carries the hash.
	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$")
}
