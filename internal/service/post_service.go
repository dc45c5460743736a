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

// CreatePostInput carries the fields of a new post.
type CreatePostInput struct {
	Title     string
	Content   string
	Published bool
	AuthorID  uint
}

// PostService handles post operations.
type PostService interface {
	CreatePost(ctx context.Context, in CreatePostInput) (*model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.PostDetail, error)
	ListPosts(ctx context.Context) ([]model.PostListItem, error)
}

type postService struct {
	repo      repository.PostRepository
	cache     *cache.Client
	publisher events.Publisher
}

// NewPostService creates a new post service.
func NewPostService(repo repository.PostRepository, cache *cache.Client, publisher events.Publisher) PostService {
	return &postService{repo: repo, cache: cache, publisher: publisher}
}

// CreatePost stores a post for an existing author.
func (s *postService) CreatePost(ctx context.Context, in CreatePostInput) (*model.Post, error) {
	post := &model.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: in.Published,
		AuthorID:  in.AuthorID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		if errors.Is(err, apperrors.ErrUnknownAuthor) {
			return nil, err
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	// The author's detail view now lacks this post.
	s.cache.Invalidate(ctx, cache.UserKey(post.AuthorID))
	publish(ctx, s.publisher, events.New(events.PostCreated, post.ID, post))
	return post, nil
}

// GetPost returns a post with its author and comments.
func (s *postService) GetPost(ctx context.Context, id uint) (*model.PostDetail, error) {
	var cached model.PostDetail
	if s.cache.GetJSON(ctx, cache.PostKey(id), &cached) {
		return &cached, nil
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}

	detail := model.NewPostDetail(post)
	s.cache.SetJSON(ctx, cache.PostKey(id), detail, cache.DefaultTTL)
	return &detail, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]model.PostListItem, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	items := make([]model.PostListItem, 0, len(posts))
	for i := range posts {
		items = append(items, model.NewPostListItem(&posts[i]))
	}
	return items, nil
}
