package service

import (
	"context"
	"errors"
	"fmt"

	"blogapi/internal/cache"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/events"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// CreateCommentInput carries the fields of a new comment.
type CreateCommentInput struct {
	Content  string
	AuthorID uint
	PostID   uint
}

// CommentService handles comment operations.
type CommentService interface {
	CreateComment(ctx context.Context, in CreateCommentInput) (*model.Comment, error)
	ListComments(ctx context.Context) ([]model.CommentListItem, error)
}

type commentService struct {
	repo      repository.CommentRepository
	cache     *cache.Client
	publisher events.Publisher
}

// NewCommentService creates a new comment service.
func NewCommentService(repo repository.CommentRepository, cache *cache.Client, publisher events.Publisher) CommentService {
	return &commentService{repo: repo, cache: cache, publisher: publisher}
}

// CreateComment stores a comment for an existing author and post.
func (s *commentService) CreateComment(ctx context.Context, in CreateCommentInput) (*model.Comment, error) {
	comment := &model.Comment{
		Content:  in.Content,
		AuthorID: in.AuthorID,
		PostID:   in.PostID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		if errors.Is(err, apperrors.ErrUnknownAuthor) || errors.Is(err, apperrors.ErrUnknownPost) {
			return nil, err
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.cache.Invalidate(ctx, cache.UserKey(comment.AuthorID), cache.PostKey(comment.PostID))
	publish(ctx, s.publisher, events.New(events.CommentCreated, comment.ID, comment))
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context) ([]model.CommentListItem, error) {
	comments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	items := make([]model.CommentListItem, 0, len(comments))
	for i := range comments {
		items = append(items, model.NewCommentListItem(&comments[i]))
	}
	return items, nil
}
