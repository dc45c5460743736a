package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	List(ctx context.Context) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment after confirming both its author and parent post exist.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.User{}, comment.AuthorID, apperrors.ErrUnknownAuthor); err != nil {
			return err
		}
		if err := requireRow(tx, &model.Post{}, comment.PostID, apperrors.ErrUnknownPost); err != nil {
			return err
		}
		err := tx.Omit("Author", "Post").Create(comment).Error
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrUnknownPost
		}
		return err
	})
}

// List returns every comment with its author and parent post projections.
func (r *commentRepository) List(ctx context.Context) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Preload("Author", selectAuthor(false)).
		Preload("Post", func(tx *gorm.DB) *gorm.DB { return tx.Select("id", "title") }).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
