package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post after confirming its author exists. The foreign key
// constraint backs the check; either failure is ErrUnknownAuthor.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.User{}, post.AuthorID, apperrors.ErrUnknownAuthor); err != nil {
			return err
		}
		err := tx.Omit("Author", "Comments").Create(post).Error
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrUnknownAuthor
		}
		return err
	})
}

// FindByID loads a post with its author and its comments' authors.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Author", selectAuthor(true)).
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Comments.Author", selectAuthor(false)).
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns every post with its author.
func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Author", selectAuthor(true)).
		Order("id").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// selectAuthor limits a preloaded author to its display columns.
func selectAuthor(withEmail bool) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if withEmail {
			return tx.Select("id", "name", "email")
		}
		return tx.Select("id", "name")
	}
}

// requireRow returns missing when no row of dest's table has the given id.
func requireRow(tx *gorm.DB, dest interface{}, id uint, missing error) error {
	if id == 0 {
		return missing
	}
	var count int64
	if err := tx.Model(dest).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return missing
	}
	return nil
}
