package handler

import (
	"blogapi/internal/model"
)

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  model.UserSummary `json:"user"`
	Token string            `json:"token"`
}

// UserResponse wraps a newly created user.
type UserResponse struct {
	User *model.UserSummary `json:"user"`
}

// UserDetailResponse wraps a user with posts and comments.
type UserDetailResponse struct {
	User *model.UserDetail `json:"user"`
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users []model.UserListItem `json:"users"`
}

// PostResponse wraps a newly created post.
type PostResponse struct {
	Post *model.Post `json:"post"`
}

// PostDetailResponse wraps a post with author and comments.
type PostDetailResponse struct {
	Post *model.PostDetail `json:"post"`
}

// PostsResponse wraps the post list.
type PostsResponse struct {
	Posts []model.PostListItem `json:"posts"`
}

// CommentResponse wraps a newly created comment.
type CommentResponse struct {
	Comment *model.Comment `json:"comment"`
}

// CommentsResponse wraps the comment list.
type CommentsResponse struct {
	Comments []model.CommentListItem `json:"comments"`
}
