package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/service"
)

// CommentHandler serves the comment endpoints.
type CommentHandler struct {
	svc service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// CreateCommentRequest is the body of POST /comments.
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	AuthorID uint   `json:"authorId" validate:"required"`
	PostID   uint   `json:"postId" validate:"required"`
}

// CreateComment godoc
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body CreateCommentRequest true "Comment payload"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	comment, err := h.svc.CreateComment(c.Request().Context(), service.CreateCommentInput{
		Content:  req.Content,
		AuthorID: req.AuthorID,
		PostID:   req.PostID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CommentResponse{Comment: comment})
}

// ListComments godoc
// @Summary List comments
// @Tags comments
// @Produce json
// @Success 200 {object} CommentsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /comments [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.svc.ListComments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CommentsResponse{Comments: comments})
}
