package model

import "time"

// The types below are the only shapes the API serializes. None of them has a
// field for the password hash, so a read path cannot leak it.

// UserSummary is returned by register, login and create-user.
type UserSummary struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthorRef is the shallow author projection embedded in posts and comments.
type AuthorRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// PostRef is the shallow post projection embedded in user lists and comments.
type PostRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// UserListItem is an element of GET /users.
type UserListItem struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Posts     []PostRef `json:"posts"`
}

// UserDetail is a user with all of their posts and comments.
type UserDetail struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Posts     []Post    `json:"posts"`
	Comments  []Comment `json:"comments"`
}

// PostListItem is an element of GET /posts.
type PostListItem struct {
	Post
	Author AuthorRef `json:"author"`
}

// CommentWithAuthor is a comment as shown under its post.
type CommentWithAuthor struct {
	Comment
	Author AuthorRef `json:"author"`
}

// PostDetail is a post with its author and comments.
type PostDetail struct {
	Post
	Author   AuthorRef           `json:"author"`
	Comments []CommentWithAuthor `json:"comments"`
}

// CommentListItem is an element of GET /comments.
type CommentListItem struct {
	Comment
	Author AuthorRef `json:"author"`
	Post   PostRef   `json:"post"`
}

// NewUserSummary projects a user without credentials.
func NewUserSummary(u *User) UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

// NewAuthorRef projects an author; withEmail controls whether the email is shown.
func NewAuthorRef(u *User, withEmail bool) AuthorRef {
	if u == nil {
		return AuthorRef{}
	}
	ref := AuthorRef{ID: u.ID, Name: u.Name}
	if withEmail {
		ref.Email = u.Email
	}
	return ref
}

// NewPostRef projects a post down to id and title.
func NewPostRef(p *Post) PostRef {
	if p == nil {
		return PostRef{}
	}
	return PostRef{ID: p.ID, Title: p.Title}
}

// NewUserListItem builds the GET /users projection.
func NewUserListItem(u *User) UserListItem {
	posts := make([]PostRef, 0, len(u.Posts))
	for i := range u.Posts {
		posts = append(posts, NewPostRef(&u.Posts[i]))
	}
	return UserListItem{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt, Posts: posts}
}

// NewUserDetail builds the user detail projection.
func NewUserDetail(u *User) UserDetail {
	posts := u.Posts
	if posts == nil {
		posts = []Post{}
	}
	comments := u.Comments
	if comments == nil {
		comments = []Comment{}
	}
	return UserDetail{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		Posts:     posts,
		Comments:  comments,
	}
}

// NewPostListItem builds the GET /posts projection.
func NewPostListItem(p *Post) PostListItem {
	return PostListItem{Post: *p, Author: NewAuthorRef(p.Author, true)}
}

// NewPostDetail builds the GET /posts/:id projection.
func NewPostDetail(p *Post) PostDetail {
	comments := make([]CommentWithAuthor, 0, len(p.Comments))
	for i := range p.Comments {
		c := &p.Comments[i]
		comments = append(comments, CommentWithAuthor{Comment: *c, Author: NewAuthorRef(c.Author, false)})
	}
	return PostDetail{Post: *p, Author: NewAuthorRef(p.Author, true), Comments: comments}
}

// NewCommentListItem builds the GET /comments projection.
func NewCommentListItem(c *Comment) CommentListItem {
	return CommentListItem{Comment: *c, Author: NewAuthorRef(c.Author, false), Post: NewPostRef(c.Post)}
}
