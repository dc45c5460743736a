package model

import "time"

// Comment belongs to one author and one parent Post.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  uint      `json:"authorId" gorm:"not null;index"`
	PostID    uint      `json:"postId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Author *User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Post   *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
