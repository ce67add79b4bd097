package models

import "time"

// Comment is a comment left on a review.
type Comment struct {
	CommentID int       `gorm:"column:comment_id" json:"comment_id"`
	ReviewID  int       `gorm:"column:review_id" json:"review_id"`
	Author    string    `gorm:"column:author" json:"author"`
	Body      string    `gorm:"column:body" json:"body"`
	Votes     int       `gorm:"column:votes" json:"votes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// NewComment is the creation payload for a comment.
type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}
