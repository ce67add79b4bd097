// Package models contains data structures for the application's domain models.
package models

import "time"

// DefaultReviewImgURL is the placeholder the store applies when a review is created without an image.
const DefaultReviewImgURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

// Review is a board game review. CommentCount is derived at read time.
type Review struct {
	ReviewID     int       `gorm:"column:review_id" json:"review_id"`
	Owner        string    `gorm:"column:owner" json:"owner"`
	Title        string    `gorm:"column:title" json:"title"`
	ReviewBody   string    `gorm:"column:review_body" json:"review_body"`
	Designer     string    `gorm:"column:designer" json:"designer"`
	Category     string    `gorm:"column:category" json:"category"`
	ReviewImgURL string    `gorm:"column:review_img_url" json:"review_img_url"`
	Votes        int       `gorm:"column:votes" json:"votes"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	CommentCount int       `gorm:"column:comment_count;->" json:"comment_count"`
}

// ReviewSummary is the listing shape of a review; the body is omitted.
type ReviewSummary struct {
	ReviewID     int       `gorm:"column:review_id" json:"review_id"`
	Owner        string    `gorm:"column:owner" json:"owner"`
	Title        string    `gorm:"column:title" json:"title"`
	Designer     string    `gorm:"column:designer" json:"designer"`
	Category     string    `gorm:"column:category" json:"category"`
	ReviewImgURL string    `gorm:"column:review_img_url" json:"review_img_url"`
	Votes        int       `gorm:"column:votes" json:"votes"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	CommentCount int       `gorm:"column:comment_count;->" json:"comment_count"`
}

// NewReview is the creation payload for a review. ReviewImgURL is optional.
type NewReview struct {
	Owner        string  `json:"owner"`
	Title        string  `json:"title"`
	ReviewBody   string  `json:"review_body"`
	Designer     string  `json:"designer"`
	Category     string  `json:"category"`
	ReviewImgURL *string `json:"review_img_url"`
}
