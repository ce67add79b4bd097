package repository

import (
	"context"

	"gamereviews/internal/models"
	"gamereviews/internal/query"

	"gorm.io/gorm"
)

const commentColumns = `comment_id, review_id, author, body, votes, created_at`

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	ListByReview(ctx context.Context, reviewID int, page query.Page) ([]models.Comment, error)
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	Create(ctx context.Context, reviewID int, comment models.NewComment) (*models.Comment, error)
	IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

type commentRepository struct {
	base
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{base: newBase(db, "comments")}
}

func (r *commentRepository) ListByReview(ctx context.Context, reviewID int, page query.Page) (comments []models.Comment, err error) {
	ctx, done := r.observe(ctx, "ListByReview")
	defer func() { done(err) }()

	comments = make([]models.Comment, 0, page.Limit)
	_, err = r.scan(ctx, query.CommentList(reviewID, page), &comments)
	return comments, err
}

func (r *commentRepository) GetByID(ctx context.Context, id int) (_ *models.Comment, err error) {
	ctx, done := r.observe(ctx, "GetByID")
	defer func() { done(err) }()

	var comment models.Comment
	n, err := r.scan(ctx, fixed(`SELECT `+commentColumns+` FROM comments WHERE comment_id = $1`, id), &comment)
	if err != nil {
		return nil, err
	}
	return CheckRows(n, &comment, models.MsgIDNotFound)
}

// Create inserts a comment. A review or author that does not exist is rejected by the store's foreign keys.
func (r *commentRepository) Create(ctx context.Context, reviewID int, comment models.NewComment) (_ *models.Comment, err error) {
	ctx, done := r.observe(ctx, "Create")
	defer func() { done(err) }()

	var created models.Comment
	_, err = r.scan(ctx, fixed(
		`INSERT INTO comments (review_id, author, body) VALUES ($1, $2, $3) RETURNING `+commentColumns,
		reviewID, comment.Username, comment.Body,
	), &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *commentRepository) IncrementVotes(ctx context.Context, id, delta int) (_ *models.Comment, err error) {
	ctx, done := r.observe(ctx, "IncrementVotes")
	defer func() { done(err) }()

	var comment models.Comment
	n, err := r.scan(ctx, fixed(
		`UPDATE comments SET votes = votes + $1 WHERE comment_id = $2 RETURNING `+commentColumns,
		delta, id,
	), &comment)
	if err != nil {
		return nil, err
	}
	return CheckRows(n, &comment, models.MsgIDNotFound)
}

func (r *commentRepository) Delete(ctx context.Context, id int) (err error) {
	ctx, done := r.observe(ctx, "Delete")
	defer func() { done(err) }()

	n, err := r.exec(ctx, fixed(`DELETE FROM comments WHERE comment_id = $1`, id))
	if err != nil {
		return err
	}
	_, err = CheckRows(n, struct{}{}, models.MsgIDNotFound)
	return err
}
