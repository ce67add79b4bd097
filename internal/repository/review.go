package repository

import (
	"context"

	"gamereviews/internal/models"
	"gamereviews/internal/query"

	"gorm.io/gorm"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	List(ctx context.Context, opts query.ReviewListOptions) ([]models.ReviewSummary, error)
	Count(ctx context.Context, opts query.ReviewListOptions) (int, error)
	GetByID(ctx context.Context, id int) (*models.Review, error)
	Create(ctx context.Context, review models.NewReview) (int, error)
	IncrementVotes(ctx context.Context, id, delta int) error
	Delete(ctx context.Context, id int) error
}

type reviewRepository struct {
	base
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{base: newBase(db, "reviews")}
}

func (r *reviewRepository) List(ctx context.Context, opts query.ReviewListOptions) (reviews []models.ReviewSummary, err error) {
	ctx, done := r.observe(ctx, "List")
	defer func() { done(err) }()

	reviews = make([]models.ReviewSummary, 0, opts.Limit)
	_, err = r.scan(ctx, query.ReviewList(opts), &reviews)
	return reviews, err
}

func (r *reviewRepository) Count(ctx context.Context, opts query.ReviewListOptions) (total int, err error) {
	ctx, done := r.observe(ctx, "Count")
	defer func() { done(err) }()

	_, err = r.scan(ctx, query.ReviewCount(opts), &total)
	return total, err
}

func (r *reviewRepository) GetByID(ctx context.Context, id int) (_ *models.Review, err error) {
	ctx, done := r.observe(ctx, "GetByID")
	defer func() { done(err) }()

	var review models.Review
	n, err := r.scan(ctx, fixed(query.ReviewByID, id), &review)
	if err != nil {
		return nil, err
	}
	return CheckRows(n, &review, models.MsgIDNotFound)
}

// Create inserts the review and returns its generated id.
func (r *reviewRepository) Create(ctx context.Context, review models.NewReview) (id int, err error) {
	ctx, done := r.observe(ctx, "Create")
	defer func() { done(err) }()

	_, err = r.scan(ctx, query.InsertReview(review), &id)
	return id, err
}

func (r *reviewRepository) IncrementVotes(ctx context.Context, id, delta int) (err error) {
	ctx, done := r.observe(ctx, "IncrementVotes")
	defer func() { done(err) }()

	n, err := r.exec(ctx, fixed(`UPDATE reviews SET votes = votes + $1 WHERE review_id = $2`, delta, id))
	if err != nil {
		return err
	}
	_, err = CheckRows(n, struct{}{}, models.MsgIDNotFound)
	return err
}

func (r *reviewRepository) Delete(ctx context.Context, id int) (err error) {
	ctx, done := r.observe(ctx, "Delete")
	defer func() { done(err) }()

	n, err := r.exec(ctx, fixed(`DELETE FROM reviews WHERE review_id = $1`, id))
	if err != nil {
		return err
	}
	_, err = CheckRows(n, struct{}{}, models.MsgIDNotFound)
	return err
}
