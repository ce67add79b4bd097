// Package service composes repositories, the query formatter and the authorization gate into domain operations.
package service

import (
	"context"

	"gamereviews/internal/auth"
	"gamereviews/internal/models"
	"gamereviews/internal/query"
	"gamereviews/internal/repository"

	"golang.org/x/sync/errgroup"
)

type ReviewService struct {
	reviewRepo   repository.ReviewRepository
	categoryRepo repository.CategoryRepository
}

// ReviewPage is one page of a review listing plus the size of the whole filtered set.
type ReviewPage struct {
	Reviews    []models.ReviewSummary `json:"reviews"`
	TotalCount int                    `json:"total_count"`
}

type DeleteInput struct {
	Caller models.Identity
	ID     int
}

func NewReviewService(reviewRepo repository.ReviewRepository, categoryRepo repository.CategoryRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		categoryRepo: categoryRepo,
	}
}

// ListReviews runs the page query, the total count and, when filtering, the
// category existence check concurrently. An unknown category is rejected even
// though the page itself would simply be empty.
func (s *ReviewService) ListReviews(ctx context.Context, opts query.ReviewListOptions) (*ReviewPage, error) {
	g, gctx := errgroup.WithContext(ctx)

	var reviews []models.ReviewSummary
	var total int

	g.Go(func() error {
		var err error
		reviews, err = s.reviewRepo.List(gctx, opts)
		return err
	})
	if opts.Category != nil {
		slug := *opts.Category
		g.Go(func() error {
			_, err := s.categoryRepo.GetBySlug(gctx, slug)
			return err
		})
	}
	g.Go(func() error {
		var err error
		total, err = s.reviewRepo.Count(gctx, opts)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.ReviewSummary{}
	}
	return &ReviewPage{Reviews: reviews, TotalCount: total}, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id int) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// CreateReview inserts the review and returns it as stored, defaults included.
func (s *ReviewService) CreateReview(ctx context.Context, in models.NewReview) (*models.Review, error) {
	if in.Owner == "" || in.Title == "" || in.ReviewBody == "" || in.Designer == "" || in.Category == "" {
		return nil, models.NewBadRequestError()
	}
	if in.ReviewImgURL != nil && *in.ReviewImgURL == "" {
		in.ReviewImgURL = nil
	}

	id, err := s.reviewRepo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, id)
}

// VoteReview applies a relative vote change and returns the updated review.
func (s *ReviewService) VoteReview(ctx context.Context, id, delta int) (*models.Review, error) {
	if err := s.reviewRepo.IncrementVotes(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, id)
}

// DeleteReview removes a review and, through the store, its comments.
// A missing review is reported before ownership is considered.
func (s *ReviewService) DeleteReview(ctx context.Context, in DeleteInput) error {
	review, err := s.reviewRepo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if err := auth.CanModify(in.Caller, review.Owner); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, in.ID)
}
