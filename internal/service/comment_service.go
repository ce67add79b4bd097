package service

import (
	"context"

	"gamereviews/internal/auth"
	"gamereviews/internal/models"
	"gamereviews/internal/query"
	"gamereviews/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

func NewCommentService(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

// ListComments returns a page of a review's comments. The review must exist;
// an unknown review is never answered with an empty list.
func (s *CommentService) ListComments(ctx context.Context, reviewID int, page query.Page) ([]models.Comment, error) {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByReview(ctx, reviewID, page)
}

// CreateComment adds a comment. Unknown reviews and authors are rejected by the store.
func (s *CommentService) CreateComment(ctx context.Context, reviewID int, in models.NewComment) (*models.Comment, error) {
	if in.Username == "" || in.Body == "" {
		return nil, models.NewBadRequestError()
	}
	return s.commentRepo.Create(ctx, reviewID, in)
}

func (s *CommentService) VoteComment(ctx context.Context, id, delta int) (*models.Comment, error) {
	return s.commentRepo.IncrementVotes(ctx, id, delta)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if err := auth.CanModify(in.Caller, comment.Author); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, in.ID)
}
