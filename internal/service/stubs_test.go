package service

import (
	"context"
	"errors"
	"testing"

	"gamereviews/internal/models"
	"gamereviews/internal/query"

	"github.com/stretchr/testify/require"
)

// reviewRepoStub is a stub for repository.ReviewRepository.
type reviewRepoStub struct {
	listFn           func(context.Context, query.ReviewListOptions) ([]models.ReviewSummary, error)
	countFn          func(context.Context, query.ReviewListOptions) (int, error)
	getByIDFn        func(context.Context, int) (*models.Review, error)
	createFn         func(context.Context, models.NewReview) (int, error)
	incrementVotesFn func(context.Context, int, int) error
	deleteFn         func(context.Context, int) error
}

func (s *reviewRepoStub) List(ctx context.Context, opts query.ReviewListOptions) ([]models.ReviewSummary, error) {
	return s.listFn(ctx, opts)
}
func (s *reviewRepoStub) Count(ctx context.Context, opts query.ReviewListOptions) (int, error) {
	return s.countFn(ctx, opts)
}
func (s *reviewRepoStub) GetByID(ctx context.Context, id int) (*models.Review, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reviewRepoStub) Create(ctx context.Context, review models.NewReview) (int, error) {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) IncrementVotes(ctx context.Context, id, delta int) error {
	return s.incrementVotesFn(ctx, id, delta)
}
func (s *reviewRepoStub) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		listFn:           func(_ context.Context, _ query.ReviewListOptions) ([]models.ReviewSummary, error) { return nil, nil },
		countFn:          func(_ context.Context, _ query.ReviewListOptions) (int, error) { return 0, nil },
		getByIDFn:        func(_ context.Context, id int) (*models.Review, error) { return &models.Review{ReviewID: id}, nil },
		createFn:         func(_ context.Context, _ models.NewReview) (int, error) { return 1, nil },
		incrementVotesFn: func(_ context.Context, _, _ int) error { return nil },
		deleteFn:         func(_ context.Context, _ int) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	listFn      func(context.Context) ([]models.Category, error)
	getBySlugFn func(context.Context, string) (*models.Category, error)
	createFn    func(context.Context, models.Category) (*models.Category, error)
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *categoryRepoStub) Create(ctx context.Context, category models.Category) (*models.Category, error) {
	return s.createFn(ctx, category)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn: func(_ context.Context) ([]models.Category, error) { return []models.Category{}, nil },
		getBySlugFn: func(_ context.Context, slug string) (*models.Category, error) {
			return &models.Category{Slug: slug}, nil
		},
		createFn: func(_ context.Context, c models.Category) (*models.Category, error) { return &c, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	listByReviewFn   func(context.Context, int, query.Page) ([]models.Comment, error)
	getByIDFn        func(context.Context, int) (*models.Comment, error)
	createFn         func(context.Context, int, models.NewComment) (*models.Comment, error)
	incrementVotesFn func(context.Context, int, int) (*models.Comment, error)
	deleteFn         func(context.Context, int) error
}

func (s *commentRepoStub) ListByReview(ctx context.Context, reviewID int, page query.Page) ([]models.Comment, error) {
	return s.listByReviewFn(ctx, reviewID, page)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Create(ctx context.Context, reviewID int, comment models.NewComment) (*models.Comment, error) {
	return s.createFn(ctx, reviewID, comment)
}
func (s *commentRepoStub) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	return s.incrementVotesFn(ctx, id, delta)
}
func (s *commentRepoStub) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		listByReviewFn: func(_ context.Context, _ int, _ query.Page) ([]models.Comment, error) {
			return []models.Comment{}, nil
		},
		getByIDFn: func(_ context.Context, id int) (*models.Comment, error) { return &models.Comment{CommentID: id}, nil },
		createFn: func(_ context.Context, reviewID int, c models.NewComment) (*models.Comment, error) {
			return &models.Comment{CommentID: 1, ReviewID: reviewID, Author: c.Username, Body: c.Body}, nil
		},
		incrementVotesFn: func(_ context.Context, id, delta int) (*models.Comment, error) {
			return &models.Comment{CommentID: id, Votes: delta}, nil
		},
		deleteFn: func(_ context.Context, _ int) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	listFn              func(context.Context) ([]models.User, error)
	listByAccessLevelFn func(context.Context, string) ([]models.User, error)
	getByUsernameFn     func(context.Context, string) (*models.User, error)
	getCredentialsFn    func(context.Context, string) (*models.UserCredentials, error)
	createFn            func(context.Context, models.UserCredentials) (*models.User, error)
	setAccessLevelFn    func(context.Context, string, string) error
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}
func (s *userRepoStub) ListByAccessLevel(ctx context.Context, level string) ([]models.User, error) {
	return s.listByAccessLevelFn(ctx, level)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetCredentials(ctx context.Context, username string) (*models.UserCredentials, error) {
	return s.getCredentialsFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user models.UserCredentials) (*models.User, error) {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) SetAccessLevel(ctx context.Context, username, level string) error {
	return s.setAccessLevelFn(ctx, username, level)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		listFn:              func(_ context.Context) ([]models.User, error) { return []models.User{}, nil },
		listByAccessLevelFn: func(_ context.Context, _ string) ([]models.User, error) { return []models.User{}, nil },
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return &models.User{Username: username}, nil
		},
		getCredentialsFn: func(_ context.Context, username string) (*models.UserCredentials, error) {
			return &models.UserCredentials{User: models.User{Username: username}}, nil
		},
		createFn:         func(_ context.Context, u models.UserCredentials) (*models.User, error) { return &u.User, nil },
		setAccessLevelFn: func(_ context.Context, _, _ string) error { return nil },
	}
}

var errStore = errors.New("store unavailable")

func assertKind(t *testing.T, err error, kind models.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := models.AsAppError(err)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	require.Equal(t, kind, appErr.Kind)
}
