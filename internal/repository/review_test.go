package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"gamereviews/internal/models"
	"gamereviews/internal/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var summaryColumns = []string{"review_id", "owner", "title", "designer", "category", "review_img_url", "votes", "created_at", "comment_count"}

func TestReviewRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	category := "dexterity"
	opts := query.ReviewListOptions{Category: &category, SortBy: "votes", Order: query.Asc, Page: query.Page{Limit: 10, Number: 1}}
	stmt := query.ReviewList(opts)
	created := time.Date(2021, 1, 18, 10, 1, 41, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(stmt.SQL)).
		WithArgs("dexterity", 10, 0).
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow(2, "philippaclaire9", "Jenga", "Leslie Scott", "dexterity", "https://example.com/jenga.png", 5, created, 3))

	reviews, err := repo.List(ctx, opts)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Jenga", reviews[0].Title)
	assert.Equal(t, 3, reviews[0].CommentCount)
	assert.Equal(t, 5, reviews[0].Votes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_List_EmptyIsNotNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)

	opts := query.ReviewListOptions{SortBy: "created_at", Order: query.Desc, Page: query.Page{Limit: 10, Number: 5}}
	mock.ExpectQuery(regexp.QuoteMeta(query.ReviewList(opts).SQL)).
		WithArgs(10, 40).
		WillReturnRows(sqlmock.NewRows(summaryColumns))

	reviews, err := repo.List(context.Background(), opts)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Count(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)

	opts := query.ReviewListOptions{Page: query.Page{Limit: 1, Number: 3}}
	mock.ExpectQuery(regexp.QuoteMeta(query.ReviewCount(opts).SQL)).
		WillReturnRows(sqlmock.NewRows([]string{"total_count"}).AddRow(13))

	total, err := repo.Count(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 13, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetByID(t *testing.T) {
	columns := []string{"review_id", "owner", "title", "review_body", "designer", "category", "review_img_url", "votes", "created_at", "comment_count"}

	tests := []struct {
		name         string
		id           int
		mockBehavior func(mock sqlmock.Sqlmock)
		expectedKind models.ErrorKind
		expectError  bool
	}{
		{
			name: "Success",
			id:   2,
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(query.ReviewByID)).
					WithArgs(2).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(2, "philippaclaire9", "Jenga", "Fiddly fun for all the family", "Leslie Scott", "dexterity", "u", 5, time.Now(), 3))
			},
		},
		{
			name: "Not Found",
			id:   999,
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(query.ReviewByID)).
					WithArgs(999).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectError:  true,
			expectedKind: models.KindNotFound,
		},
		{
			name: "Out of range id",
			id:   1 << 40,
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(query.ReviewByID)).
					WithArgs(1 << 40).
					WillReturnError(&pgconn.PgError{Code: "22003"})
			},
			expectError:  true,
			expectedKind: models.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewReviewRepository(db)
			tt.mockBehavior(mock)

			review, err := repo.GetByID(context.Background(), tt.id)
			if tt.expectError {
				assert.Nil(t, review)
				assert.True(t, models.IsKind(err, tt.expectedKind), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Jenga", review.Title)
				assert.Equal(t, 3, review.CommentCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)

	review := models.NewReview{Owner: "mallionaire", Title: "Catan", ReviewBody: "Trade!", Designer: "Klaus Teuber", Category: "euro game"}
	stmt := query.InsertReview(review)

	mock.ExpectQuery(regexp.QuoteMeta(stmt.SQL)).
		WithArgs("mallionaire", "Catan", "Trade!", "Klaus Teuber", "euro game").
		WillReturnRows(sqlmock.NewRows([]string{"review_id"}).AddRow(14))

	id, err := repo.Create(context.Background(), review)
	require.NoError(t, err)
	assert.Equal(t, 14, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_DanglingCategory(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)

	review := models.NewReview{Owner: "mallionaire", Title: "Catan", ReviewBody: "Trade!", Designer: "Klaus Teuber", Category: "nope"}
	mock.ExpectQuery(regexp.QuoteMeta(query.InsertReview(review).SQL)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Create(context.Background(), review)
	assert.True(t, models.IsKind(err, models.KindBadRequest), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_IncrementVotes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reviews SET votes = votes + $1 WHERE review_id = $2`)).
		WithArgs(2, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reviews SET votes = votes + $1 WHERE review_id = $2`)).
		WithArgs(-1, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.IncrementVotes(ctx, 2, 2))
	err := repo.IncrementVotes(ctx, 404, -1)
	assert.True(t, models.IsKind(err, models.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reviews WHERE review_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reviews WHERE review_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(ctx, 1))
	assert.True(t, models.IsKind(repo.Delete(ctx, 1), models.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
