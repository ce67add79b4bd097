package query

import (
	"testing"

	"gamereviews/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuilder_NumbersPlaceholdersInOrder(t *testing.T) {
	stmt := NewBuilder("SELECT * FROM t").
		Add("WHERE a = ? AND b = ?", "x", 2).
		Add("LIMIT ? OFFSET ?", 10, 20).
		Build()

	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = $2 LIMIT $3 OFFSET $4", stmt.SQL)
	assert.Equal(t, []any{"x", 2, 10, 20}, stmt.Args)
}

func TestBuilder_PanicsOnArgMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder("SELECT 1").Add("WHERE a = ?")
	})
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "?", Placeholders(1))
	assert.Equal(t, "?, ?, ?", Placeholders(3))
}

func TestParseReviewListOptions(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawListParams
		want    ReviewListOptions
		wantErr bool
	}{
		{
			name: "defaults",
			raw:  RawListParams{},
			want: ReviewListOptions{SortBy: "created_at", Order: Desc, Page: Page{Limit: 10, Number: 1}},
		},
		{
			name: "explicit values",
			raw:  RawListParams{Category: strPtr("dexterity"), SortBy: "votes", Order: "ASC", Limit: "5", Page: "2"},
			want: ReviewListOptions{Category: strPtr("dexterity"), SortBy: "votes", Order: Asc, Page: Page{Limit: 5, Number: 2}},
		},
		{
			name: "unknown sort and order fall back",
			raw:  RawListParams{SortBy: "review_body; DROP TABLE reviews", Order: "sideways"},
			want: ReviewListOptions{SortBy: "created_at", Order: Desc, Page: Page{Limit: 10, Number: 1}},
		},
		{
			name: "order is case insensitive",
			raw:  RawListParams{Order: "aSc"},
			want: ReviewListOptions{SortBy: "created_at", Order: Asc, Page: Page{Limit: 10, Number: 1}},
		},
		{name: "non numeric limit", raw: RawListParams{Limit: "ten"}, wantErr: true},
		{name: "zero limit", raw: RawListParams{Limit: "0"}, wantErr: true},
		{name: "negative page", raw: RawListParams{Page: "-1"}, wantErr: true},
		{name: "fractional page", raw: RawListParams{Page: "1.5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReviewListOptions(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, models.IsKind(err, models.KindInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Limit: 10, Number: 1}.Offset())
	assert.Equal(t, 20, Page{Limit: 10, Number: 3}.Offset())
}

func TestReviewList(t *testing.T) {
	t.Run("without category", func(t *testing.T) {
		stmt := ReviewList(ReviewListOptions{SortBy: "title", Order: Asc, Page: Page{Limit: 10, Number: 2}})

		assert.NotContains(t, stmt.SQL, "WHERE")
		assert.Contains(t, stmt.SQL, "GROUP BY reviews.review_id ORDER BY reviews.title ASC, reviews.review_id ASC LIMIT $1 OFFSET $2")
		assert.Equal(t, []any{10, 10}, stmt.Args)
	})

	t.Run("category is the first parameter", func(t *testing.T) {
		stmt := ReviewList(ReviewListOptions{Category: strPtr("euro game"), SortBy: "comment_count", Order: Desc, Page: Page{Limit: 5, Number: 1}})

		assert.Contains(t, stmt.SQL, "WHERE reviews.category = $1 GROUP BY")
		assert.Contains(t, stmt.SQL, "ORDER BY comment_count DESC, reviews.review_id DESC LIMIT $2 OFFSET $3")
		assert.Equal(t, []any{"euro game", 5, 0}, stmt.Args)
		assert.NotContains(t, stmt.SQL, "euro game")
	})

	t.Run("unlisted sort key never reaches sql", func(t *testing.T) {
		stmt := ReviewList(ReviewListOptions{SortBy: "1; DROP TABLE users", Order: "garbage", Page: Page{Limit: 1, Number: 1}})

		assert.Contains(t, stmt.SQL, "ORDER BY reviews.created_at DESC")
		assert.NotContains(t, stmt.SQL, "DROP")
	})
}

func TestReviewCount(t *testing.T) {
	stmt := ReviewCount(ReviewListOptions{Page: Page{Limit: 3, Number: 4}})
	assert.Equal(t, reviewCountSelect, stmt.SQL)
	assert.Empty(t, stmt.Args)

	stmt = ReviewCount(ReviewListOptions{Category: strPtr("dexterity"), Page: Page{Limit: 3, Number: 4}})
	assert.Equal(t, reviewCountSelect+" WHERE reviews.category = $1", stmt.SQL)
	assert.Equal(t, []any{"dexterity"}, stmt.Args)
}

func TestInsertReview(t *testing.T) {
	review := models.NewReview{
		Owner:      "mallionaire",
		Title:      "Catan",
		ReviewBody: "Trade sheep.",
		Designer:   "Klaus Teuber",
		Category:   "euro game",
	}

	stmt := InsertReview(review)
	assert.Equal(t,
		"INSERT INTO reviews (owner, title, review_body, designer, category) VALUES ($1, $2, $3, $4, $5) RETURNING review_id",
		stmt.SQL)
	assert.Equal(t, []any{"mallionaire", "Catan", "Trade sheep.", "Klaus Teuber", "euro game"}, stmt.Args)

	review.ReviewImgURL = strPtr("https://example.com/catan.png")
	stmt = InsertReview(review)
	assert.Equal(t,
		"INSERT INTO reviews (owner, title, review_body, designer, category, review_img_url) VALUES ($1, $2, $3, $4, $5, $6) RETURNING review_id",
		stmt.SQL)
	assert.Len(t, stmt.Args, 6)
	assert.Equal(t, "https://example.com/catan.png", stmt.Args[5])
}

func TestCommentList(t *testing.T) {
	stmt := CommentList(2, Page{Limit: 2, Number: 2})
	assert.Equal(t,
		commentListSelect+" WHERE review_id = $1 ORDER BY created_at DESC, comment_id DESC LIMIT $2 OFFSET $3",
		stmt.SQL)
	assert.Equal(t, []any{2, 2, 2}, stmt.Args)
}
