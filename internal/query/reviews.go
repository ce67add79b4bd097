package query

import (
	"strings"

	"gamereviews/internal/models"
)

const reviewListSelect = `SELECT reviews.review_id, reviews.owner, reviews.title, reviews.designer,
reviews.category, reviews.review_img_url, reviews.votes, reviews.created_at,
CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count
FROM reviews
LEFT JOIN comments ON comments.review_id = reviews.review_id`

const reviewCountSelect = `SELECT CAST(COUNT(reviews.review_id) AS INTEGER) AS total_count FROM reviews`

// ReviewByID reads one review with its derived comment count.
const ReviewByID = `SELECT reviews.review_id, reviews.owner, reviews.title, reviews.review_body,
reviews.designer, reviews.category, reviews.review_img_url, reviews.votes, reviews.created_at,
CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count
FROM reviews
LEFT JOIN comments ON comments.review_id = reviews.review_id
WHERE reviews.review_id = $1
GROUP BY reviews.review_id`

// ReviewList renders the page query for a review listing. The optional category
// filter is always the first parameter, followed by LIMIT and OFFSET.
func ReviewList(opts ReviewListOptions) Statement {
	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = sortColumns[DefaultSortBy]
	}
	order := opts.Order
	if order != Asc {
		order = Desc
	}

	b := NewBuilder(reviewListSelect)
	if opts.Category != nil {
		b.Add("WHERE reviews.category = ?", *opts.Category)
	}
	b.Add("GROUP BY reviews.review_id")
	b.Add("ORDER BY " + column + " " + string(order) + ", reviews.review_id " + string(order))
	b.Add("LIMIT ? OFFSET ?", opts.Limit, opts.Offset())
	return b.Build()
}

// ReviewCount renders the total-count query mirroring ReviewList's filter but not its page.
func ReviewCount(opts ReviewListOptions) Statement {
	b := NewBuilder(reviewCountSelect)
	if opts.Category != nil {
		b.Add("WHERE reviews.category = ?", *opts.Category)
	}
	return b.Build()
}

// InsertReview renders the insert for a new review. When no image URL is
// supplied the column is left out so the store default applies.
func InsertReview(r models.NewReview) Statement {
	columns := []string{"owner", "title", "review_body", "designer", "category"}
	values := []any{r.Owner, r.Title, r.ReviewBody, r.Designer, r.Category}
	if r.ReviewImgURL != nil {
		columns = append(columns, "review_img_url")
		values = append(values, *r.ReviewImgURL)
	}

	b := NewBuilder("INSERT INTO reviews (" + strings.Join(columns, ", ") + ")")
	b.Add("VALUES ("+Placeholders(len(values))+")", values...)
	b.Add("RETURNING review_id")
	return b.Build()
}
