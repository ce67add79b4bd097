package query

import (
	"strconv"
	"strings"

	"gamereviews/internal/models"
)

const (
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 10
	// DefaultPage is the first page.
	DefaultPage = 1
	// DefaultSortBy is the sort key used when none (or an unknown one) is requested.
	DefaultSortBy = "created_at"
)

// Direction is a validated ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// sortColumns is the allow-list of sortable keys and the exact SQL each one
// renders to. comment_count orders on the derived alias; everything else is
// qualified to reviews to avoid ambiguity with the joined comments.
var sortColumns = map[string]string{
	"title":          "reviews.title",
	"designer":       "reviews.designer",
	"owner":          "reviews.owner",
	"review_img_url": "reviews.review_img_url",
	"category":       "reviews.category",
	"comment_count":  "comment_count",
	"votes":          "reviews.votes",
	"created_at":     "reviews.created_at",
}

// RawListParams holds listing parameters exactly as the client sent them.
// An empty string means the parameter was absent.
type RawListParams struct {
	Category *string
	SortBy   string
	Order    string
	Limit    string
	Page     string
}

// Page is a validated 1-based page request.
type Page struct {
	Limit  int
	Number int
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// ReviewListOptions is the fully defaulted configuration for a review listing.
type ReviewListOptions struct {
	Category *string
	SortBy   string
	Order    Direction
	Page
}

// ParsePage validates limit and p. Absent values take defaults; values that are
// not positive integers are rejected as invalid input.
func ParsePage(limit, page string) (Page, error) {
	l, err := positiveInt(limit, DefaultLimit)
	if err != nil {
		return Page{}, err
	}
	p, err := positiveInt(page, DefaultPage)
	if err != nil {
		return Page{}, err
	}
	return Page{Limit: l, Number: p}, nil
}

// ParseReviewListOptions validates and defaults raw listing parameters.
// Unknown sort_by and order values silently fall back to created_at and DESC.
func ParseReviewListOptions(raw RawListParams) (ReviewListOptions, error) {
	page, err := ParsePage(raw.Limit, raw.Page)
	if err != nil {
		return ReviewListOptions{}, err
	}
	return ReviewListOptions{
		Category: raw.Category,
		SortBy:   NormalizeSortBy(raw.SortBy),
		Order:    NormalizeOrder(raw.Order),
		Page:     page,
	}, nil
}

// NormalizeSortBy returns sortBy if it is allow-listed, otherwise DefaultSortBy.
func NormalizeSortBy(sortBy string) string {
	key := strings.ToLower(strings.TrimSpace(sortBy))
	if _, ok := sortColumns[key]; ok {
		return key
	}
	return DefaultSortBy
}

// NormalizeOrder returns ASC or DESC; anything unrecognized becomes DESC.
func NormalizeOrder(order string) Direction {
	if strings.EqualFold(strings.TrimSpace(order), "asc") {
		return Asc
	}
	return Desc
}

func positiveInt(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, models.NewInvalidInputError()
	}
	return n, nil
}
