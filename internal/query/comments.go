package query

const commentListSelect = `SELECT comment_id, review_id, author, body, votes, created_at FROM comments`

// CommentList renders one page of a review's comments, newest first.
func CommentList(reviewID int, page Page) Statement {
	return NewBuilder(commentListSelect).
		Add("WHERE review_id = ?", reviewID).
		Add("ORDER BY created_at DESC, comment_id DESC").
		Add("LIMIT ? OFFSET ?", page.Limit, page.Offset()).
		Build()
}
