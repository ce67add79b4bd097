package server

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gamereviews/internal/models"
	"gamereviews/internal/query"

	"github.com/gofiber/fiber/v2"
)

// parseID reads an integer route parameter. Non-integers are invalid input;
// integers that match nothing are left for the store to report as not found.
func parseID(c *fiber.Ctx, param string) (int, error) {
	id, err := strconv.Atoi(c.Params(param))
	if err != nil {
		return 0, models.NewInvalidInputError()
	}
	return id, nil
}

// parsePage reads the limit and p query parameters.
func parsePage(c *fiber.Ctx) (query.Page, error) {
	return query.ParsePage(c.Query("limit"), c.Query("p"))
}

// decodeBody unmarshals the JSON request body. A malformed body or a field of
// the wrong JSON type is a bad request.
func decodeBody(c *fiber.Ctx, v any) error {
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return models.NewBadRequestError()
	}
	return nil
}

// parseIncVotes extracts inc_votes. Absent or null is a bad request; anything
// other than an integer JSON number is invalid input.
func parseIncVotes(body []byte) (int, error) {
	var req struct {
		IncVotes json.RawMessage `json:"inc_votes"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return 0, models.NewBadRequestError()
	}
	if len(req.IncVotes) == 0 || string(req.IncVotes) == "null" {
		return 0, models.NewBadRequestError()
	}

	dec := json.NewDecoder(bytes.NewReader(req.IncVotes))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, models.NewInvalidInputError()
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, models.NewInvalidInputError()
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return 0, models.NewInvalidInputError()
	}
	return n, nil
}

func listParams(c *fiber.Ctx) query.RawListParams {
	raw := query.RawListParams{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	}
	if c.Context().QueryArgs().Has("category") {
		category := c.Query("category")
		raw.Category = &category
	}
	return raw
}
