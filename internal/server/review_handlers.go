package server

import (
	"gamereviews/internal/middleware"
	"gamereviews/internal/models"
	"gamereviews/internal/query"
	"gamereviews/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReviews returns a filtered, sorted page of reviews with the filtered total.
func (s *Server) GetReviews(c *fiber.Ctx) error {
	opts, err := query.ParseReviewListOptions(listParams(c))
	if err != nil {
		return err
	}

	page, err := s.reviewSvc.ListReviews(c.UserContext(), opts)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// GetReview returns one review with its comment count.
func (s *Server) GetReview(c *fiber.Ctx) error {
	id, err := parseID(c, "review_id")
	if err != nil {
		return err
	}

	review, err := s.reviewSvc.GetReview(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"review": review})
}

// PostReview creates a review (protected)
func (s *Server) PostReview(c *fiber.Ctx) error {
	var req models.NewReview
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	review, err := s.reviewSvc.CreateReview(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"review": review})
}

// PatchReviewVotes applies inc_votes to a review (protected)
func (s *Server) PatchReviewVotes(c *fiber.Ctx) error {
	id, err := parseID(c, "review_id")
	if err != nil {
		return err
	}
	delta, err := parseIncVotes(c.Body())
	if err != nil {
		return err
	}

	review, err := s.reviewSvc.VoteReview(c.UserContext(), id, delta)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"review": review})
}

// DeleteReview removes a review and its comments (owner or admin)
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c, "review_id")
	if err != nil {
		return err
	}
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return models.NewLoginRequiredError()
	}

	if err := s.reviewSvc.DeleteReview(c.UserContext(), service.DeleteInput{Caller: caller, ID: id}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
