package server

import (
	"gamereviews/internal/middleware"
	"gamereviews/internal/models"
	"gamereviews/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReviewComments returns a page of a review's comments, newest first.
func (s *Server) GetReviewComments(c *fiber.Ctx) error {
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	comments, err := s.commentSvc.ListComments(c.UserContext(), reviewID, page)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// PostComment adds a comment to a review (protected)
func (s *Server) PostComment(c *fiber.Ctx) error {
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return err
	}
	var req models.NewComment
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	comment, err := s.commentSvc.CreateComment(c.UserContext(), reviewID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// PatchCommentVotes applies inc_votes to a comment (protected)
func (s *Server) PatchCommentVotes(c *fiber.Ctx) error {
	id, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}
	delta, err := parseIncVotes(c.Body())
	if err != nil {
		return err
	}

	comment, err := s.commentSvc.VoteComment(c.UserContext(), id, delta)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment removes a comment (author or admin)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return models.NewLoginRequiredError()
	}

	if err := s.commentSvc.DeleteComment(c.UserContext(), service.DeleteInput{Caller: caller, ID: id}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
