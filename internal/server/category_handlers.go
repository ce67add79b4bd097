package server

import (
	"gamereviews/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories lists every category.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categorySvc.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// PostCategory creates a category (protected)
func (s *Server) PostCategory(c *fiber.Ctx) error {
	var req models.Category
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	category, err := s.categorySvc.CreateCategory(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"category": category})
}
