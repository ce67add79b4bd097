package server

import (
	"gamereviews/internal/models"
	"gamereviews/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists the public user records.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userSvc.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUser returns one public user record.
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.userSvc.GetUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// PostUser signs up a new user.
func (s *Server) PostUser(c *fiber.Ctx) error {
	var req models.NewUser
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	user, err := s.authSvc.SignUp(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// Login exchanges credentials for a token.
func (s *Server) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	token, err := s.authSvc.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}
