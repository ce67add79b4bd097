package service

import (
	"context"

	"gamereviews/internal/models"
	"gamereviews/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// SetAccessLevel changes a user's role. It takes effect at their next login.
func (s *UserService) SetAccessLevel(ctx context.Context, username, level string) error {
	if level != models.AccessLevelUser && level != models.AccessLevelAdmin {
		return models.NewBadRequestError()
	}
	return s.userRepo.SetAccessLevel(ctx, username, level)
}

func (s *UserService) ListAdmins(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListByAccessLevel(ctx, models.AccessLevelAdmin)
}
