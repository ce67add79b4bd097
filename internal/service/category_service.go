package service

import (
	"context"
	"strings"

	"gamereviews/internal/models"
	"gamereviews/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, in models.Category) (*models.Category, error) {
	if strings.TrimSpace(in.Slug) == "" {
		return nil, models.NewBadRequestError()
	}
	return s.categoryRepo.Create(ctx, in)
}
