package repository

import (
	"context"

	"gamereviews/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, category models.Category) (*models.Category, error)
}

type categoryRepository struct {
	base
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{base: newBase(db, "categories")}
}

func (r *categoryRepository) List(ctx context.Context) (categories []models.Category, err error) {
	ctx, done := r.observe(ctx, "List")
	defer func() { done(err) }()

	categories = make([]models.Category, 0)
	_, err = r.scan(ctx, fixed(`SELECT slug, description FROM categories ORDER BY slug`), &categories)
	return categories, err
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (_ *models.Category, err error) {
	ctx, done := r.observe(ctx, "GetBySlug")
	defer func() { done(err) }()

	var category models.Category
	n, err := r.scan(ctx, fixed(`SELECT slug, description FROM categories WHERE slug = $1`, slug), &category)
	if err != nil {
		return nil, err
	}
	return CheckRows(n, &category, models.MsgCategoryNotFound)
}

func (r *categoryRepository) Create(ctx context.Context, category models.Category) (_ *models.Category, err error) {
	ctx, done := r.observe(ctx, "Create")
	defer func() { done(err) }()

	var created models.Category
	_, err = r.scan(ctx, fixed(
		`INSERT INTO categories (slug, description) VALUES ($1, $2) RETURNING slug, description`,
		category.Slug, category.Description,
	), &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
