package service

import (
	"context"
	"testing"

	"gamereviews/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_SetAccessLevel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotLevel string
	users := noopUserRepo()
	users.setAccessLevelFn = func(_ context.Context, _, level string) error {
		gotLevel = level
		return nil
	}
	svc := NewUserService(users)

	require.NoError(t, svc.SetAccessLevel(ctx, "bainesface", models.AccessLevelAdmin))
	assert.Equal(t, models.AccessLevelAdmin, gotLevel)

	err := svc.SetAccessLevel(ctx, "bainesface", "root")
	assertKind(t, err, models.KindBadRequest)
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
		return nil, models.NewNotFoundError(models.MsgUsernameNotFound)
	}
	svc := NewUserService(users)
	_, err := svc.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.NewNotFoundError(models.MsgUsernameNotFound))
}

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewCategoryService(noopCategoryRepo())

	_, err := svc.CreateCategory(ctx, models.Category{Description: "no slug"})
	assertKind(t, err, models.KindBadRequest)

	category, err := svc.CreateCategory(ctx, models.Category{Slug: "deck building", Description: "cards"})
	require.NoError(t, err)
	assert.Equal(t, "deck building", category.Slug)
}
