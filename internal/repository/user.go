package repository

import (
	"context"
	"net/http"

	"gamereviews/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	ListByAccessLevel(ctx context.Context, level string) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetCredentials rejects an unknown username with the generic bad-credentials error.
	GetCredentials(ctx context.Context, username string) (*models.UserCredentials, error)
	Create(ctx context.Context, user models.UserCredentials) (*models.User, error)
	SetAccessLevel(ctx context.Context, username, level string) error
}

type userRepository struct {
	base
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{base: newBase(db, "users")}
}

func (r *userRepository) List(ctx context.Context) (users []models.User, err error) {
	ctx, done := r.observe(ctx, "List")
	defer func() { done(err) }()

	users = make([]models.User, 0)
	_, err = r.scan(ctx, fixed(`SELECT username, name, avatar_url FROM users ORDER BY username`), &users)
	return users, err
}

func (r *userRepository) ListByAccessLevel(ctx context.Context, level string) (users []models.User, err error) {
	ctx, done := r.observe(ctx, "ListByAccessLevel")
	defer func() { done(err) }()

	users = make([]models.User, 0)
	_, err = r.scan(ctx, fixed(
		`SELECT username, name, avatar_url FROM users WHERE access_level = $1 ORDER BY username`, level,
	), &users)
	return users, err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (_ *models.User, err error) {
	ctx, done := r.observe(ctx, "GetByUsername")
	defer func() { done(err) }()

	var user models.User
	n, err := r.scan(ctx, fixed(`SELECT username, name, avatar_url FROM users WHERE username = $1`, username), &user)
	if err != nil {
		return nil, err
	}
	return CheckRows(n, &user, models.MsgUsernameNotFound)
}

func (r *userRepository) GetCredentials(ctx context.Context, username string) (_ *models.UserCredentials, err error) {
	ctx, done := r.observe(ctx, "GetCredentials")
	defer func() { done(err) }()

	var creds models.UserCredentials
	n, err := r.scan(ctx, fixed(
		`SELECT username, name, avatar_url, password_hash, access_level FROM users WHERE username = $1`, username,
	), &creds)
	if err != nil {
		return nil, err
	}
	return CheckRows(n, &creds, models.MsgBadCredentials, http.StatusUnauthorized)
}

func (r *userRepository) Create(ctx context.Context, user models.UserCredentials) (_ *models.User, err error) {
	ctx, done := r.observe(ctx, "Create")
	defer func() { done(err) }()

	level := user.AccessLevel
	if level == "" {
		level = models.AccessLevelUser
	}

	var created models.User
	_, err = r.scan(ctx, fixed(
		`INSERT INTO users (username, name, avatar_url, password_hash, access_level) VALUES ($1, $2, $3, $4, $5) RETURNING username, name, avatar_url`,
		user.Username, user.Name, user.AvatarURL, user.PasswordHash, level,
	), &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *userRepository) SetAccessLevel(ctx context.Context, username, level string) (err error) {
	ctx, done := r.observe(ctx, "SetAccessLevel")
	defer func() { done(err) }()

	n, err := r.exec(ctx, fixed(`UPDATE users SET access_level = $1 WHERE username = $2`, level, username))
	if err != nil {
		return err
	}
	_, err = CheckRows(n, struct{}{}, models.MsgUsernameNotFound)
	return err
}
