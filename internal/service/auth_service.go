package service

import (
	"context"
	"log/slog"

	"gamereviews/internal/middleware"
	"gamereviews/internal/models"
	"gamereviews/internal/observability"
	"gamereviews/internal/repository"
)

// PasswordHasher computes and checks irreversible password hashes.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) (bool, error)
}

// TokenIssuer mints access tokens.
type TokenIssuer interface {
	Issue(user models.User, accessLevel string) (string, error)
}

type AuthService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// SignUp stores a new user with a hashed password and returns the public record.
func (s *AuthService) SignUp(ctx context.Context, in models.NewUser) (*models.User, error) {
	if in.Username == "" || in.Name == "" || in.Password == nil || *in.Password == "" {
		return nil, models.NewBadRequestError()
	}

	hash, err := s.hasher.Hash(ctx, *in.Password)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(ctx, models.UserCredentials{
		User: models.User{
			Username:  in.Username,
			Name:      in.Name,
			AvatarURL: in.AvatarURL,
		},
		PasswordHash: hash,
		AccessLevel:  models.AccessLevelUser,
	})
}

// Login checks the credentials and returns a signed token. Unknown usernames
// and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	creds, err := s.userRepo.GetCredentials(ctx, in.Username)
	if err != nil {
		recordLoginFailure(err)
		return "", err
	}

	ok, err := s.hasher.Compare(ctx, creds.PasswordHash, in.Password)
	if err != nil {
		observability.RecordLogin(observability.LoginError)
		return "", err
	}
	if !ok {
		observability.RecordLogin(observability.LoginRejected)
		return "", models.NewBadCredentialsError()
	}

	level := creds.AccessLevel
	if level == "" {
		level = models.AccessLevelUser
	}
	token, err := s.tokens.Issue(creds.User, level)
	if err != nil {
		observability.RecordLogin(observability.LoginError)
		return "", err
	}

	observability.RecordLogin(observability.LoginSuccess)
	middleware.Logger.InfoContext(ctx, "user logged in", slog.String("username", creds.Username))
	return token, nil
}

func recordLoginFailure(err error) {
	if models.IsKind(err, models.KindUnauthenticated) {
		observability.RecordLogin(observability.LoginRejected)
		return
	}
	observability.RecordLogin(observability.LoginError)
}
