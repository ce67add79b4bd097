// Package auth issues and verifies access tokens, hashes passwords and decides who may modify owned entities.
package auth

import (
	"errors"
	"time"

	"gamereviews/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the signed token payload. It carries the public user fields and the role, never the password hash.
type Claims struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	AccessLevel string `json:"accessLevel,omitempty"`
	jwt.RegisteredClaims
}

// Identity returns the caller identity encoded in the claims.
// A token without a role claim is treated as an ordinary user.
func (c *Claims) Identity() models.Identity {
	level := c.AccessLevel
	if level == "" {
		level = models.AccessLevelUser
	}
	return models.Identity{Username: c.Username, AccessLevel: level}
}

// TokenIssuer mints and verifies HS256 tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer.
func NewTokenIssuer(secret, issuer string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a token for user with the given role.
func (t *TokenIssuer) Issue(user models.User, accessLevel string) (string, error) {
	now := t.now()
	claims := Claims{
		Username:    user.Username,
		Name:        user.Name,
		AvatarURL:   user.AvatarURL,
		AccessLevel: accessLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature, expiry and issuer of raw. Every failure, whether
// tampered, expired or malformed, is reported as the same invalid-token error.
func (t *TokenIssuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, models.NewInvalidTokenError(err)
	}
	if !token.Valid {
		return nil, models.NewInvalidTokenError(nil)
	}
	return claims, nil
}
