// Package middleware provides request middleware: token authentication, logging, rate limiting, tracing and metrics.
package middleware

import (
	"context"

	"gamereviews/internal/auth"
	"gamereviews/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader carries the access token on protected requests.
const TokenHeader = "x-access-token"

// TokenVerifier decodes a raw access token into its claims.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// TokenRequired rejects requests without a valid access token. A missing
// header is "login required" (403); any token that fails verification is
// "invalid token" (401). On success the caller identity is stored in locals.
func TokenRequired(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(TokenHeader)
		if raw == "" {
			return models.NewLoginRequiredError()
		}

		claims, err := verifier.Verify(raw)
		if err != nil {
			return err
		}

		identity := claims.Identity()
		c.Locals(LocalIdentity, identity)
		c.SetUserContext(context.WithValue(c.UserContext(), UsernameKey, identity.Username))

		return c.Next()
	}
}

// IdentityFrom returns the caller identity set by TokenRequired.
func IdentityFrom(c *fiber.Ctx) (models.Identity, bool) {
	identity, ok := c.Locals(LocalIdentity).(models.Identity)
	return identity, ok
}
