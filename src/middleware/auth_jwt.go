package middleware

import (
	"context"
	"log"
	"strings"

	"survey-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthJWT.
const (
	LocalUserID    = "userId"
	LocalEmail     = "email"
	LocalToken     = "token"
	LocalExpiresAt = "tokenExpiresAt"
)

type TokenParser interface {
	ParseJWT(tokenStr string) (*utils.JWTClaims, error)
}

type Blacklist interface {
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

// AuthJWT requires a valid, non-revoked bearer token and stores the caller
// identity in c.Locals. The identity is the only thing handlers trust.
func AuthJWT(parser TokenParser, blacklist Blacklist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := parser.ParseJWT(tokenStr)
		if err != nil {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		if blacklist != nil {
			revoked, err := blacklist.IsTokenBlacklisted(c.UserContext(), tokenStr)
			if err != nil {
				log.Printf("⚠️ blacklist check failed: %v", err)
			}
			if revoked {
				return utils.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked")
			}
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalToken, tokenStr)
		if claims.ExpiresAt != nil {
			c.Locals(LocalExpiresAt, claims.ExpiresAt.Time)
		}

		return c.Next()
	}
}

// UserID returns the authenticated caller, empty when there is none.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}
