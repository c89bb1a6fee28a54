package jwt

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	localUserID  = "userId"
	localIsAdmin = "isAdmin"
	localTokenID = "tokenId"
	localExpires = "tokenExp"
)

// ExtractToken accepts "Token <jwt>", "Bearer <jwt>" and a bare "<jwt>".
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if i := strings.IndexByte(header, ' '); i > 0 {
		scheme := header[:i]
		if strings.EqualFold(scheme, "Token") || strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(header[i+1:])
		}
	}
	return header
}

// NewAuthMiddleware returns a Fiber middleware that requires a valid token.
// On success sets user id (subject) into c.Locals("userId").
func NewAuthMiddleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		tokenStr := ExtractToken(authHeader)
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := v.Parse(c.Context(), tokenStr)
		if err != nil {
			return unauthorized(c, err)
		}
		setLocals(c, claims)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware identifies the caller when a valid token is
// present and lets anonymous requests through otherwise.
func NewOptionalAuthMiddleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := ExtractToken(c.Get("Authorization"))
		if tokenStr != "" {
			if claims, err := v.Parse(c.Context(), tokenStr); err == nil {
				setLocals(c, claims)
			}
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrRevoked):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "token has been revoked"})
	case errors.Is(err, ErrInvalidToken):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
	default:
		log.Printf("auth middleware: %v", err)
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"message": "authentication is temporarily unavailable"})
	}
}

func setLocals(c *fiber.Ctx, claims *Claims) {
	id, _ := claims.UserID()
	c.Locals(localUserID, id)
	c.Locals(localTokenID, claims.ID)
	if claims.ExpiresAt != nil {
		c.Locals(localExpires, claims.ExpiresAt.Time)
	}
	if claims.IsAdmin {
		c.Locals(localIsAdmin, true)
	}
}

// UserID returns the authenticated user id, if any.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(localUserID).(int64)
	return id, ok && id > 0
}

func IsAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals(localIsAdmin).(bool)
	return v
}

// TokenID returns the jti of the current token and its expiry.
func TokenID(c *fiber.Ctx) (string, time.Time) {
	id, _ := c.Locals(localTokenID).(string)
	exp, _ := c.Locals(localExpires).(time.Time)
	return id, exp
}
