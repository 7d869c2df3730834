package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/taskboard/pkg/auth"
)

// userLocalKey is where the middleware stores the resolved auth.User.
const userLocalKey = "currentUser"

// CurrentUser returns the authenticated user injected by the middleware.
// The bool is false on routes that never passed through it.
func CurrentUser(c *fiber.Ctx) (auth.User, bool) {
	user, ok := c.Locals(userLocalKey).(auth.User)
	return user, ok
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT
// (HS256) and resolves the subject against the user repository, so a
// still-valid token for a deleted account is rejected. On success the
// full auth.User is stored in the request locals.
//
// Every failure sub-case (missing header, malformed token, expired
// token, unknown subject) answers with the same 401 body.
func NewAuthMiddleware(tokens *Generator, users auth.UserRepository) fiber.Handler {
	unauthenticated := func(c *fiber.Ctx) error {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "unauthenticated"})
	}
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c)
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		var tokenStr string
		if strings.Contains(authHeader, " ") {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			} else {
				tokenStr = strings.TrimSpace(authHeader)
			}
		} else {
			tokenStr = strings.TrimSpace(authHeader)
		}
		if tokenStr == "" {
			return unauthenticated(c)
		}

		subject, err := tokens.Verify(tokenStr)
		if err != nil {
			return unauthenticated(c)
		}
		user, err := users.GetByID(c.Context(), subject)
		if err != nil {
			return unauthenticated(c)
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}
