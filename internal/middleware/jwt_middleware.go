package middleware

import (
	"log"
	"strings"

	"panchmev/internal/models"
	"panchmev/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie the session token lives in. The token is
// also accepted as a bearer header for non-browser clients.
const SessionCookie = "session"

// Locals keys set by the guards for downstream handlers.
const (
	LocalUser   = "user"
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// sessionUser resolves the request's session to a user row. Any failure
// (missing token, bad signature, expired, user gone) is treated as "no
// session" rather than an error.
func sessionUser(c *fiber.Ctx, authService *services.AuthService) *models.User {
	token := c.Cookies(SessionCookie)
	if token == "" {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		return nil
	}

	user, err := authService.SessionUser(token)
	if err != nil {
		log.Printf("Session rejected: %v", err)
		return nil
	}
	return user
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	if !role.Valid() {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func stashUser(c *fiber.Ctx, user *models.User) {
	c.Locals(LocalUser, user)
	c.Locals(LocalUserID, user.ID)
	c.Locals(LocalRole, user.Role)
}

// RequireRoles guards an API route: 401 without a session, 403 when the
// role is outside the allowed set.
func RequireRoles(authService *services.AuthService, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := sessionUser(c, authService)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}
		if !roleAllowed(user.Role, roles) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Insufficient permissions",
			})
		}
		stashUser(c, user)
		return c.Next()
	}
}

// PageGuard guards a browser page route: no session redirects to the
// login page, a disallowed role redirects home. The authorization
// failure is silent, it never renders as an error.
func PageGuard(authService *services.AuthService, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := sessionUser(c, authService)
		if user == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if !roleAllowed(user.Role, roles) {
			return c.Redirect("/", fiber.StatusFound)
		}
		stashUser(c, user)
		return c.Next()
	}
}

// RedirectAuthenticated bounces an already signed-in user away from the
// login and signup pages to their role's dashboard.
func RedirectAuthenticated(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user := sessionUser(c, authService); user != nil {
			if user.Role == models.RoleAdmin {
				return c.Redirect("/admin-dashboard", fiber.StatusFound)
			}
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Next()
	}
}
