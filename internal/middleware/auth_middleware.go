package middleware

import (
	"strings"

	"go-stock-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the opaque token from the Authorization header and
// sets the authenticated user in the request context.
func RequireAuth(tokenRepo repository.TokenRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract key from "Token <key>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "token" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Token <key>"})
		}

		token, err := tokenRepo.FindByKey(parts[1])
		if err != nil || token.User == nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}

		// Set user info in context for downstream handlers
		c.Locals("user_id", token.UserID)
		c.Locals("username", token.User.Username)

		return c.Next()
	}
}
