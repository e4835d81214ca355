package middleware

import (
	"strings"

	"retail_map/internal/common"
	"retail_map/internal/global"
	"retail_map/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// RoleAdmin là vai trò quản trị viên, RoleUser là người dùng thường.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AuthMiddleware xác thực JWT từ header Authorization (Bearer token).
// Token hợp lệ thì lưu userId/email/role vào Locals cho handler phía sau.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}

		claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, parts[1])
		if err != nil {
			return HandleErrorResponse(c, err)
		}

		c.Locals("userId", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RequireAdmin chặn request khi role trong token không phải admin.
// Phải đặt sau AuthMiddleware trong chain.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != RoleAdmin {
			return HandleErrorResponse(c, common.ErrForbidden)
		}
		return c.Next()
	}
}
