// Package router đăng ký các route thuộc domain auth: đăng ký/đăng nhập,
// thông tin user hiện tại và quản trị tài khoản.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "retail_map/internal/api/auth/handler"
	"retail_map/internal/api/middleware"
	apirouter "retail_map/internal/api/router"
)

// Register đăng ký tất cả route auth lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("create auth handler: %w", err)
	}

	authMW := []fiber.Handler{middleware.AuthMiddleware()}
	adminMW := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireAdmin()}

	// Public
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "POST", "/register", nil, authHandler.Register)
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "POST", "/login", nil, authHandler.Login)

	// Đã đăng nhập
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "GET", "/me", authMW, authHandler.Me)

	// Admin
	apirouter.RegisterRouteWithMiddleware(api, "/admin/users", "GET", "", adminMW, authHandler.ListUsers)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/users", "PUT", "/:id/status", adminMW, authHandler.UpdateStatus)

	return nil
}
