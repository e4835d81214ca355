// Package router đăng ký các route upload file (cần đăng nhập).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"retail_map/internal/api/middleware"
	apirouter "retail_map/internal/api/router"
	uploadhdl "retail_map/internal/api/upload/handler"
)

// Register đăng ký tất cả route upload lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	uploadHandler, err := uploadhdl.NewUploadHandler()
	if err != nil {
		return fmt.Errorf("create upload handler: %w", err)
	}

	authMW := []fiber.Handler{middleware.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(api, "/upload", "POST", "/image", authMW, uploadHandler.UploadImage)
	apirouter.RegisterRouteWithMiddleware(api, "/upload", "POST", "/delete", authMW, uploadHandler.DeleteImage)

	return nil
}
