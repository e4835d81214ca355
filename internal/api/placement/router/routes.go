// Package router đăng ký các route thuộc domain điểm bán: bulk-create,
// cập nhật, xóa và danh sách brand-stores.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"retail_map/internal/api/middleware"
	placementhdl "retail_map/internal/api/placement/handler"
	apirouter "retail_map/internal/api/router"
)

// Register đăng ký tất cả route điểm bán lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	brandStoreHandler, err := placementhdl.NewBrandStoreHandler()
	if err != nil {
		return fmt.Errorf("create brand store handler: %w", err)
	}

	adminMW := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireAdmin()}

	apirouter.RegisterRouteWithMiddleware(api, "/admin/brand-stores", "GET", "", adminMW, brandStoreHandler.List)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/brand-stores", "GET", "/:id", adminMW, brandStoreHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/brand-stores", "POST", "", adminMW, brandStoreHandler.BulkCreate)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/brand-stores", "PUT", "/:id", adminMW, brandStoreHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/brand-stores", "DELETE", "/:id", adminMW, brandStoreHandler.DeleteById)

	return nil
}
