// Package router đăng ký các route thuộc domain danh mục: Brand (CRUD admin)
// và Mall (CRUD + danh sách brand trong mall).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "retail_map/internal/api/catalog/handler"
	"retail_map/internal/api/middleware"
	apirouter "retail_map/internal/api/router"
)

// Register đăng ký tất cả route danh mục lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	brandHandler, err := cataloghdl.NewBrandHandler()
	if err != nil {
		return fmt.Errorf("create brand handler: %w", err)
	}
	mallHandler, err := cataloghdl.NewMallHandler()
	if err != nil {
		return fmt.Errorf("create mall handler: %w", err)
	}

	authMW := []fiber.Handler{middleware.AuthMiddleware()}
	adminMW := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireAdmin()}

	r.RegisterCRUDRoutes(api, "/admin/brands", brandHandler, apirouter.ReadWriteConfig, adminMW, adminMW)

	// Mall giữ route shape gốc: /api/mall thay vì /api/admin/malls
	apirouter.RegisterRouteWithMiddleware(api, "/mall", "GET", "", authMW, mallHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(api, "/mall", "GET", "/:mallId/brands", authMW, mallHandler.FindBrands)
	apirouter.RegisterRouteWithMiddleware(api, "/mall", "GET", "/:id", authMW, mallHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(api, "/mall", "POST", "", adminMW, mallHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(api, "/mall", "PUT", "/:id", adminMW, mallHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(api, "/mall", "DELETE", "/:id", adminMW, mallHandler.DeleteById)

	return nil
}
