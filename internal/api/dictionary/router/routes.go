// Package router đăng ký các route thuộc domain từ điển: CRUD admin,
// batch sort và tra cứu công khai.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dicthdl "retail_map/internal/api/dictionary/handler"
	"retail_map/internal/api/middleware"
	apirouter "retail_map/internal/api/router"
)

// Register đăng ký tất cả route từ điển lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	dictionaryHandler, err := dicthdl.NewDictionaryHandler()
	if err != nil {
		return fmt.Errorf("create dictionary handler: %w", err)
	}

	adminMW := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireAdmin()}

	apirouter.RegisterRouteWithMiddleware(api, "/admin/dictionaries", "GET", "", adminMW, dictionaryHandler.List)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/dictionaries", "GET", "/types", adminMW, dictionaryHandler.Types)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/dictionaries", "POST", "", adminMW, dictionaryHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/dictionaries", "PUT", "/batch/sort", adminMW, dictionaryHandler.BatchSort)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/dictionaries", "PUT", "/:id", adminMW, dictionaryHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(api, "/admin/dictionaries", "DELETE", "/:id", adminMW, dictionaryHandler.DeleteById)

	// Tra cứu công khai cho client bản đồ
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/dictionaries", nil, dictionaryHandler.Lookup)

	return nil
}
