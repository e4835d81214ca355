// Package router đăng ký các route thuộc domain địa lý: Province, City,
// District (CRUD admin) và recompute-counts.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	geohdl "retail_map/internal/api/geography/handler"
	"retail_map/internal/api/middleware"
	apirouter "retail_map/internal/api/router"
)

// Register đăng ký tất cả route địa lý lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	provinceHandler, err := geohdl.NewProvinceHandler()
	if err != nil {
		return fmt.Errorf("create province handler: %w", err)
	}
	cityHandler, err := geohdl.NewCityHandler()
	if err != nil {
		return fmt.Errorf("create city handler: %w", err)
	}
	districtHandler, err := geohdl.NewDistrictHandler()
	if err != nil {
		return fmt.Errorf("create district handler: %w", err)
	}
	recomputeHandler, err := geohdl.NewRecomputeHandler()
	if err != nil {
		return fmt.Errorf("create recompute handler: %w", err)
	}

	adminMW := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireAdmin()}

	r.RegisterCRUDRoutes(api, "/admin/provinces", provinceHandler, apirouter.ReadWriteConfig, adminMW, adminMW)
	r.RegisterCRUDRoutes(api, "/admin/cities", cityHandler, apirouter.ReadWriteConfig, adminMW, adminMW)
	r.RegisterCRUDRoutes(api, "/admin/districts", districtHandler, apirouter.ReadWriteConfig, adminMW, adminMW)

	apirouter.RegisterRouteWithMiddleware(api, "/admin", "POST", "/recompute-counts", adminMW, recomputeHandler.Recompute)

	return nil
}
