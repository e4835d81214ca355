// Package router đăng ký các route bản đồ công khai (không cần đăng nhập).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	maphdl "retail_map/internal/api/mapview/handler"
	apirouter "retail_map/internal/api/router"
)

// Register đăng ký tất cả route bản đồ lên /api.
// Route /map/dictionaries do domain dictionary đăng ký riêng.
func Register(api fiber.Router, r *apirouter.Router) error {
	mapHandler, err := maphdl.NewMapHandler()
	if err != nil {
		return fmt.Errorf("create map handler: %w", err)
	}

	noMW := []fiber.Handler{}

	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/national", noMW, mapHandler.National)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/provinces", noMW, mapHandler.ListProvinces)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/provinces/:id", noMW, mapHandler.GetProvince)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/cities", noMW, mapHandler.ListCities)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/cities/:id", noMW, mapHandler.GetCity)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/districts", noMW, mapHandler.ListDistricts)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/brands", noMW, mapHandler.ListBrands)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/malls", noMW, mapHandler.ListMalls)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/tree", noMW, mapHandler.Tree)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/detail", noMW, mapHandler.Detail)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/statistics", noMW, mapHandler.Statistics)
	apirouter.RegisterRouteWithMiddleware(api, "/map", "GET", "/comparison", noMW, mapHandler.Comparison)

	return nil
}
