package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// QUAN TRỌNG: CÁCH ĐĂNG KÝ MIDDLEWARE VỚI FIBER V3
// ============================================================================
//
// Fiber v3 có vấn đề với cách đăng ký middleware trực tiếp trong route:
// middleware sẽ KHÔNG được gọi nếu truyền trực tiếp vào router.Get/Post/...
//
// Cách sai (không hoạt động):
//	router.Get("/path", middleware.AuthMiddleware(), handler)
//
// Cách đúng (phải dùng):
//	RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path",
//		[]fiber.Handler{middleware.AuthMiddleware()}, handler)
//	→ Middleware được gắn qua .Use() trên group nên luôn được gọi.
//
// ============================================================================

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteById(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	List     bool // GET ""            — danh sách có phân trang
	GetById  bool // GET "/:id"        — chi tiết theo id
	Create   bool // POST ""           — tạo mới
	UpdById  bool // PUT "/:id"        — cập nhật theo id
	DelById  bool // DELETE "/:id"     — xóa theo id
	Count    bool // GET "/count"      — đếm theo filter
	Distinct bool // GET "/distinct/:field"
}

// Config dùng chung cho các domain.
var (
	// ReadOnlyConfig chỉ cho phép đọc.
	ReadOnlyConfig = CRUDConfig{
		List: true, GetById: true,
		Create: false, UpdById: false, DelById: false,
		Count: true, Distinct: false,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD.
	ReadWriteConfig = CRUDConfig{
		List: true, GetById: true,
		Create: true, UpdById: true, DelById: true,
		Count: true, Distinct: false,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method
// (cách đúng theo Fiber v3 — xem comment ở đầu file). Dùng từ domain router.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD kiểu REST cho một collection.
// readMW áp dụng cho các route đọc, writeMW cho các route ghi.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, readMW []fiber.Handler, writeMW []fiber.Handler) {
	// Read operations
	if config.List {
		RegisterRouteWithMiddleware(router, prefix, "GET", "", readMW, h.FindWithPagination)
	}
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", readMW, h.CountDocuments)
	}
	if config.Distinct {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/distinct/:field", readMW, h.Distinct)
	}
	if config.GetById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", readMW, h.FindOneById)
	}

	// Write operations
	if config.Create {
		RegisterRouteWithMiddleware(router, prefix, "POST", "", writeMW, h.InsertOne)
	}
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id", writeMW, h.UpdateById)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", writeMW, h.DeleteById)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(api fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}
	return nil
}
