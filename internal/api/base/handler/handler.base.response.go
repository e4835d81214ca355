package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"retail_map/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SuccessResponse trả về response thành công: {"success": true, "data": ...}
func SuccessResponse(c fiber.Ctx, data interface{}) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"data":    data,
	})
}

// SuccessResponseWithMessage trả về response thành công kèm message.
func SuccessResponseWithMessage(c fiber.Ctx, message string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return JSONResponse(c, common.StatusOK, body)
}

// ErrorResponse trả về response lỗi: {"success": false, "error": ...}
// Status code lấy từ *common.Error nếu có, mặc định 500.
func ErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		body := fiber.Map{
			"success": false,
			"error":   customErr.Message,
		}
		if customErr.Details != nil {
			body["details"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"success": false,
		"error":   common.MsgInternalError,
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
//
// Parameters:
// - c: Fiber context
// - handler: Function xử lý chính của handler
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng:
// thành công {"success": true, "data": ...}, lỗi {"success": false, "error": ...}.
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về cho client (có thể là nil nếu chỉ trả về lỗi)
// - err: Lỗi nếu có (nil nếu không có lỗi)
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		_ = ErrorResponse(c, err)
		return
	}
	_ = SuccessResponse(c, data)
}
