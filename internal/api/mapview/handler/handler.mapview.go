// Package maphdl chứa HTTP handler cho các endpoint bản đồ công khai.
package maphdl

import (
	"context"
	"fmt"

	basehdl "retail_map/internal/api/base/handler"
	mapdto "retail_map/internal/api/mapview/dto"
	mapsvc "retail_map/internal/api/mapview/service"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapHandler xử lý các request đọc dữ liệu bản đồ
type MapHandler struct {
	MapService *mapsvc.MapService
}

// NewMapHandler tạo mới MapHandler
func NewMapHandler() (*MapHandler, error) {
	mapService, err := mapsvc.NewMapService()
	if err != nil {
		return nil, fmt.Errorf("failed to create map service: %v", err)
	}
	return &MapHandler{MapService: mapService}, nil
}

// parseQuery bind query string vào struct có tag `query` rồi validate
func parseQuery(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Query(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// normalizePaging đưa page/limit về giá trị mặc định hợp lệ
func normalizePaging(page, limit *int64) {
	if *page < 1 {
		*page = 1
	}
	if *limit < 0 {
		*limit = 10
	}
}

// parsePathID lấy và kiểm tra ObjectID từ path param "id"
func parsePathID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ", common.StatusBadRequest, nil)
	}
	return id, nil
}

// National xử lý GET /api/map/national - counter tổng hợp toàn quốc
func (h *MapHandler) National(c fiber.Ctx) error {
	summary, err := h.MapService.National(context.Background())
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, summary)
}

// ListProvinces xử lý GET /api/map/provinces
func (h *MapHandler) ListProvinces(c fiber.Ctx) error {
	query := new(mapdto.MapListQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	normalizePaging(&query.Page, &query.Limit)

	result, err := h.MapService.ListProvinces(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}

// GetProvince xử lý GET /api/map/provinces/:id - chi tiết kèm city con
func (h *MapHandler) GetProvince(c fiber.Ctx) error {
	id, err := parsePathID(c)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	detail, err := h.MapService.GetProvince(context.Background(), id)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, detail)
}

// ListCities xử lý GET /api/map/cities
func (h *MapHandler) ListCities(c fiber.Ctx) error {
	query := new(mapdto.MapListQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	normalizePaging(&query.Page, &query.Limit)

	result, err := h.MapService.ListCities(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}

// GetCity xử lý GET /api/map/cities/:id - chi tiết kèm district con
func (h *MapHandler) GetCity(c fiber.Ctx) error {
	id, err := parsePathID(c)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	detail, err := h.MapService.GetCity(context.Background(), id)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, detail)
}

// ListDistricts xử lý GET /api/map/districts
func (h *MapHandler) ListDistricts(c fiber.Ctx) error {
	query := new(mapdto.MapListQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	normalizePaging(&query.Page, &query.Limit)

	result, err := h.MapService.ListDistricts(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}

// ListBrands xử lý GET /api/map/brands - brand kèm số điểm bán
func (h *MapHandler) ListBrands(c fiber.Ctx) error {
	query := new(mapdto.MapListQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	normalizePaging(&query.Page, &query.Limit)

	result, err := h.MapService.ListBrands(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}

// ListMalls xử lý GET /api/map/malls
func (h *MapHandler) ListMalls(c fiber.Ctx) error {
	query := new(mapdto.MapListQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	normalizePaging(&query.Page, &query.Limit)

	result, err := h.MapService.ListMalls(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}

// Tree xử lý GET /api/map/tree - cây phân cấp địa lý theo level
func (h *MapHandler) Tree(c fiber.Ctx) error {
	query := new(mapdto.TreeQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if query.Level == 0 {
		query.Level = 1
	}

	tree, err := h.MapService.Tree(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, tree)
}

// Detail xử lý GET /api/map/detail - danh sách điểm bán phẳng theo khu vực
func (h *MapHandler) Detail(c fiber.Ctx) error {
	query := new(mapdto.DetailQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	normalizePaging(&query.Page, &query.Limit)

	result, err := h.MapService.Detail(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}

// Statistics xử lý GET /api/map/statistics - thống kê nhanh theo khu vực
func (h *MapHandler) Statistics(c fiber.Ctx) error {
	query := new(mapdto.StatisticsQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	stats, err := h.MapService.Statistics(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, stats)
}

// Comparison xử lý GET /api/map/comparison - so sánh mall hoặc city
func (h *MapHandler) Comparison(c fiber.Ctx) error {
	query := new(mapdto.ComparisonQuery)
	if err := parseQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	result, err := h.MapService.Comparison(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}
