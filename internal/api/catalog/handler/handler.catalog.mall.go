package cataloghdl

import (
	"context"
	"fmt"

	basehdl "retail_map/internal/api/base/handler"
	catalogdto "retail_map/internal/api/catalog/dto"
	catalogsvc "retail_map/internal/api/catalog/service"
	models "retail_map/internal/api/catalog/models"
	"retail_map/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MallHandler xử lý các request CRUD mall và danh sách brand trong mall
type MallHandler struct {
	basehdl.BaseHandler[models.Mall, catalogdto.MallCreateInput, catalogdto.MallUpdateInput]
	MallService *catalogsvc.MallService
}

// NewMallHandler tạo mới MallHandler
func NewMallHandler() (*MallHandler, error) {
	mallService, err := catalogsvc.NewMallService()
	if err != nil {
		return nil, fmt.Errorf("failed to create mall service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Mall, catalogdto.MallCreateInput, catalogdto.MallUpdateInput](mallService)
	return &MallHandler{
		BaseHandler: *baseHandler,
		MallService: mallService,
	}, nil
}

// InsertOne xử lý POST /api/mall - kiểm tra chuỗi địa lý trước khi tạo
func (h *MallHandler) InsertOne(c fiber.Ctx) error {
	input := new(catalogdto.MallCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	mall, err := h.MallService.Create(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgCreated, mall)
}

// DeleteById xử lý DELETE /api/mall/:id - chặn khi còn điểm bán
func (h *MallHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "ID không phải ObjectID hợp lệ", common.StatusBadRequest, nil))
	}

	if err := h.MallService.Delete(context.Background(), objectID); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgSuccess, nil)
}

// FindBrands xử lý GET /api/mall/:mallId/brands - danh sách brand trong mall
// kèm số điểm bán, phân trang và tìm theo tên
func (h *MallHandler) FindBrands(c fiber.Ctx) error {
	mallID, err := primitive.ObjectIDFromHex(c.Params("mallId"))
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "mallId không phải ObjectID hợp lệ", common.StatusBadRequest, nil))
	}

	query := new(catalogdto.MallBrandsQuery)
	if err := h.ParseRequestQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 0 {
		query.Limit = 10
	}

	result, err := h.MallService.FindBrandsInMall(context.Background(), mallID, query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}
