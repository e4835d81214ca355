// Package placementhdl chứa HTTP handler cho domain điểm bán (BrandStore).
package placementhdl

import (
	"context"
	"fmt"

	basehdl "retail_map/internal/api/base/handler"
	placementdto "retail_map/internal/api/placement/dto"
	placementsvc "retail_map/internal/api/placement/service"
	models "retail_map/internal/api/placement/models"
	"retail_map/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandStoreHandler xử lý các request quản lý điểm bán
type BrandStoreHandler struct {
	basehdl.BaseHandler[models.BrandStore, placementdto.BrandStoreBulkCreateInput, placementdto.BrandStoreUpdateInput]
	BrandStoreService *placementsvc.BrandStoreService
}

// NewBrandStoreHandler tạo mới BrandStoreHandler
func NewBrandStoreHandler() (*BrandStoreHandler, error) {
	brandStoreService, err := placementsvc.NewBrandStoreService()
	if err != nil {
		return nil, fmt.Errorf("failed to create brand store service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.BrandStore, placementdto.BrandStoreBulkCreateInput, placementdto.BrandStoreUpdateInput](brandStoreService)
	return &BrandStoreHandler{
		BaseHandler:       *baseHandler,
		BrandStoreService: brandStoreService,
	}, nil
}

// BulkCreate xử lý POST /api/admin/brand-stores - tạo điểm bán hàng loạt.
// Khi toàn bộ mall đều đã có điểm bán của brand, trả 200 với success=false
// để client hiển thị cảnh báo thay vì lỗi.
func (h *BrandStoreHandler) BulkCreate(c fiber.Ctx) error {
	input := new(placementdto.BrandStoreBulkCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	result, err := h.BrandStoreService.BulkCreate(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	if result.AllSkipped() {
		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": false,
			"message": "Thương hiệu đã có điểm bán trong tất cả trung tâm đã chọn",
			"data":    result,
		})
	}

	return basehdl.SuccessResponseWithMessage(c, common.MsgCreated, result)
}

// UpdateById xử lý PUT /api/admin/brand-stores/:id - partial update,
// kiểm tra trùng cặp (brand, mall) khi một trong hai thay đổi
func (h *BrandStoreHandler) UpdateById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "ID không phải ObjectID hợp lệ", common.StatusBadRequest, nil))
	}

	input := new(placementdto.BrandStoreUpdateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	store, err := h.BrandStoreService.Update(context.Background(), objectID, input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgUpdated, store)
}

// List xử lý GET /api/admin/brand-stores - danh sách đã join tên hiển thị
func (h *BrandStoreHandler) List(c fiber.Ctx) error {
	query := new(placementdto.BrandStoreListQuery)
	if err := h.ParseRequestQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 0 {
		query.Limit = 10
	}

	result, err := h.BrandStoreService.List(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}
