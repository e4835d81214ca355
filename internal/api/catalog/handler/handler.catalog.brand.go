// Package cataloghdl chứa HTTP handler cho domain danh mục (Brand/Mall).
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

// BrandHandler xử lý các request CRUD brand
type BrandHandler struct {
	basehdl.BaseHandler[models.Brand, catalogdto.BrandCreateInput, catalogdto.BrandUpdateInput]
	BrandService *catalogsvc.BrandService
}

// NewBrandHandler tạo mới BrandHandler
func NewBrandHandler() (*BrandHandler, error) {
	brandService, err := catalogsvc.NewBrandService()
	if err != nil {
		return nil, fmt.Errorf("failed to create brand service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Brand, catalogdto.BrandCreateInput, catalogdto.BrandUpdateInput](brandService)
	return &BrandHandler{
		BaseHandler:  *baseHandler,
		BrandService: brandService,
	}, nil
}

// InsertOne xử lý POST /api/admin/brands - isActive mặc định true
func (h *BrandHandler) InsertOne(c fiber.Ctx) error {
	input := new(catalogdto.BrandCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	brand, err := h.TransformCreateInputToModel(input)
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil))
	}
	brand.IsActive = true
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}

	created, err := h.BrandService.InsertOne(context.Background(), *brand)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgCreated, created)
}

// DeleteById xử lý DELETE /api/admin/brands/:id - chặn khi còn điểm bán
func (h *BrandHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "ID không phải ObjectID hợp lệ", common.StatusBadRequest, nil))
	}

	if err := h.BrandService.Delete(context.Background(), objectID); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgSuccess, nil)
}
