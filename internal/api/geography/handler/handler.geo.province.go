// Package geohdl chứa HTTP handler cho domain địa lý.
package geohdl

import (
	"context"
	"fmt"

	basehdl "retail_map/internal/api/base/handler"
	geodto "retail_map/internal/api/geography/dto"
	geosvc "retail_map/internal/api/geography/service"
	models "retail_map/internal/api/geography/models"
	"retail_map/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProvinceHandler xử lý các request CRUD tỉnh/thành
type ProvinceHandler struct {
	basehdl.BaseHandler[models.Province, geodto.ProvinceCreateInput, geodto.ProvinceUpdateInput]
	ProvinceService *geosvc.ProvinceService
}

// NewProvinceHandler tạo mới ProvinceHandler
func NewProvinceHandler() (*ProvinceHandler, error) {
	provinceService, err := geosvc.NewProvinceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create province service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Province, geodto.ProvinceCreateInput, geodto.ProvinceUpdateInput](provinceService)
	return &ProvinceHandler{
		BaseHandler:     *baseHandler,
		ProvinceService: provinceService,
	}, nil
}

// InsertOne xử lý POST /api/admin/provinces
func (h *ProvinceHandler) InsertOne(c fiber.Ctx) error {
	input := new(geodto.ProvinceCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	province, err := h.ProvinceService.Create(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgCreated, province)
}

// DeleteById xử lý DELETE /api/admin/provinces/:id - chặn khi còn city con
func (h *ProvinceHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "ID không phải ObjectID hợp lệ", common.StatusBadRequest, nil))
	}

	if err := h.ProvinceService.Delete(context.Background(), objectID); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgSuccess, nil)
}
