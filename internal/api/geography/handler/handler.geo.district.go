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

// DistrictHandler xử lý các request CRUD district
type DistrictHandler struct {
	basehdl.BaseHandler[models.District, geodto.DistrictCreateInput, geodto.DistrictUpdateInput]
	DistrictService *geosvc.DistrictService
}

// NewDistrictHandler tạo mới DistrictHandler
func NewDistrictHandler() (*DistrictHandler, error) {
	districtService, err := geosvc.NewDistrictService()
	if err != nil {
		return nil, fmt.Errorf("failed to create district service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.District, geodto.DistrictCreateInput, geodto.DistrictUpdateInput](districtService)
	return &DistrictHandler{
		BaseHandler:     *baseHandler,
		DistrictService: districtService,
	}, nil
}

// InsertOne xử lý POST /api/admin/districts - kiểm tra city cha và
// tính nhất quán province trước khi tạo
func (h *DistrictHandler) InsertOne(c fiber.Ctx) error {
	input := new(geodto.DistrictCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	district, err := h.DistrictService.Create(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgCreated, district)
}

// DeleteById xử lý DELETE /api/admin/districts/:id - chặn khi còn mall con
func (h *DistrictHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "ID không phải ObjectID hợp lệ", common.StatusBadRequest, nil))
	}

	if err := h.DistrictService.Delete(context.Background(), objectID); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgSuccess, nil)
}
