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

// CityHandler xử lý các request CRUD city
type CityHandler struct {
	basehdl.BaseHandler[models.City, geodto.CityCreateInput, geodto.CityUpdateInput]
	CityService *geosvc.CityService
}

// NewCityHandler tạo mới CityHandler
func NewCityHandler() (*CityHandler, error) {
	cityService, err := geosvc.NewCityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create city service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.City, geodto.CityCreateInput, geodto.CityUpdateInput](cityService)
	return &CityHandler{
		BaseHandler: *baseHandler,
		CityService: cityService,
	}, nil
}

// InsertOne xử lý POST /api/admin/cities - kiểm tra province cha tồn tại
func (h *CityHandler) InsertOne(c fiber.Ctx) error {
	input := new(geodto.CityCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	city, err := h.CityService.Create(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgCreated, city)
}

// DeleteById xử lý DELETE /api/admin/cities/:id - chặn khi còn district con
func (h *CityHandler) DeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "ID không phải ObjectID hợp lệ", common.StatusBadRequest, nil))
	}

	if err := h.CityService.Delete(context.Background(), objectID); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, common.MsgSuccess, nil)
}
