package geohdl

import (
	"context"
	"fmt"

	basehdl "retail_map/internal/api/base/handler"
	geosvc "retail_map/internal/api/geography/service"

	"github.com/gofiber/fiber/v3"
)

// RecomputeHandler xử lý request tính lại counter địa lý
type RecomputeHandler struct {
	RecomputeService *geosvc.RecomputeService
}

// NewRecomputeHandler tạo mới RecomputeHandler
func NewRecomputeHandler() (*RecomputeHandler, error) {
	recomputeService, err := geosvc.NewRecomputeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create recompute service: %v", err)
	}
	return &RecomputeHandler{
		RecomputeService: recomputeService,
	}, nil
}

// Recompute xử lý POST /api/admin/recompute-counts
func (h *RecomputeHandler) Recompute(c fiber.Ctx) error {
	result, err := h.RecomputeService.RecomputeCounts(context.Background())
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, "Đã tính lại counter địa lý", result)
}
