// Package dicthdl chứa HTTP handler cho domain từ điển danh mục.
package dicthdl

import (
	"context"
	"fmt"

	basehdl "retail_map/internal/api/base/handler"
	dictdto "retail_map/internal/api/dictionary/dto"
	dictsvc "retail_map/internal/api/dictionary/service"
	models "retail_map/internal/api/dictionary/models"

	"github.com/gofiber/fiber/v3"
)

// DictionaryHandler xử lý các request quản lý và tra cứu từ điển
type DictionaryHandler struct {
	basehdl.BaseHandler[models.Dictionary, dictdto.DictionaryCreateInput, dictdto.DictionaryUpdateInput]
	DictionaryService *dictsvc.DictionaryService
}

// NewDictionaryHandler tạo mới DictionaryHandler
func NewDictionaryHandler() (*DictionaryHandler, error) {
	dictionaryService, err := dictsvc.NewDictionaryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dictionary service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Dictionary, dictdto.DictionaryCreateInput, dictdto.DictionaryUpdateInput](dictionaryService)
	return &DictionaryHandler{
		BaseHandler:       *baseHandler,
		DictionaryService: dictionaryService,
	}, nil
}

// InsertOne xử lý POST /api/admin/dictionaries - chặn trùng (type, value)
func (h *DictionaryHandler) InsertOne(c fiber.Ctx) error {
	input := new(dictdto.DictionaryCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	entry, err := h.DictionaryService.Create(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, "Tạo mục từ điển thành công", entry)
}

// List xử lý GET /api/admin/dictionaries - danh sách phân trang
func (h *DictionaryHandler) List(c fiber.Ctx) error {
	query := new(dictdto.DictionaryListQuery)
	if err := h.ParseRequestQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 0 {
		query.Limit = 10
	}

	result, err := h.DictionaryService.List(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, result)
}

// Types xử lý GET /api/admin/dictionaries/types - danh sách type hiện có
func (h *DictionaryHandler) Types(c fiber.Ctx) error {
	types, err := h.DictionaryService.Types(context.Background())
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, types)
}

// BatchSort xử lý PUT /api/admin/dictionaries/batch/sort
func (h *DictionaryHandler) BatchSort(c fiber.Ctx) error {
	input := new(dictdto.DictionaryBatchSortInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	updated, err := h.DictionaryService.BatchSort(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponseWithMessage(c, "Cập nhật thứ tự thành công", fiber.Map{
		"updated": updated,
	})
}

// Lookup xử lý GET /api/map/dictionaries - tra cứu công khai gom theo type
func (h *DictionaryHandler) Lookup(c fiber.Ctx) error {
	query := new(dictdto.DictionaryLookupQuery)
	if err := h.ParseRequestQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	grouped, err := h.DictionaryService.LookupGrouped(context.Background(), query.Types)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, grouped)
}
