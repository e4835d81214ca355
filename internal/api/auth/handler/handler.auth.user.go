// Package authhdl chứa HTTP handler cho domain auth.
package authhdl

import (
	"context"
	"fmt"

	authdto "retail_map/internal/api/auth/dto"
	models "retail_map/internal/api/auth/models"
	basehdl "retail_map/internal/api/base/handler"
	authsvc "retail_map/internal/api/auth/service"
	"retail_map/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHandler xử lý các request đăng ký, đăng nhập và quản trị user
type AuthHandler struct {
	basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UserRegisterInput]
	UserService *authsvc.UserService
}

// NewAuthHandler tạo mới AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UserRegisterInput](userService)
	return &AuthHandler{
		BaseHandler: *baseHandler,
		UserService: userService,
	}, nil
}

// Register xử lý POST /api/auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	input := new(authdto.UserRegisterInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	user, err := h.UserService.Register(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	token, err := h.UserService.IssueToken(user)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	return basehdl.SuccessResponseWithMessage(c, "Đăng ký thành công", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Login xử lý POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	input := new(authdto.UserLoginInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		// Không tiết lộ email có tồn tại hay không: mọi input sai đều về 401 chung
		return basehdl.ErrorResponse(c, common.ErrInvalidCredentials)
	}

	user, err := h.UserService.Login(context.Background(), input)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	token, err := h.UserService.IssueToken(user)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	return basehdl.SuccessResponseWithMessage(c, "Đăng nhập thành công", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Me xử lý GET /api/auth/me - trả thông tin user hiện tại từ token
func (h *AuthHandler) Me(c fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
	}

	user, err := h.UserService.FindOneById(context.Background(), objectID)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	return basehdl.SuccessResponse(c, user)
}

// ListUsers xử lý GET /api/admin/users - danh sách user có phân trang (admin)
func (h *AuthHandler) ListUsers(c fiber.Ctx) error {
	query := new(authdto.UserListQuery)
	if err := h.ParseRequestQuery(c, query); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 0 {
		query.Limit = 10
	}

	result, err := h.UserService.ListUsers(context.Background(), query)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	return basehdl.SuccessResponse(c, result)
}

// UpdateStatus xử lý PUT /api/admin/users/:id/status - khóa/mở khóa tài khoản (admin)
func (h *AuthHandler) UpdateStatus(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "ID không phải ObjectID hợp lệ", common.StatusBadRequest, nil))
	}

	input := new(authdto.UserStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	if err := h.ValidateInput(input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	user, err := h.UserService.UpdateStatus(context.Background(), objectID, *input.IsActive)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}

	return basehdl.SuccessResponseWithMessage(c, "Cập nhật trạng thái thành công", user)
}
