// Package authdto chứa DTO cho domain auth (đăng ký, đăng nhập, quản trị user).
package authdto

// UserRegisterInput dữ liệu đầu vào khi đăng ký tài khoản
type UserRegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=30,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"` // Mặc định "user" khi bỏ trống
}

// UserLoginInput dữ liệu đầu vào khi đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserStatusInput dữ liệu đầu vào khi khóa/mở khóa tài khoản
type UserStatusInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// UserListQuery query parameters cho danh sách user (admin)
type UserListQuery struct {
	Page   int64  `query:"page"`
	Limit  int64  `query:"limit"`
	Search string `query:"search" validate:"omitempty,no_xss"` // Tìm theo username hoặc email
}
