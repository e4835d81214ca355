// Package geodto chứa DTO cho domain địa lý (Province/City/District).
package geodto

// ProvinceCreateInput dữ liệu đầu vào khi tạo tỉnh/thành
type ProvinceCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Code     string `json:"code" validate:"required,no_xss" maxLength:"20"`
	IsActive *bool  `json:"isActive"`
}

// ProvinceUpdateInput dữ liệu đầu vào khi cập nhật tỉnh/thành (partial)
type ProvinceUpdateInput struct {
	Name     *string `json:"name" validate:"omitempty,no_xss"`
	Code     *string `json:"code" validate:"omitempty,no_xss"`
	IsActive *bool   `json:"isActive"`
}

// CityCreateInput dữ liệu đầu vào khi tạo city
type CityCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Code     string `json:"code" validate:"required,no_xss" maxLength:"20"`
	Province string `json:"province" validate:"required,object_id"`
	IsActive *bool  `json:"isActive"`
}

// CityUpdateInput dữ liệu đầu vào khi cập nhật city (partial)
type CityUpdateInput struct {
	Name     *string `json:"name" validate:"omitempty,no_xss"`
	Code     *string `json:"code" validate:"omitempty,no_xss"`
	Province *string `json:"province" validate:"omitempty,object_id"`
	IsActive *bool   `json:"isActive"`
}

// DistrictCreateInput dữ liệu đầu vào khi tạo district.
// Province có thể bỏ trống: hệ thống tự lấy từ city cha; nếu truyền vào
// thì phải khớp với province của city (kiểm tra nhất quán).
type DistrictCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Code     string `json:"code" validate:"required,no_xss" maxLength:"20"`
	City     string `json:"city" validate:"required,object_id"`
	Province string `json:"province" validate:"omitempty,object_id"`
	IsActive *bool  `json:"isActive"`
}

// DistrictUpdateInput dữ liệu đầu vào khi cập nhật district (partial)
type DistrictUpdateInput struct {
	Name     *string `json:"name" validate:"omitempty,no_xss"`
	Code     *string `json:"code" validate:"omitempty,no_xss"`
	IsActive *bool   `json:"isActive"`
}
