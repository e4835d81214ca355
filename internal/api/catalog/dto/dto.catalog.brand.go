// Package catalogdto chứa DTO cho domain danh mục (Brand/Mall).
package catalogdto

// BrandCreateInput dữ liệu đầu vào khi tạo brand
type BrandCreateInput struct {
	Name         string  `json:"name" validate:"required,no_xss" maxLength:"200"`
	Code         string  `json:"code" validate:"omitempty,no_xss" maxLength:"50"`
	Description  string  `json:"description" validate:"omitempty,no_xss"`
	Logo         string  `json:"logo"`
	Website      string  `json:"website" validate:"omitempty,url"`
	Category     string  `json:"category" validate:"omitempty,no_xss"`
	ContactEmail string  `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string  `json:"contactPhone"`
	Province     string  `json:"province" validate:"omitempty,object_id"`
	City         string  `json:"city" validate:"omitempty,object_id"`
	District     string  `json:"district" validate:"omitempty,object_id"`
	Score        float64 `json:"score" validate:"omitempty,min=0,max=10"`
	Sort         int64   `json:"sort"`
	IsActive     *bool   `json:"isActive"`
}

// BrandUpdateInput dữ liệu đầu vào khi cập nhật brand (partial)
type BrandUpdateInput struct {
	Name         *string  `json:"name" validate:"omitempty,no_xss"`
	Code         *string  `json:"code" validate:"omitempty,no_xss"`
	Description  *string  `json:"description" validate:"omitempty,no_xss"`
	Logo         *string  `json:"logo"`
	Website      *string  `json:"website" validate:"omitempty,url"`
	Category     *string  `json:"category" validate:"omitempty,no_xss"`
	ContactEmail *string  `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string  `json:"contactPhone"`
	Province     *string  `json:"province" validate:"omitempty,object_id"`
	City         *string  `json:"city" validate:"omitempty,object_id"`
	District     *string  `json:"district" validate:"omitempty,object_id"`
	Score        *float64 `json:"score" validate:"omitempty,min=0,max=10"`
	Sort         *int64   `json:"sort"`
	IsActive     *bool    `json:"isActive"`
}
