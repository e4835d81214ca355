package catalogdto

// MallCreateInput dữ liệu đầu vào khi tạo mall
type MallCreateInput struct {
	Name          string  `json:"name" validate:"required,no_xss" maxLength:"200"`
	Code          string  `json:"code" validate:"omitempty,no_xss" maxLength:"50"`
	Description   string  `json:"description" validate:"omitempty,no_xss"`
	Logo          string  `json:"logo"`
	Website       string  `json:"website" validate:"omitempty,url"`
	Province      string  `json:"province" validate:"required,object_id"`
	City          string  `json:"city" validate:"required,object_id"`
	District      string  `json:"district" validate:"omitempty,object_id"`
	Address       string  `json:"address" validate:"omitempty,no_xss"`
	ContactEmail  string  `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone  string  `json:"contactPhone"`
	FloorCount    int64   `json:"floorCount" validate:"omitempty,min=0"`
	TotalArea     float64 `json:"totalArea" validate:"omitempty,min=0"`
	ParkingSpaces int64   `json:"parkingSpaces" validate:"omitempty,min=0"`
	OpeningHours  string  `json:"openingHours"`
	IsActive      *bool   `json:"isActive"`
}

// MallUpdateInput dữ liệu đầu vào khi cập nhật mall (partial)
type MallUpdateInput struct {
	Name          *string  `json:"name" validate:"omitempty,no_xss"`
	Code          *string  `json:"code" validate:"omitempty,no_xss"`
	Description   *string  `json:"description" validate:"omitempty,no_xss"`
	Logo          *string  `json:"logo"`
	Website       *string  `json:"website" validate:"omitempty,url"`
	Address       *string  `json:"address" validate:"omitempty,no_xss"`
	ContactEmail  *string  `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone  *string  `json:"contactPhone"`
	FloorCount    *int64   `json:"floorCount" validate:"omitempty,min=0"`
	TotalArea     *float64 `json:"totalArea" validate:"omitempty,min=0"`
	ParkingSpaces *int64   `json:"parkingSpaces" validate:"omitempty,min=0"`
	OpeningHours  *string  `json:"openingHours"`
	IsActive      *bool    `json:"isActive"`
}

// MallBrandsQuery query parameters cho danh sách brand trong một mall
type MallBrandsQuery struct {
	Page   int64  `query:"page"`
	Limit  int64  `query:"limit"`
	Search string `query:"search" validate:"omitempty,no_xss"` // Tìm theo tên brand
}
