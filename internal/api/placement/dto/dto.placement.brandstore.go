// Package placementdto chứa DTO cho domain điểm bán (BrandStore).
package placementdto

// BrandStoreBulkCreateInput dữ liệu đầu vào khi tạo điểm bán hàng loạt.
// Malls là chuỗi mall id phân cách bởi dấu phẩy (giữ nguyên format client cũ);
// id trùng lặp trong chuỗi được dedupe trước khi xử lý.
type BrandStoreBulkCreateInput struct {
	Brand        string  `json:"brand" validate:"required,object_id"`
	Malls        string  `json:"malls" validate:"required"`
	StoreName    string  `json:"storeName" validate:"omitempty,no_xss"`
	StoreAddress string  `json:"storeAddress" validate:"omitempty,no_xss"`
	Score        float64 `json:"score" validate:"omitempty,min=0,max=10"`
	IsOla        bool    `json:"isOla"`
	Floor        string  `json:"floor" validate:"omitempty,no_xss"`
	UnitNumber   string  `json:"unitNumber" validate:"omitempty,no_xss"`
	OpeningHours string  `json:"openingHours"`
	Phone        string  `json:"phone"`
	IsActive     *bool   `json:"isActive"`
}

// BrandStoreUpdateInput dữ liệu đầu vào khi cập nhật điểm bán (partial).
// Khi đổi brand hoặc mall, cặp (brand, mall) mới sẽ được kiểm tra trùng.
type BrandStoreUpdateInput struct {
	Brand        *string  `json:"brand" validate:"omitempty,object_id"`
	Mall         *string  `json:"mall" validate:"omitempty,object_id"`
	StoreName    *string  `json:"storeName" validate:"omitempty,no_xss"`
	StoreAddress *string  `json:"storeAddress" validate:"omitempty,no_xss"`
	Score        *float64 `json:"score" validate:"omitempty,min=0,max=10"`
	IsOla        *bool    `json:"isOla"`
	Floor        *string  `json:"floor" validate:"omitempty,no_xss"`
	UnitNumber   *string  `json:"unitNumber" validate:"omitempty,no_xss"`
	OpeningHours *string  `json:"openingHours"`
	Phone        *string  `json:"phone"`
	IsActive     *bool    `json:"isActive"`
}

// BrandStoreListQuery query parameters cho danh sách điểm bán
type BrandStoreListQuery struct {
	Page       int64  `query:"page"`
	Limit      int64  `query:"limit"`
	BrandID    string `query:"brandId" validate:"omitempty,object_id"`
	MallID     string `query:"mallId" validate:"omitempty,object_id"`
	ProvinceID string `query:"provinceId" validate:"omitempty,object_id"`
	CityID     string `query:"cityId" validate:"omitempty,object_id"`
	DistrictID string `query:"districtId" validate:"omitempty,object_id"`
}
