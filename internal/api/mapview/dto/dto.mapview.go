// Package mapdto chứa DTO query cho các endpoint bản đồ công khai.
package mapdto

// MapListQuery query parameters chung cho các danh sách bản đồ
// (provinces/cities/districts/brands/malls)
type MapListQuery struct {
	Page       int64  `query:"page"`
	Limit      int64  `query:"limit"`
	Search     string `query:"search" validate:"omitempty,no_xss"` // Tìm theo tên, không phân biệt hoa thường
	ProvinceID string `query:"provinceId" validate:"omitempty,object_id"`
	CityID     string `query:"cityId" validate:"omitempty,object_id"`
	DistrictID string `query:"districtId" validate:"omitempty,object_id"`
}

// TreeQuery query parameters cho cây phân cấp địa lý
type TreeQuery struct {
	Level      int64  `query:"level" validate:"omitempty,min=1,max=3"` // 1=province, 2=+city, 3=+district/mall/brand
	ProvinceID string `query:"provinceId" validate:"omitempty,object_id"`
	CityID     string `query:"cityId" validate:"omitempty,object_id"`
	DistrictID string `query:"districtId" validate:"omitempty,object_id"`
	BrandID    string `query:"brandId" validate:"omitempty,object_id"`
	Search     string `query:"search" validate:"omitempty,no_xss"` // Tìm theo tên brand (level 3)
}

// DetailQuery query parameters cho danh sách điểm bán phẳng theo khu vực.
// Phải có ít nhất một trong provinceId/cityId/districtId.
type DetailQuery struct {
	ProvinceID string `query:"provinceId" validate:"omitempty,object_id"`
	CityID     string `query:"cityId" validate:"omitempty,object_id"`
	DistrictID string `query:"districtId" validate:"omitempty,object_id"`
	BrandID    string `query:"brandId" validate:"omitempty,object_id"`
	Search     string `query:"search" validate:"omitempty,no_xss"`
	Page       int64  `query:"page"`
	Limit      int64  `query:"limit"`
}

// StatisticsQuery query parameters cho thống kê nhanh theo khu vực
type StatisticsQuery struct {
	ProvinceID string `query:"provinceId" validate:"omitempty,object_id"`
	CityID     string `query:"cityId" validate:"omitempty,object_id"`
	DistrictID string `query:"districtId" validate:"omitempty,object_id"`
}

// ComparisonQuery query parameters cho so sánh các địa điểm.
// Phải truyền đúng một trong hai: mallIds hoặc cityIds (phân cách dấu phẩy).
type ComparisonQuery struct {
	MallIDs string `query:"mallIds" validate:"omitempty,no_xss"`
	CityIDs string `query:"cityIds" validate:"omitempty,no_xss"`
	BrandID string `query:"brandId" validate:"omitempty,object_id"`
}
