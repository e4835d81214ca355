// Package dictdto chứa DTO cho domain từ điển danh mục.
package dictdto

// DictionaryCreateInput dữ liệu đầu vào khi tạo mục từ điển
type DictionaryCreateInput struct {
	Type        string `json:"type" validate:"required,no_xss" maxLength:"50"`
	Label       string `json:"label" validate:"required,no_xss" maxLength:"200"`
	Value       string `json:"value" validate:"required,no_xss" maxLength:"100"`
	Sort        int64  `json:"sort"`
	Description string `json:"description" validate:"omitempty,no_xss"`
	IsActive    *bool  `json:"isActive"`
}

// DictionaryUpdateInput dữ liệu đầu vào khi cập nhật mục từ điển (partial)
type DictionaryUpdateInput struct {
	Label       *string `json:"label" validate:"omitempty,no_xss"`
	Sort        *int64  `json:"sort"`
	Description *string `json:"description" validate:"omitempty,no_xss"`
	IsActive    *bool   `json:"isActive"`
}

// DictionaryListQuery query parameters cho danh sách từ điển (admin)
type DictionaryListQuery struct {
	Page   int64  `query:"page"`
	Limit  int64  `query:"limit"`
	Type   string `query:"type" validate:"omitempty,no_xss"`
	Search string `query:"search" validate:"omitempty,no_xss"` // Tìm theo label/value/type
}

// DictionarySortItem một cặp (id, sort) trong batch sort
type DictionarySortItem struct {
	ID   string `json:"id" validate:"required,object_id"`
	Sort int64  `json:"sort"`
}

// DictionaryBatchSortInput dữ liệu đầu vào khi sắp xếp lại hàng loạt
type DictionaryBatchSortInput struct {
	Items []DictionarySortItem `json:"items" validate:"required,min=1,dive"`
}

// DictionaryLookupQuery query parameters cho tra cứu từ điển công khai.
// Types là chuỗi type phân cách dấu phẩy; bỏ trống trả tất cả.
type DictionaryLookupQuery struct {
	Types string `query:"types" validate:"omitempty,no_xss"`
}
