// Package models - model từ điển danh mục (Dictionary).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dictionary một mục tra cứu dùng chung (nhóm ngành hàng, loại điểm bán...).
// Value là mã lưu trong dữ liệu, Label là tên hiển thị; mỗi (type, value)
// chỉ có một bản ghi.
type Dictionary struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Type        string             `json:"type" bson:"type" index:"compound:type_value_unique"`
	Value       string             `json:"value" bson:"value" index:"compound:type_value_unique"`
	Label       string             `json:"label" bson:"label"`
	Sort        int64              `json:"sort" bson:"sort"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
