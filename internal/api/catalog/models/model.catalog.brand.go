// Package models - model danh mục bán lẻ (Brand/Mall).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand đại diện cho một thương hiệu bán lẻ.
// Geo anchor (province/city/district) là tùy chọn: dùng cho brand chỉ hoạt
// động trong một khu vực. Code sparse unique vì không phải brand nào cũng có.
type Brand struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string              `json:"name" bson:"name"`
	Code         string              `json:"code,omitempty" bson:"code,omitempty" index:"unique,sparse"`
	Description  string              `json:"description,omitempty" bson:"description,omitempty"`
	Logo         string              `json:"logo,omitempty" bson:"logo,omitempty"`
	Website      string              `json:"website,omitempty" bson:"website,omitempty"`
	Category     string              `json:"category,omitempty" bson:"category,omitempty"` // Mã nhóm ngành hàng (tra qua dictionary)
	ContactEmail string              `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	ContactPhone string              `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	Province     *primitive.ObjectID `json:"province,omitempty" bson:"province,omitempty"`
	City         *primitive.ObjectID `json:"city,omitempty" bson:"city,omitempty"`
	District     *primitive.ObjectID `json:"district,omitempty" bson:"district,omitempty"`
	Score        float64             `json:"score" bson:"score"` // Điểm đánh giá; 0 sẽ fallback theo category khi so sánh
	Sort         int64               `json:"sort" bson:"sort"`
	IsActive     bool                `json:"isActive" bson:"isActive"`
	CreatedAt    int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt" bson:"updatedAt"`
}
