// Package models - model điểm bán của thương hiệu trong trung tâm thương mại.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandStore đại diện cho sự hiện diện của một brand trong một mall.
// Mỗi cặp (brand, mall) chỉ có một bản ghi (compound unique index).
// Province/City/District được denormalize từ mall lúc tạo để các pipeline
// thống kê theo địa lý không phải join qua malls.
type BrandStore struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Brand        primitive.ObjectID  `json:"brand" bson:"brand" index:"compound:brand_mall_unique"`
	Mall         primitive.ObjectID  `json:"mall" bson:"mall" index:"compound:brand_mall_unique"`
	Province     primitive.ObjectID  `json:"province" bson:"province" index:"single"`
	City         primitive.ObjectID  `json:"city" bson:"city" index:"single"`
	District     *primitive.ObjectID `json:"district,omitempty" bson:"district,omitempty"`
	StoreName    string              `json:"storeName,omitempty" bson:"storeName,omitempty"`
	StoreAddress string              `json:"storeAddress,omitempty" bson:"storeAddress,omitempty"`
	Score        float64             `json:"score" bson:"score"`
	IsOla        bool                `json:"isOla" bson:"isOla"` // Điểm bán dạng quầy mở (open-layout area)
	Floor        string              `json:"floor,omitempty" bson:"floor,omitempty"`
	UnitNumber   string              `json:"unitNumber,omitempty" bson:"unitNumber,omitempty"`
	OpeningHours string              `json:"openingHours,omitempty" bson:"openingHours,omitempty"`
	Phone        string              `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive     bool                `json:"isActive" bson:"isActive"`
	CreatedAt    int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt" bson:"updatedAt"`
}
