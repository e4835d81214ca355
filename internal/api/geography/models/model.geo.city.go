package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// City đại diện cho một quận/thành phố thuộc tỉnh.
// Tên city chỉ cần duy nhất trong phạm vi một tỉnh (compound unique index).
type City struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Province      primitive.ObjectID `json:"province" bson:"province" index:"compound:province_name_unique"`
	Name          string             `json:"name" bson:"name" index:"compound:province_name_unique"`
	Code          string             `json:"code" bson:"code"`
	BrandCount    int64              `json:"brandCount" bson:"brandCount"`
	MallCount     int64              `json:"mallCount" bson:"mallCount"`
	DistrictCount int64              `json:"districtCount" bson:"districtCount"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
