package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// District đại diện cho một phường/quận/huyện thuộc city.
// Province được denormalize từ city cha để query theo tỉnh không cần join.
type District struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	City       primitive.ObjectID `json:"city" bson:"city" index:"compound:city_name_unique"`
	Name       string             `json:"name" bson:"name" index:"compound:city_name_unique"`
	Code       string             `json:"code" bson:"code"`
	Province   primitive.ObjectID `json:"province" bson:"province" index:"single"`
	BrandCount int64              `json:"brandCount" bson:"brandCount"`
	MallCount  int64              `json:"mallCount" bson:"mallCount"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
