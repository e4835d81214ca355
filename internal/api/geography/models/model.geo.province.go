// Package models - model địa lý hành chính (Province/City/District).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Province đại diện cho một tỉnh/thành phố trực thuộc trung ương.
// Các counter (brandCount/mallCount/districtCount) là dữ liệu denormalize,
// được cập nhật khi ghi dữ liệu con và có thể tính lại qua recompute-counts.
type Province struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" index:"unique"`
	Code          string             `json:"code" bson:"code" index:"unique"`
	BrandCount    int64              `json:"brandCount" bson:"brandCount"`
	MallCount     int64              `json:"mallCount" bson:"mallCount"`
	DistrictCount int64              `json:"districtCount" bson:"districtCount"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
