package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mall đại diện cho một trung tâm thương mại.
// District là tùy chọn: mall ở city chưa chia district sẽ không có field này.
type Mall struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string              `json:"name" bson:"name"`
	Code          string              `json:"code,omitempty" bson:"code,omitempty" index:"unique,sparse"`
	Description   string              `json:"description,omitempty" bson:"description,omitempty"`
	Logo          string              `json:"logo,omitempty" bson:"logo,omitempty"`
	Website       string              `json:"website,omitempty" bson:"website,omitempty"`
	Province      primitive.ObjectID  `json:"province" bson:"province" index:"single"`
	City          primitive.ObjectID  `json:"city" bson:"city" index:"single"`
	District      *primitive.ObjectID `json:"district,omitempty" bson:"district,omitempty"`
	Address       string              `json:"address,omitempty" bson:"address,omitempty"`
	ContactEmail  string              `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	ContactPhone  string              `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	FloorCount    int64               `json:"floorCount" bson:"floorCount"`
	TotalArea     float64             `json:"totalArea" bson:"totalArea"` // m2
	ParkingSpaces int64               `json:"parkingSpaces" bson:"parkingSpaces"`
	OpeningHours  string              `json:"openingHours,omitempty" bson:"openingHours,omitempty"`
	IsActive      bool                `json:"isActive" bson:"isActive"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}
