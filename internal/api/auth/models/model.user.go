// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng của hệ thống.
// Password chỉ lưu bcrypt hash, không bao giờ trả về qua API (json:"-").
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username" index:"unique"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`           // admin | user
	LastLogin int64              `json:"lastLogin" bson:"lastLogin"` // Unix millisecond, 0 khi chưa đăng nhập lần nào
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
