package utility

import (
	"golang.org/x/crypto/bcrypt"

	"retail_map/internal/common"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword so sánh mật khẩu thô với hash đã lưu.
// Trả về ErrInvalidCredentials nếu không khớp, không tiết lộ lý do cụ thể.
func CheckPassword(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
