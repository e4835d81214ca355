package utility

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"retail_map/internal/common"
)

// JwtClaims là payload của access token.
// Chứa thông tin định danh người dùng để middleware xác thực sử dụng.
type JwtClaims struct {
	UserID string `json:"userId"` // ID của người dùng (hex ObjectID)
	Email  string `json:"email"`  // Email đăng nhập
	Role   string `json:"role"`   // Vai trò: admin | user
	jwt.StandardClaims
}

// CreateToken tạo JWT access token cho người dùng.
// @params - secret ký token, thông tin người dùng, thời hạn (giờ)
// @returns - chuỗi token đã ký và lỗi nếu có
func CreateToken(secret string, userID string, email string, role string, expiresHours int) (string, error) {
	now := time.Now()
	claims := JwtClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(expiresHours) * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("không thể ký token: %w", err)
	}
	return signed, nil
}

// ParseToken giải mã và xác thực JWT access token.
// Trả về claims nếu token hợp lệ, lỗi chuẩn hóa nếu token sai hoặc hết hạn.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
