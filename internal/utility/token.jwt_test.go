// Package utility - Test vòng đời JWT và hash mật khẩu.
package utility

import (
	"testing"

	"retail_map/internal/common"
)

func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"
	userID := "507f1f77bcf86cd799439011"

	token, err := CreateToken(secret, userID, "user@example.com", "admin", 1)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("CreateToken trả về token rỗng")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken trả về lỗi: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %q, muốn %q", claims.UserID, userID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, muốn %q", claims.Email, "user@example.com")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, muốn %q", claims.Role, "admin")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", "u1", "a@b.c", "user", 1)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	_, err = ParseToken("secret-b", token)
	if err != common.ErrTokenInvalid {
		t.Errorf("ParseToken với secret sai phải trả ErrTokenInvalid, nhận %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	// expiresHours âm tạo token đã hết hạn
	token, err := CreateToken("secret", "u1", "a@b.c", "user", -1)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	_, err = ParseToken("secret", token)
	if err != common.ErrTokenExpired {
		t.Errorf("ParseToken với token hết hạn phải trả ErrTokenExpired, nhận %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "không.phải.jwt"); err != common.ErrTokenInvalid {
		t.Errorf("ParseToken với chuỗi rác phải trả ErrTokenInvalid, nhận %v", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("mat-khau-123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	if hash == "mat-khau-123" {
		t.Fatal("HashPassword không được trả về plaintext")
	}

	if err := CheckPassword(hash, "mat-khau-123"); err != nil {
		t.Errorf("CheckPassword với mật khẩu đúng phải pass, nhận %v", err)
	}
	if err := CheckPassword(hash, "mat-khau-sai"); err == nil {
		t.Error("CheckPassword với mật khẩu sai phải trả lỗi")
	}
}
