// Package uploadhdl - Test kiểm tra file ảnh theo đuôi file và Content-Type.
package uploadhdl

import "testing"

func TestIsAllowedImage(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		want        bool
	}{
		{"png hợp lệ", "logo.png", "image/png", true},
		{"jpg hợp lệ", "anh.JPG", "image/jpeg", true},
		{"webp kèm charset", "logo.webp", "image/webp; charset=binary", true},
		{"đuôi sai", "script.js", "image/png", false},
		{"content-type sai", "logo.png", "application/octet-stream", false},
		{"thiếu content-type", "logo.png", "", false},
		{"đổi tên file thực thi", "virus.exe.png", "application/x-msdownload", false},
		{"không có đuôi", "logo", "image/png", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isAllowedImage(tc.filename, tc.contentType); got != tc.want {
				t.Errorf("isAllowedImage(%q, %q) = %v, muốn %v", tc.filename, tc.contentType, got, tc.want)
			}
		})
	}
}
