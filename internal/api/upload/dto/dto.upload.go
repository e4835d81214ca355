// Package uploaddto chứa DTO cho domain upload file.
package uploaddto

// UploadDeleteInput dữ liệu đầu vào khi xóa file đã upload
type UploadDeleteInput struct {
	URL string `json:"url" validate:"required"`
}
