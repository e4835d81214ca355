// Package uploadhdl chứa HTTP handler cho upload/xóa file ảnh (logo).
package uploadhdl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	basehdl "retail_map/internal/api/base/handler"
	uploaddto "retail_map/internal/api/upload/dto"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Các đuôi file ảnh được phép upload
var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Content-Type tương ứng của part multipart
var allowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// isAllowedImage kiểm tra cả đuôi file lẫn Content-Type của part multipart,
// cả hai cùng phải thuộc nhóm ảnh cho phép
func isAllowedImage(filename, contentType string) bool {
	if !allowedImageExts[strings.ToLower(filepath.Ext(filename))] {
		return false
	}
	mime := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return allowedImageMimeTypes[mime]
}

// UploadHandler xử lý upload và xóa file ảnh
type UploadHandler struct {
	uploadDir string
	maxSize   int64
	publicURL string
}

// NewUploadHandler tạo mới UploadHandler, đảm bảo thư mục upload tồn tại
func NewUploadHandler() (*UploadHandler, error) {
	cfg := global.MongoDB_ServerConfig
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", cfg.UploadDir, err)
	}

	return &UploadHandler{
		uploadDir: cfg.UploadDir,
		maxSize:   cfg.UploadMaxSize,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// UploadImage xử lý POST /api/upload/image - nhận multipart field "image",
// lưu với tên logo-<uuid><ext> để không đụng file cũ
func (h *UploadHandler) UploadImage(c fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Thiếu file ảnh (field 'image')", common.StatusBadRequest, nil))
	}

	if !isAllowedImage(file.Filename, file.Header.Get("Content-Type")) {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Chỉ chấp nhận file ảnh jpeg, jpg, png, gif, webp", common.StatusBadRequest, nil))
	}

	if file.Size > h.maxSize {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("File vượt quá kích thước cho phép (%d byte)", h.maxSize), common.StatusBadRequest, nil))
	}

	filename := "logo-" + uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	savePath := filepath.Join(h.uploadDir, filename)
	if err := c.SaveFile(file, savePath); err != nil {
		logrus.WithFields(logrus.Fields{"filename": filename, "error": err.Error()}).Error("UploadImage: Lỗi lưu file")
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err))
	}

	url := "/uploads/" + filename
	return basehdl.SuccessResponseWithMessage(c, "Upload thành công", fiber.Map{
		"filename":     filename,
		"originalName": file.Filename,
		"size":         file.Size,
		"url":          url,
		"fullUrl":      h.publicURL + url,
	})
}

// DeleteImage xử lý POST /api/upload/delete - xóa file theo url đã trả lúc upload.
// Chỉ nhận tên file (basename) để không cho xóa ra ngoài thư mục upload.
func (h *UploadHandler) DeleteImage(c fiber.Ctx) error {
	input := new(uploaddto.UploadDeleteInput)
	if err := json.Unmarshal(c.Body(), input); err != nil {
		return basehdl.ErrorResponse(c, common.ErrInvalidFormat)
	}
	if input.URL == "" {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Thiếu url file cần xóa", common.StatusBadRequest, nil))
	}

	filename := filepath.Base(input.URL)
	if filename == "." || filename == "/" || filename == ".." {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Url file không hợp lệ", common.StatusBadRequest, nil))
	}

	path := filepath.Join(h.uploadDir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeBusinessState, "Không tìm thấy file", common.StatusNotFound, nil))
	}

	if err := os.Remove(path); err != nil {
		logrus.WithFields(logrus.Fields{"filename": filename, "error": err.Error()}).Error("DeleteImage: Lỗi xóa file")
		return basehdl.ErrorResponse(c, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err))
	}

	return basehdl.SuccessResponseWithMessage(c, "Xóa file thành công", nil)
}
