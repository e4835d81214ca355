// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	authdto "retail_map/internal/api/auth/dto"
	models "retail_map/internal/api/auth/models"
	basemodels "retail_map/internal/api/base/models"
	basesvc "retail_map/internal/api/base/service"
	"retail_map/internal/common"
	"retail_map/internal/global"
	"retail_map/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản mới. Username/email trùng sẽ trả lỗi 409
// nhờ unique index trên collection users.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		logrus.WithError(err).Error("Register: Lỗi hash mật khẩu")
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	role := input.Role
	if role == "" {
		role = "user"
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Tên đăng nhập hoặc email đã được sử dụng", common.StatusConflict, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Tạo tài khoản thành công")
	return &created, nil
}

// Login xác thực email + mật khẩu. Mọi trường hợp thất bại (không tồn tại,
// sai mật khẩu, tài khoản bị khóa) đều trả cùng một lỗi 401 để tránh lộ
// thông tin tài khoản nào tồn tại trong hệ thống.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utility.CheckPassword(user.Password, input.Password); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, common.ErrInvalidCredentials
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lastLogin": utility.CurrentTimeInMilli(),
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi cập nhật lastLogin")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updated.ID.Hex(), "email": updated.Email}).Info("Login: Đăng nhập thành công")
	return &updated, nil
}

// IssueToken sinh JWT cho user theo cấu hình thời hạn của server.
func (s *UserService) IssueToken(user *models.User) (string, error) {
	cfg := global.MongoDB_ServerConfig
	return utility.CreateToken(cfg.JwtSecret, user.ID.Hex(), user.Email, user.Role, cfg.JwtExpiresHours)
}

// ListUsers trả danh sách user có phân trang, tìm theo username/email.
// Projection loại bỏ password ngay từ tầng DB.
func (s *UserService) ListUsers(ctx context.Context, query *authdto.UserListQuery) (*basemodels.PaginateResult[models.User], error) {
	filter := bson.M{}
	if query.Search != "" {
		regex := primitive.Regex{Pattern: query.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"username": regex},
			{"email": regex},
		}
	}

	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
}

// UpdateStatus khóa hoặc mở khóa tài khoản theo id.
func (s *UserService) UpdateStatus(ctx context.Context, id primitive.ObjectID, isActive bool) (*models.User, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isActive": isActive,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// EnsureDefaultAdmin tạo tài khoản admin mặc định khi collection users rỗng.
// Idempotent: gọi lại khi đã có user sẽ không làm gì.
func (s *UserService) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		logrus.Warn("EnsureDefaultAdmin: Bỏ qua tạo admin mặc định vì chưa cấu hình ADMIN_PASSWORD")
		return nil
	}

	hash, err := utility.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     "admin",
		IsActive: true,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("EnsureDefaultAdmin: Đã tạo tài khoản admin mặc định")
	return nil
}
