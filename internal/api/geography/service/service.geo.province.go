// Package geosvc - service địa lý hành chính (Province/City/District).
package geosvc

import (
	"context"
	"fmt"

	basesvc "retail_map/internal/api/base/service"
	models "retail_map/internal/api/geography/models"
	geodto "retail_map/internal/api/geography/dto"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProvinceService là service quản lý tỉnh/thành
type ProvinceService struct {
	*basesvc.BaseServiceMongoImpl[models.Province]
	cityService *basesvc.BaseServiceMongoImpl[models.City]
}

// NewProvinceService tạo mới ProvinceService
func NewProvinceService() (*ProvinceService, error) {
	provinceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Provinces)
	if !exist {
		return nil, fmt.Errorf("failed to get provinces collection: %v", common.ErrNotFound)
	}
	cityCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cities)
	if !exist {
		return nil, fmt.Errorf("failed to get cities collection: %v", common.ErrNotFound)
	}

	return &ProvinceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Province](provinceCollection),
		cityService:          basesvc.NewBaseServiceMongo[models.City](cityCollection),
	}, nil
}

// Create tạo tỉnh/thành mới. Trùng name hoặc code trả 409 nhờ unique index.
func (s *ProvinceService) Create(ctx context.Context, input *geodto.ProvinceCreateInput) (*models.Province, error) {
	province := models.Province{
		Name:     input.Name,
		Code:     input.Code,
		IsActive: true,
	}
	if input.IsActive != nil {
		province.IsActive = *input.IsActive
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, province)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete xóa tỉnh/thành. Chặn với 409 khi còn city thuộc tỉnh này.
func (s *ProvinceService) Delete(ctx context.Context, id primitive.ObjectID) error {
	childCount, err := s.cityService.CountDocuments(ctx, bson.M{"province": id})
	if err != nil {
		return err
	}
	if childCount > 0 {
		logrus.WithFields(logrus.Fields{"province_id": id.Hex(), "city_count": childCount}).Warn("Delete province: Còn city tham chiếu")
		return common.ErrHasChildren
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
