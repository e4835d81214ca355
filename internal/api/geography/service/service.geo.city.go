package geosvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "retail_map/internal/api/base/service"
	geodto "retail_map/internal/api/geography/dto"
	models "retail_map/internal/api/geography/models"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CityService là service quản lý city (quận/thành phố thuộc tỉnh)
type CityService struct {
	*basesvc.BaseServiceMongoImpl[models.City]
	provinceService *basesvc.BaseServiceMongoImpl[models.Province]
	districtService *basesvc.BaseServiceMongoImpl[models.District]
}

// NewCityService tạo mới CityService
func NewCityService() (*CityService, error) {
	cityCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cities)
	if !exist {
		return nil, fmt.Errorf("failed to get cities collection: %v", common.ErrNotFound)
	}
	provinceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Provinces)
	if !exist {
		return nil, fmt.Errorf("failed to get provinces collection: %v", common.ErrNotFound)
	}
	districtCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Districts)
	if !exist {
		return nil, fmt.Errorf("failed to get districts collection: %v", common.ErrNotFound)
	}

	return &CityService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.City](cityCollection),
		provinceService:      basesvc.NewBaseServiceMongo[models.Province](provinceCollection),
		districtService:      basesvc.NewBaseServiceMongo[models.District](districtCollection),
	}, nil
}

// Create tạo city mới sau khi kiểm tra province cha tồn tại.
// Trùng (province, name) trả 409 nhờ compound unique index.
func (s *CityService) Create(ctx context.Context, input *geodto.CityCreateInput) (*models.City, error) {
	provinceID, err := primitive.ObjectIDFromHex(input.Province)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "province không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
	}

	if _, err := s.provinceService.FindOneById(ctx, provinceID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Không tìm thấy tỉnh/thành cha", common.StatusBadRequest, nil)
		}
		return nil, err
	}

	city := models.City{
		Name:     input.Name,
		Code:     input.Code,
		Province: provinceID,
		IsActive: true,
	}
	if input.IsActive != nil {
		city.IsActive = *input.IsActive
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, city)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete xóa city. Chặn với 409 khi còn district thuộc city này.
func (s *CityService) Delete(ctx context.Context, id primitive.ObjectID) error {
	childCount, err := s.districtService.CountDocuments(ctx, bson.M{"city": id})
	if err != nil {
		return err
	}
	if childCount > 0 {
		logrus.WithFields(logrus.Fields{"city_id": id.Hex(), "district_count": childCount}).Warn("Delete city: Còn district tham chiếu")
		return common.ErrHasChildren
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
