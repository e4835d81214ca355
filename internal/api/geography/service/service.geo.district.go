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
	"go.mongodb.org/mongo-driver/mongo"
)

// DistrictService là service quản lý district (phường/quận/huyện)
type DistrictService struct {
	*basesvc.BaseServiceMongoImpl[models.District]
	cityService     *basesvc.BaseServiceMongoImpl[models.City]
	provinceService *basesvc.BaseServiceMongoImpl[models.Province]
	mallCollection  *mongo.Collection
}

// NewDistrictService tạo mới DistrictService
func NewDistrictService() (*DistrictService, error) {
	districtCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Districts)
	if !exist {
		return nil, fmt.Errorf("failed to get districts collection: %v", common.ErrNotFound)
	}
	cityCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cities)
	if !exist {
		return nil, fmt.Errorf("failed to get cities collection: %v", common.ErrNotFound)
	}
	provinceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Provinces)
	if !exist {
		return nil, fmt.Errorf("failed to get provinces collection: %v", common.ErrNotFound)
	}
	mallCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Malls)
	if !exist {
		return nil, fmt.Errorf("failed to get malls collection: %v", common.ErrNotFound)
	}

	return &DistrictService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.District](districtCollection),
		cityService:          basesvc.NewBaseServiceMongo[models.City](cityCollection),
		provinceService:      basesvc.NewBaseServiceMongo[models.Province](provinceCollection),
		mallCollection:       mallCollection,
	}, nil
}

// Create tạo district mới. Province được denormalize từ city cha;
// nếu client truyền province thì phải khớp với province của city (400 khi lệch).
// Tạo thành công sẽ tăng districtCount của city và province.
func (s *DistrictService) Create(ctx context.Context, input *geodto.DistrictCreateInput) (*models.District, error) {
	cityID, err := primitive.ObjectIDFromHex(input.City)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "city không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
	}

	city, err := s.cityService.FindOneById(ctx, cityID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Không tìm thấy city cha", common.StatusBadRequest, nil)
		}
		return nil, err
	}

	if input.Province != "" {
		provinceID, err := primitive.ObjectIDFromHex(input.Province)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, "province không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
		}
		if provinceID != city.Province {
			return nil, common.NewError(common.ErrCodeValidationInput, "Province không khớp với province của city cha", common.StatusBadRequest, nil)
		}
	}

	district := models.District{
		Name:     input.Name,
		Code:     input.Code,
		City:     cityID,
		Province: city.Province,
		IsActive: true,
	}
	if input.IsActive != nil {
		district.IsActive = *input.IsActive
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, district)
	if err != nil {
		return nil, err
	}

	s.adjustParentCounts(ctx, created.City, created.Province, 1)
	return &created, nil
}

// Delete xóa district. Chặn với 409 khi còn mall gắn vào district này.
func (s *DistrictService) Delete(ctx context.Context, id primitive.ObjectID) error {
	district, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	mallCount, err := s.mallCollection.CountDocuments(ctx, bson.M{"district": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if mallCount > 0 {
		logrus.WithFields(logrus.Fields{"district_id": id.Hex(), "mall_count": mallCount}).Warn("Delete district: Còn mall tham chiếu")
		return common.ErrHasChildren
	}

	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		return err
	}

	s.adjustParentCounts(ctx, district.City, district.Province, -1)
	return nil
}

// adjustParentCounts tăng/giảm districtCount của city và province cha.
// Counter là dữ liệu denormalize, lệch có thể sửa bằng recompute-counts
// nên lỗi ở đây chỉ log warning chứ không fail request.
func (s *DistrictService) adjustParentCounts(ctx context.Context, cityID, provinceID primitive.ObjectID, delta int64) {
	inc := &basesvc.UpdateData{
		Inc: map[string]interface{}{"districtCount": delta},
	}
	if _, err := s.cityService.UpdateById(ctx, cityID, inc); err != nil {
		logrus.WithFields(logrus.Fields{"city_id": cityID.Hex(), "error": err.Error()}).Warn("adjustParentCounts: Lỗi cập nhật districtCount của city")
	}
	incProvince := &basesvc.UpdateData{
		Inc: map[string]interface{}{"districtCount": delta},
	}
	if _, err := s.provinceService.UpdateById(ctx, provinceID, incProvince); err != nil {
		logrus.WithFields(logrus.Fields{"province_id": provinceID.Hex(), "error": err.Error()}).Warn("adjustParentCounts: Lỗi cập nhật districtCount của province")
	}
}
