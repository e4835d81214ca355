package geosvc

import (
	"context"
	"fmt"

	basesvc "retail_map/internal/api/base/service"
	models "retail_map/internal/api/geography/models"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecomputeService tính lại toàn bộ counter denormalize (brandCount/mallCount/
// districtCount) của ba cấp địa lý từ dữ liệu con thực tế. Idempotent:
// chạy nhiều lần cho cùng kết quả.
type RecomputeService struct {
	provinceService      *basesvc.BaseServiceMongoImpl[models.Province]
	cityService          *basesvc.BaseServiceMongoImpl[models.City]
	districtService      *basesvc.BaseServiceMongoImpl[models.District]
	mallCollection       *mongo.Collection
	brandStoreCollection *mongo.Collection
}

// RecomputeResult số lượng document đã cập nhật cho mỗi cấp
type RecomputeResult struct {
	Provinces int64 `json:"provinces"`
	Cities    int64 `json:"cities"`
	Districts int64 `json:"districts"`
}

// NewRecomputeService tạo mới RecomputeService
func NewRecomputeService() (*RecomputeService, error) {
	provinceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Provinces)
	if !exist {
		return nil, fmt.Errorf("failed to get provinces collection: %v", common.ErrNotFound)
	}
	cityCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cities)
	if !exist {
		return nil, fmt.Errorf("failed to get cities collection: %v", common.ErrNotFound)
	}
	districtCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Districts)
	if !exist {
		return nil, fmt.Errorf("failed to get districts collection: %v", common.ErrNotFound)
	}
	mallCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Malls)
	if !exist {
		return nil, fmt.Errorf("failed to get malls collection: %v", common.ErrNotFound)
	}
	brandStoreCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BrandStores)
	if !exist {
		return nil, fmt.Errorf("failed to get brand_stores collection: %v", common.ErrNotFound)
	}

	return &RecomputeService{
		provinceService:      basesvc.NewBaseServiceMongo[models.Province](provinceCollection),
		cityService:          basesvc.NewBaseServiceMongo[models.City](cityCollection),
		districtService:      basesvc.NewBaseServiceMongo[models.District](districtCollection),
		mallCollection:       mallCollection,
		brandStoreCollection: brandStoreCollection,
	}, nil
}

// liveCounts đếm số mall và số brand khác nhau (qua brand_stores) trong một
// phạm vi địa lý. geoField là "province", "city" hoặc "district".
func (s *RecomputeService) liveCounts(ctx context.Context, geoField string, geoID primitive.ObjectID) (mallCount int64, brandCount int64, err error) {
	mallCount, err = s.mallCollection.CountDocuments(ctx, bson.M{geoField: geoID})
	if err != nil {
		return 0, 0, common.ConvertMongoError(err)
	}

	brands, err := s.brandStoreCollection.Distinct(ctx, "brand", bson.M{geoField: geoID})
	if err != nil {
		return 0, 0, common.ConvertMongoError(err)
	}

	return mallCount, int64(len(brands)), nil
}

// RecomputeCounts tính lại counter cho toàn bộ ba cấp địa lý.
func (s *RecomputeService) RecomputeCounts(ctx context.Context) (*RecomputeResult, error) {
	result := &RecomputeResult{}

	provinces, err := s.provinceService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	for _, p := range provinces {
		districtCount, err := s.districtService.CountDocuments(ctx, bson.M{"province": p.ID})
		if err != nil {
			return nil, err
		}
		mallCount, brandCount, err := s.liveCounts(ctx, "province", p.ID)
		if err != nil {
			return nil, err
		}
		update := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"districtCount": districtCount,
				"mallCount":     mallCount,
				"brandCount":    brandCount,
			},
		}
		if _, err := s.provinceService.UpdateById(ctx, p.ID, update); err != nil {
			return nil, err
		}
		result.Provinces++
	}

	cities, err := s.cityService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	for _, c := range cities {
		districtCount, err := s.districtService.CountDocuments(ctx, bson.M{"city": c.ID})
		if err != nil {
			return nil, err
		}
		mallCount, brandCount, err := s.liveCounts(ctx, "city", c.ID)
		if err != nil {
			return nil, err
		}
		update := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"districtCount": districtCount,
				"mallCount":     mallCount,
				"brandCount":    brandCount,
			},
		}
		if _, err := s.cityService.UpdateById(ctx, c.ID, update); err != nil {
			return nil, err
		}
		result.Cities++
	}

	districts, err := s.districtService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	for _, d := range districts {
		mallCount, brandCount, err := s.liveCounts(ctx, "district", d.ID)
		if err != nil {
			return nil, err
		}
		update := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"mallCount":  mallCount,
				"brandCount": brandCount,
			},
		}
		if _, err := s.districtService.UpdateById(ctx, d.ID, update); err != nil {
			return nil, err
		}
		result.Districts++
	}

	logrus.WithFields(logrus.Fields{
		"provinces": result.Provinces,
		"cities":    result.Cities,
		"districts": result.Districts,
	}).Info("RecomputeCounts: Đã tính lại counter địa lý")

	return result, nil
}
