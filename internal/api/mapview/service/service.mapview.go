// Package mapsvc - service truy vấn/thống kê phục vụ client bản đồ.
// Toàn bộ endpoint ở đây là read-only, tổng hợp trên dữ liệu do các domain
// khác ghi (geography/catalog/placement).
package mapsvc

import (
	"context"
	"fmt"

	basemodels "retail_map/internal/api/base/models"
	basesvc "retail_map/internal/api/base/service"
	catalogmodels "retail_map/internal/api/catalog/models"
	geomodels "retail_map/internal/api/geography/models"
	mapdto "retail_map/internal/api/mapview/dto"
	placementmodels "retail_map/internal/api/placement/models"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MapService là service truy vấn dữ liệu bản đồ
type MapService struct {
	provinceService   *basesvc.BaseServiceMongoImpl[geomodels.Province]
	cityService       *basesvc.BaseServiceMongoImpl[geomodels.City]
	districtService   *basesvc.BaseServiceMongoImpl[geomodels.District]
	brandService      *basesvc.BaseServiceMongoImpl[catalogmodels.Brand]
	mallService       *basesvc.BaseServiceMongoImpl[catalogmodels.Mall]
	brandStoreService *basesvc.BaseServiceMongoImpl[placementmodels.BrandStore]
}

// NationalSummary tổng hợp counter toàn quốc
type NationalSummary struct {
	ProvinceCount int64 `json:"provinceCount" bson:"provinceCount"`
	BrandCount    int64 `json:"brandCount" bson:"brandCount"`
	MallCount     int64 `json:"mallCount" bson:"mallCount"`
	DistrictCount int64 `json:"districtCount" bson:"districtCount"`
}

// ProvinceDetail province kèm danh sách city con
type ProvinceDetail struct {
	geomodels.Province
	Cities []geomodels.City `json:"cities"`
}

// CityDetail city kèm danh sách district con
type CityDetail struct {
	geomodels.City
	Districts []geomodels.District `json:"districts"`
}

// BrandWithStoreCount brand kèm số điểm bán thực tế
type BrandWithStoreCount struct {
	catalogmodels.Brand `bson:",inline"`
	StoreCount          int64 `json:"storeCount" bson:"storeCount"`
}

// RegionStatistics thống kê nhanh trong một khu vực
type RegionStatistics struct {
	BrandCount int64 `json:"brandCount"`
	MallCount  int64 `json:"mallCount"`
	StoreCount int64 `json:"storeCount"`
}

// NewMapService tạo mới MapService
func NewMapService() (*MapService, error) {
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
	brandCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("failed to get brands collection: %v", common.ErrNotFound)
	}
	mallCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Malls)
	if !exist {
		return nil, fmt.Errorf("failed to get malls collection: %v", common.ErrNotFound)
	}
	brandStoreCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BrandStores)
	if !exist {
		return nil, fmt.Errorf("failed to get brand_stores collection: %v", common.ErrNotFound)
	}

	return &MapService{
		provinceService:   basesvc.NewBaseServiceMongo[geomodels.Province](provinceCollection),
		cityService:       basesvc.NewBaseServiceMongo[geomodels.City](cityCollection),
		districtService:   basesvc.NewBaseServiceMongo[geomodels.District](districtCollection),
		brandService:      basesvc.NewBaseServiceMongo[catalogmodels.Brand](brandCollection),
		mallService:       basesvc.NewBaseServiceMongo[catalogmodels.Mall](mallCollection),
		brandStoreService: basesvc.NewBaseServiceMongo[placementmodels.BrandStore](brandStoreCollection),
	}, nil
}

// parseOptionalID chuyển hex rỗng/hợp lệ thành *ObjectID, lỗi khi hex sai
func parseOptionalID(field, hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("%s không phải ObjectID hợp lệ", field), common.StatusBadRequest, nil)
	}
	return &id, nil
}

// geoFilter dựng filter địa lý từ query (các field bỏ trống được bỏ qua)
func geoFilter(provinceID, cityID, districtID string) (bson.M, error) {
	filter := bson.M{}
	fields := []struct {
		name string
		hex  string
	}{
		{"province", provinceID},
		{"city", cityID},
		{"district", districtID},
	}
	for _, f := range fields {
		id, err := parseOptionalID(f.name+"Id", f.hex)
		if err != nil {
			return nil, err
		}
		if id != nil {
			filter[f.name] = *id
		}
	}
	return filter, nil
}

// activeStoreMatch dựng match trên brand_stores chỉ tính điểm bán đang
// hoạt động, giữ nguyên các điều kiện cho trước (không sửa map đầu vào)
func activeStoreMatch(extra bson.M) bson.M {
	match := bson.M{"isActive": true}
	for k, v := range extra {
		match[k] = v
	}
	return match
}

// National tổng hợp counter denormalize trên các province đang active
func (s *MapService) National(ctx context.Context) (*NationalSummary, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"isActive": true}},
		{"$group": bson.M{
			"_id":           nil,
			"provinceCount": bson.M{"$sum": 1},
			"brandCount":    bson.M{"$sum": "$brandCount"},
			"mallCount":     bson.M{"$sum": "$mallCount"},
			"districtCount": bson.M{"$sum": "$districtCount"},
		}},
	}

	results := []NationalSummary{}
	if err := s.provinceService.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &NationalSummary{}, nil
	}
	return &results[0], nil
}

// ListProvinces danh sách province active, tìm theo tên, sort tên
func (s *MapService) ListProvinces(ctx context.Context, query *mapdto.MapListQuery) (*basemodels.PaginateResult[geomodels.Province], error) {
	filter := bson.M{"isActive": true}
	if query.Search != "" {
		filter["name"] = primitive.Regex{Pattern: query.Search, Options: "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.provinceService.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
}

// GetProvince chi tiết một province kèm các city con
func (s *MapService) GetProvince(ctx context.Context, id primitive.ObjectID) (*ProvinceDetail, error) {
	province, err := s.provinceService.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	cities, err := s.cityService.Find(ctx, bson.M{"province": id, "isActive": true},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return &ProvinceDetail{Province: province, Cities: cities}, nil
}

// ListCities danh sách city active, lọc theo province, tìm theo tên
func (s *MapService) ListCities(ctx context.Context, query *mapdto.MapListQuery) (*basemodels.PaginateResult[geomodels.City], error) {
	filter := bson.M{"isActive": true}
	provinceID, err := parseOptionalID("provinceId", query.ProvinceID)
	if err != nil {
		return nil, err
	}
	if provinceID != nil {
		filter["province"] = *provinceID
	}
	if query.Search != "" {
		filter["name"] = primitive.Regex{Pattern: query.Search, Options: "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.cityService.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
}

// GetCity chi tiết một city kèm các district con
func (s *MapService) GetCity(ctx context.Context, id primitive.ObjectID) (*CityDetail, error) {
	city, err := s.cityService.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	districts, err := s.districtService.Find(ctx, bson.M{"city": id, "isActive": true},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return &CityDetail{City: city, Districts: districts}, nil
}

// ListDistricts danh sách district active, lọc theo city/province, tìm theo tên
func (s *MapService) ListDistricts(ctx context.Context, query *mapdto.MapListQuery) (*basemodels.PaginateResult[geomodels.District], error) {
	filter := bson.M{"isActive": true}
	cityID, err := parseOptionalID("cityId", query.CityID)
	if err != nil {
		return nil, err
	}
	if cityID != nil {
		filter["city"] = *cityID
	}
	provinceID, err := parseOptionalID("provinceId", query.ProvinceID)
	if err != nil {
		return nil, err
	}
	if provinceID != nil {
		filter["province"] = *provinceID
	}
	if query.Search != "" {
		filter["name"] = primitive.Regex{Pattern: query.Search, Options: "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.districtService.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
}

// ListBrands danh sách brand active kèm số điểm bán thực tế từng brand
func (s *MapService) ListBrands(ctx context.Context, query *mapdto.MapListQuery) (*basemodels.PaginateResult[BrandWithStoreCount], error) {
	filter := bson.M{"isActive": true}
	if query.Search != "" {
		filter["name"] = primitive.Regex{Pattern: query.Search, Options: "i"}
	}

	total, err := s.brandService.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": filter},
		{"$sort": bson.M{"name": 1}},
	}
	if query.Limit > 0 {
		pipeline = append(pipeline,
			bson.M{"$skip": (query.Page - 1) * query.Limit},
			bson.M{"$limit": query.Limit},
		)
	}
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from": global.MongoDB_ColNames.BrandStores,
			"let":  bson.M{"brandId": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{
					"isActive": true,
					"$expr":    bson.M{"$eq": bson.A{"$brand", "$$brandId"}},
				}},
			},
			"as": "stores",
		}},
		bson.M{"$addFields": bson.M{"storeCount": bson.M{"$size": "$stores"}}},
		bson.M{"$project": bson.M{"stores": 0}},
	)

	items := []BrandWithStoreCount{}
	if err := s.brandService.Aggregate(ctx, pipeline, &items); err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[BrandWithStoreCount]{
		Items:     items,
		Page:      query.Page,
		Limit:     query.Limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: basesvc.CalcTotalPages(total, query.Limit),
	}, nil
}

// ListMalls danh sách mall active, lọc theo địa lý, tìm theo tên
func (s *MapService) ListMalls(ctx context.Context, query *mapdto.MapListQuery) (*basemodels.PaginateResult[catalogmodels.Mall], error) {
	filter, err := geoFilter(query.ProvinceID, query.CityID, query.DistrictID)
	if err != nil {
		return nil, err
	}
	filter["isActive"] = true
	if query.Search != "" {
		filter["name"] = primitive.Regex{Pattern: query.Search, Options: "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.mallService.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
}

// Statistics thống kê nhanh trong một khu vực: số mall thực tế, số brand
// khác nhau (qua brand_stores) và tổng số điểm bán. Không truyền khu vực
// sẽ thống kê toàn quốc (brandCount đếm trên catalog).
func (s *MapService) Statistics(ctx context.Context, query *mapdto.StatisticsQuery) (*RegionStatistics, error) {
	filter, err := geoFilter(query.ProvinceID, query.CityID, query.DistrictID)
	if err != nil {
		return nil, err
	}

	stats := &RegionStatistics{}

	mallFilter := bson.M{"isActive": true}
	for k, v := range filter {
		mallFilter[k] = v
	}
	stats.MallCount, err = s.mallService.CountDocuments(ctx, mallFilter)
	if err != nil {
		return nil, err
	}

	stats.StoreCount, err = s.brandStoreService.CountDocuments(ctx, activeStoreMatch(filter))
	if err != nil {
		return nil, err
	}

	if len(filter) == 0 {
		stats.BrandCount, err = s.brandService.CountDocuments(ctx, bson.M{"isActive": true})
		if err != nil {
			return nil, err
		}
	} else {
		brands, err := s.brandStoreService.Distinct(ctx, "brand", activeStoreMatch(filter))
		if err != nil {
			return nil, err
		}
		stats.BrandCount = int64(len(brands))
	}

	return stats, nil
}
