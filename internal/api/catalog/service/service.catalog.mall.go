package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "retail_map/internal/api/base/service"
	basemodels "retail_map/internal/api/base/models"
	catalogdto "retail_map/internal/api/catalog/dto"
	models "retail_map/internal/api/catalog/models"
	geomodels "retail_map/internal/api/geography/models"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MallService là service quản lý trung tâm thương mại
type MallService struct {
	*basesvc.BaseServiceMongoImpl[models.Mall]
	provinceService      *basesvc.BaseServiceMongoImpl[geomodels.Province]
	cityService          *basesvc.BaseServiceMongoImpl[geomodels.City]
	districtService      *basesvc.BaseServiceMongoImpl[geomodels.District]
	brandStoreCollection *mongo.Collection
}

// MallBrandItem một brand hiện diện trong mall kèm số điểm bán
type MallBrandItem struct {
	ID         primitive.ObjectID `json:"id" bson:"id"`
	Name       string             `json:"name" bson:"name"`
	Logo       string             `json:"logo,omitempty" bson:"logo,omitempty"`
	Category   string             `json:"category,omitempty" bson:"category,omitempty"`
	Score      float64            `json:"score" bson:"score"`
	StoreCount int64              `json:"storeCount" bson:"storeCount"`
}

// NewMallService tạo mới MallService
func NewMallService() (*MallService, error) {
	mallCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Malls)
	if !exist {
		return nil, fmt.Errorf("failed to get malls collection: %v", common.ErrNotFound)
	}
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
	brandStoreCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BrandStores)
	if !exist {
		return nil, fmt.Errorf("failed to get brand_stores collection: %v", common.ErrNotFound)
	}

	return &MallService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Mall](mallCollection),
		provinceService:      basesvc.NewBaseServiceMongo[geomodels.Province](provinceCollection),
		cityService:          basesvc.NewBaseServiceMongo[geomodels.City](cityCollection),
		districtService:      basesvc.NewBaseServiceMongo[geomodels.District](districtCollection),
		brandStoreCollection: brandStoreCollection,
	}, nil
}

// Create tạo mall mới sau khi kiểm tra chuỗi địa lý: city phải thuộc province,
// district (nếu có) phải thuộc city. Tạo thành công tăng mallCount các cấp cha.
func (s *MallService) Create(ctx context.Context, input *catalogdto.MallCreateInput) (*models.Mall, error) {
	provinceID, err := primitive.ObjectIDFromHex(input.Province)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "province không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
	}
	cityID, err := primitive.ObjectIDFromHex(input.City)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "city không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
	}

	city, err := s.cityService.FindOneById(ctx, cityID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Không tìm thấy city", common.StatusBadRequest, nil)
		}
		return nil, err
	}
	if city.Province != provinceID {
		return nil, common.NewError(common.ErrCodeValidationInput, "City không thuộc province đã chọn", common.StatusBadRequest, nil)
	}

	var districtID *primitive.ObjectID
	if input.District != "" {
		id, err := primitive.ObjectIDFromHex(input.District)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, "district không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
		}
		district, err := s.districtService.FindOneById(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.NewError(common.ErrCodeValidationInput, "Không tìm thấy district", common.StatusBadRequest, nil)
			}
			return nil, err
		}
		if district.City != cityID {
			return nil, common.NewError(common.ErrCodeValidationInput, "District không thuộc city đã chọn", common.StatusBadRequest, nil)
		}
		districtID = &id
	}

	mall := models.Mall{
		Name:          input.Name,
		Code:          input.Code,
		Description:   input.Description,
		Logo:          input.Logo,
		Website:       input.Website,
		Province:      provinceID,
		City:          cityID,
		District:      districtID,
		Address:       input.Address,
		ContactEmail:  input.ContactEmail,
		ContactPhone:  input.ContactPhone,
		FloorCount:    input.FloorCount,
		TotalArea:     input.TotalArea,
		ParkingSpaces: input.ParkingSpaces,
		OpeningHours:  input.OpeningHours,
		IsActive:      true,
	}
	if input.IsActive != nil {
		mall.IsActive = *input.IsActive
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, mall)
	if err != nil {
		return nil, err
	}

	s.adjustMallCounts(ctx, created.Province, created.City, created.District, 1)
	return &created, nil
}

// Delete xóa mall. Chặn với 409 khi mall còn điểm bán trong brand_stores.
func (s *MallService) Delete(ctx context.Context, id primitive.ObjectID) error {
	mall, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	storeCount, err := s.brandStoreCollection.CountDocuments(ctx, bson.M{"mall": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if storeCount > 0 {
		logrus.WithFields(logrus.Fields{"mall_id": id.Hex(), "store_count": storeCount}).Warn("Delete mall: Còn điểm bán tham chiếu")
		return common.ErrHasChildren
	}

	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		return err
	}

	s.adjustMallCounts(ctx, mall.Province, mall.City, mall.District, -1)
	return nil
}

// adjustMallCounts tăng/giảm mallCount denormalize của các cấp địa lý cha.
// Lỗi chỉ log warning vì counter có thể sửa bằng recompute-counts.
func (s *MallService) adjustMallCounts(ctx context.Context, provinceID, cityID primitive.ObjectID, districtID *primitive.ObjectID, delta int64) {
	if _, err := s.provinceService.UpdateById(ctx, provinceID, &basesvc.UpdateData{Inc: map[string]interface{}{"mallCount": delta}}); err != nil {
		logrus.WithFields(logrus.Fields{"province_id": provinceID.Hex(), "error": err.Error()}).Warn("adjustMallCounts: Lỗi cập nhật mallCount của province")
	}
	if _, err := s.cityService.UpdateById(ctx, cityID, &basesvc.UpdateData{Inc: map[string]interface{}{"mallCount": delta}}); err != nil {
		logrus.WithFields(logrus.Fields{"city_id": cityID.Hex(), "error": err.Error()}).Warn("adjustMallCounts: Lỗi cập nhật mallCount của city")
	}
	if districtID != nil {
		if _, err := s.districtService.UpdateById(ctx, *districtID, &basesvc.UpdateData{Inc: map[string]interface{}{"mallCount": delta}}); err != nil {
			logrus.WithFields(logrus.Fields{"district_id": districtID.Hex(), "error": err.Error()}).Warn("adjustMallCounts: Lỗi cập nhật mallCount của district")
		}
	}
}

// FindBrandsInMall trả danh sách brand có mặt trong một mall kèm số điểm bán
// của từng brand, phân trang và tìm theo tên.
func (s *MallService) FindBrandsInMall(ctx context.Context, mallID primitive.ObjectID, query *catalogdto.MallBrandsQuery) (*basemodels.PaginateResult[MallBrandItem], error) {
	// Kiểm tra mall tồn tại trước khi aggregate
	if _, err := s.BaseServiceMongoImpl.FindOneById(ctx, mallID); err != nil {
		return nil, err
	}

	basePipeline := []bson.M{
		{"$match": bson.M{"mall": mallID, "isActive": true}},
		{"$group": bson.M{
			"_id":        "$brand",
			"storeCount": bson.M{"$sum": 1},
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Brands,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "brand",
		}},
		{"$unwind": "$brand"},
	}
	if query.Search != "" {
		basePipeline = append(basePipeline, bson.M{
			"$match": bson.M{"brand.name": primitive.Regex{Pattern: query.Search, Options: "i"}},
		})
	}

	// Đếm tổng trước khi phân trang
	countPipeline := append(append([]bson.M{}, basePipeline...), bson.M{"$count": "total"})
	var countResult []struct {
		Total int64 `bson:"total"`
	}
	cursor, err := s.brandStoreCollection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if err := cursor.All(ctx, &countResult); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var total int64
	if len(countResult) > 0 {
		total = countResult[0].Total
	}

	dataPipeline := append(append([]bson.M{}, basePipeline...),
		bson.M{"$project": bson.M{
			"_id":        0,
			"id":         "$brand._id",
			"name":       "$brand.name",
			"logo":       "$brand.logo",
			"category":   "$brand.category",
			"score":      "$brand.score",
			"storeCount": 1,
		}},
		bson.M{"$sort": bson.M{"name": 1}},
	)
	if query.Limit > 0 {
		dataPipeline = append(dataPipeline,
			bson.M{"$skip": (query.Page - 1) * query.Limit},
			bson.M{"$limit": query.Limit},
		)
	}

	items := []MallBrandItem{}
	cursor, err = s.brandStoreCollection.Aggregate(ctx, dataPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return &basemodels.PaginateResult[MallBrandItem]{
		Items:     items,
		Page:      query.Page,
		Limit:     query.Limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: basesvc.CalcTotalPages(total, query.Limit),
	}, nil
}
