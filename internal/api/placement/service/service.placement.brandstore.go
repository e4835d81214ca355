// Package placementsvc - service điểm bán (BrandStore).
package placementsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	basemodels "retail_map/internal/api/base/models"
	basesvc "retail_map/internal/api/base/service"
	catalogmodels "retail_map/internal/api/catalog/models"
	placementdto "retail_map/internal/api/placement/dto"
	models "retail_map/internal/api/placement/models"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandStoreService là service quản lý điểm bán của brand trong mall
type BrandStoreService struct {
	*basesvc.BaseServiceMongoImpl[models.BrandStore]
	brandService *basesvc.BaseServiceMongoImpl[catalogmodels.Brand]
	mallService  *basesvc.BaseServiceMongoImpl[catalogmodels.Mall]
}

// MallInfo thông tin mall rút gọn đính kèm bản ghi tạo mới
type MallInfo struct {
	ID      primitive.ObjectID `json:"id"`
	Name    string             `json:"name"`
	Address string             `json:"address,omitempty"`
}

// BulkCreatedStore một điểm bán vừa tạo kèm thông tin mall
type BulkCreatedStore struct {
	models.BrandStore
	MallInfo MallInfo `json:"mallInfo"`
}

// BulkCreateResult kết quả tạo điểm bán hàng loạt
type BulkCreateResult struct {
	Created      []BulkCreatedStore  `json:"created"`
	Skipped      int                 `json:"skipped"`
	SkippedMalls []string            `json:"skippedMalls"`
	Total        int                 `json:"total"`
	Existing     []models.BrandStore `json:"existing,omitempty"`
}

// AllSkipped cho biết toàn bộ mall yêu cầu đều đã có điểm bán của brand
func (r *BulkCreateResult) AllSkipped() bool {
	return len(r.Created) == 0 && r.Skipped > 0
}

// BrandStoreListItem một dòng trong danh sách điểm bán, đã join tên hiển thị
type BrandStoreListItem struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Brand        primitive.ObjectID `json:"brand" bson:"brand"`
	BrandName    string             `json:"brandName" bson:"brandName"`
	BrandLogo    string             `json:"brandLogo,omitempty" bson:"brandLogo,omitempty"`
	Mall         primitive.ObjectID `json:"mall" bson:"mall"`
	MallName     string             `json:"mallName" bson:"mallName"`
	ProvinceName string             `json:"provinceName" bson:"provinceName"`
	CityName     string             `json:"cityName" bson:"cityName"`
	DistrictName string             `json:"districtName,omitempty" bson:"districtName,omitempty"`
	StoreName    string             `json:"storeName,omitempty" bson:"storeName,omitempty"`
	StoreAddress string             `json:"storeAddress,omitempty" bson:"storeAddress,omitempty"`
	Floor        string             `json:"floor,omitempty" bson:"floor,omitempty"`
	UnitNumber   string             `json:"unitNumber,omitempty" bson:"unitNumber,omitempty"`
	Score        float64            `json:"score" bson:"score"`
	IsOla        bool               `json:"isOla" bson:"isOla"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
}

// NewBrandStoreService tạo mới BrandStoreService
func NewBrandStoreService() (*BrandStoreService, error) {
	brandStoreCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BrandStores)
	if !exist {
		return nil, fmt.Errorf("failed to get brand_stores collection: %v", common.ErrNotFound)
	}
	brandCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("failed to get brands collection: %v", common.ErrNotFound)
	}
	mallCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Malls)
	if !exist {
		return nil, fmt.Errorf("failed to get malls collection: %v", common.ErrNotFound)
	}

	return &BrandStoreService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.BrandStore](brandStoreCollection),
		brandService:         basesvc.NewBaseServiceMongo[catalogmodels.Brand](brandCollection),
		mallService:          basesvc.NewBaseServiceMongo[catalogmodels.Mall](mallCollection),
	}, nil
}

// parseMallIds tách chuỗi mall id phân cách dấu phẩy thành danh sách ObjectID,
// bỏ phần tử rỗng và dedupe theo thứ tự xuất hiện.
func parseMallIds(malls string) ([]primitive.ObjectID, error) {
	seen := map[primitive.ObjectID]bool{}
	ids := []primitive.ObjectID{}
	for _, part := range strings.Split(malls, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(part)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Mall id '%s' không hợp lệ", part), common.StatusBadRequest, nil)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Danh sách mall không được để trống", common.StatusBadRequest, nil)
	}
	return ids, nil
}

// BulkCreate tạo điểm bán cho một brand trong nhiều mall cùng lúc.
// Mall đã có điểm bán của brand được bỏ qua (không lỗi), phần còn lại tạo mới
// với dữ liệu địa lý copy từ mall. Không rollback khi insert lỗi giữa chừng.
func (s *BrandStoreService) BulkCreate(ctx context.Context, input *placementdto.BrandStoreBulkCreateInput) (*BulkCreateResult, error) {
	brandID, err := primitive.ObjectIDFromHex(input.Brand)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "brand không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
	}
	brand, err := s.brandService.FindOneById(ctx, brandID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Không tìm thấy thương hiệu", common.StatusBadRequest, nil)
		}
		return nil, err
	}

	mallIDs, err := parseMallIds(input.Malls)
	if err != nil {
		return nil, err
	}

	// Phân hoạch mall đã có / chưa có điểm bán của brand này
	existing, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{
		"brand": brandID,
		"mall":  bson.M{"$in": mallIDs},
	}, nil)
	if err != nil {
		return nil, err
	}
	existingMalls := map[primitive.ObjectID]bool{}
	for _, store := range existing {
		existingMalls[store.Mall] = true
	}

	newMallIDs := []primitive.ObjectID{}
	skippedMallIDs := []primitive.ObjectID{}
	for _, id := range mallIDs {
		if existingMalls[id] {
			skippedMallIDs = append(skippedMallIDs, id)
		} else {
			newMallIDs = append(newMallIDs, id)
		}
	}

	// Tên mall bị bỏ qua để client hiển thị cảnh báo
	skippedMallNames := []string{}
	if len(skippedMallIDs) > 0 {
		skippedMallDocs, err := s.mallService.FindManyByIds(ctx, skippedMallIDs)
		if err != nil {
			return nil, err
		}
		for _, m := range skippedMallDocs {
			skippedMallNames = append(skippedMallNames, m.Name)
		}
	}

	result := &BulkCreateResult{
		Created:      []BulkCreatedStore{},
		Skipped:      len(skippedMallIDs),
		SkippedMalls: skippedMallNames,
		Total:        len(mallIDs),
		Existing:     existing,
	}

	if len(newMallIDs) == 0 {
		// Toàn bộ đều trùng: không lỗi, handler trả success=false
		return result, nil
	}

	mallDocs, err := s.mallService.FindManyByIds(ctx, newMallIDs)
	if err != nil {
		return nil, err
	}
	mallByID := map[primitive.ObjectID]catalogmodels.Mall{}
	for _, m := range mallDocs {
		mallByID[m.ID] = m
	}
	for _, id := range newMallIDs {
		if _, ok := mallByID[id]; !ok {
			return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Không tìm thấy mall '%s'", id.Hex()), common.StatusBadRequest, nil)
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	stores := make([]models.BrandStore, 0, len(newMallIDs))
	for _, id := range newMallIDs {
		mall := mallByID[id]
		storeAddress := input.StoreAddress
		if storeAddress == "" {
			storeAddress = mall.Address
		}
		storeName := input.StoreName
		if storeName == "" {
			storeName = brand.Name + " - " + mall.Name
		}
		stores = append(stores, models.BrandStore{
			Brand:        brandID,
			Mall:         mall.ID,
			Province:     mall.Province,
			City:         mall.City,
			District:     mall.District,
			StoreName:    storeName,
			StoreAddress: storeAddress,
			Score:        input.Score,
			IsOla:        input.IsOla,
			Floor:        input.Floor,
			UnitNumber:   input.UnitNumber,
			OpeningHours: input.OpeningHours,
			Phone:        input.Phone,
			IsActive:     isActive,
		})
	}

	created, err := s.BaseServiceMongoImpl.InsertMany(ctx, stores)
	if err != nil {
		logrus.WithFields(logrus.Fields{"brand_id": brandID.Hex(), "error": err.Error()}).Error("BulkCreate: Lỗi insert điểm bán")
		return nil, err
	}

	for _, store := range created {
		mall := mallByID[store.Mall]
		result.Created = append(result.Created, BulkCreatedStore{
			BrandStore: store,
			MallInfo: MallInfo{
				ID:      mall.ID,
				Name:    mall.Name,
				Address: mall.Address,
			},
		})
	}

	logrus.WithFields(logrus.Fields{
		"brand_id": brandID.Hex(),
		"created":  len(result.Created),
		"skipped":  result.Skipped,
	}).Info("BulkCreate: Hoàn tất tạo điểm bán hàng loạt")

	return result, nil
}

// Update cập nhật partial một điểm bán. Khi brand hoặc mall đổi, cặp
// (brand, mall) mới được kiểm tra trùng (loại trừ chính bản ghi này).
// Đổi mall sẽ copy lại dữ liệu địa lý từ mall mới.
func (s *BrandStoreService) Update(ctx context.Context, id primitive.ObjectID, input *placementdto.BrandStoreUpdateInput) (*models.BrandStore, error) {
	current, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	effectiveBrand := current.Brand
	if input.Brand != nil {
		brandID, err := primitive.ObjectIDFromHex(*input.Brand)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, "brand không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
		}
		effectiveBrand = brandID
	}
	effectiveMall := current.Mall
	if input.Mall != nil {
		mallID, err := primitive.ObjectIDFromHex(*input.Mall)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, "mall không phải ObjectID hợp lệ", common.StatusBadRequest, nil)
		}
		effectiveMall = mallID
	}

	if effectiveBrand != current.Brand || effectiveMall != current.Mall {
		duplicated, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{
			"brand": effectiveBrand,
			"mall":  effectiveMall,
			"_id":   bson.M{"$ne": id},
		})
		if err != nil {
			return nil, err
		}
		if duplicated {
			return nil, common.NewError(common.ErrCodeBusinessState, "Thương hiệu đã vào trung tâm này", common.StatusConflict, nil)
		}
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{}}
	update.Set["brand"] = effectiveBrand
	update.Set["mall"] = effectiveMall

	if effectiveMall != current.Mall {
		mall, err := s.mallService.FindOneById(ctx, effectiveMall)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.NewError(common.ErrCodeValidationInput, "Không tìm thấy mall", common.StatusBadRequest, nil)
			}
			return nil, err
		}
		update.Set["province"] = mall.Province
		update.Set["city"] = mall.City
		if mall.District != nil {
			update.Set["district"] = *mall.District
		} else {
			update.Unset = map[string]interface{}{"district": ""}
		}
	}

	if input.StoreName != nil {
		update.Set["storeName"] = *input.StoreName
	}
	if input.StoreAddress != nil {
		update.Set["storeAddress"] = *input.StoreAddress
	}
	if input.Score != nil {
		update.Set["score"] = *input.Score
	}
	if input.IsOla != nil {
		update.Set["isOla"] = *input.IsOla
	}
	if input.Floor != nil {
		update.Set["floor"] = *input.Floor
	}
	if input.UnitNumber != nil {
		update.Set["unitNumber"] = *input.UnitNumber
	}
	if input.OpeningHours != nil {
		update.Set["openingHours"] = *input.OpeningHours
	}
	if input.Phone != nil {
		update.Set["phone"] = *input.Phone
	}
	if input.IsActive != nil {
		update.Set["isActive"] = *input.IsActive
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// List trả danh sách điểm bán đã join tên hiển thị, lọc theo brand/mall/địa lý,
// sort mới nhất trước, phân trang.
func (s *BrandStoreService) List(ctx context.Context, query *placementdto.BrandStoreListQuery) (*basemodels.PaginateResult[BrandStoreListItem], error) {
	filter := bson.M{}
	geoFilters := map[string]string{
		"brand":    query.BrandID,
		"mall":     query.MallID,
		"province": query.ProvinceID,
		"city":     query.CityID,
		"district": query.DistrictID,
	}
	for field, hex := range geoFilters {
		if hex == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("%s không phải ObjectID hợp lệ", field), common.StatusBadRequest, nil)
		}
		filter[field] = id
	}

	total, err := s.BaseServiceMongoImpl.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": filter},
		{"$sort": bson.M{"createdAt": -1}},
	}
	if query.Limit > 0 {
		pipeline = append(pipeline,
			bson.M{"$skip": (query.Page - 1) * query.Limit},
			bson.M{"$limit": query.Limit},
		)
	}
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Brands, "localField": "brand", "foreignField": "_id", "as": "brandDoc"}},
		bson.M{"$unwind": bson.M{"path": "$brandDoc", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Malls, "localField": "mall", "foreignField": "_id", "as": "mallDoc"}},
		bson.M{"$unwind": bson.M{"path": "$mallDoc", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Provinces, "localField": "province", "foreignField": "_id", "as": "provinceDoc"}},
		bson.M{"$unwind": bson.M{"path": "$provinceDoc", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Cities, "localField": "city", "foreignField": "_id", "as": "cityDoc"}},
		bson.M{"$unwind": bson.M{"path": "$cityDoc", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Districts, "localField": "district", "foreignField": "_id", "as": "districtDoc"}},
		bson.M{"$unwind": bson.M{"path": "$districtDoc", "preserveNullAndEmptyArrays": true}},
		bson.M{"$project": bson.M{
			"_id":          1,
			"brand":        1,
			"brandName":    "$brandDoc.name",
			"brandLogo":    "$brandDoc.logo",
			"mall":         1,
			"mallName":     "$mallDoc.name",
			"provinceName": "$provinceDoc.name",
			"cityName":     "$cityDoc.name",
			"districtName": "$districtDoc.name",
			"storeName":    1,
			"storeAddress": 1,
			"floor":        1,
			"unitNumber":   1,
			"score":        1,
			"isOla":        1,
			"isActive":     1,
			"createdAt":    1,
		}},
	)

	items := []BrandStoreListItem{}
	if err := s.BaseServiceMongoImpl.Aggregate(ctx, pipeline, &items); err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[BrandStoreListItem]{
		Items:     items,
		Page:      query.Page,
		Limit:     query.Limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: basesvc.CalcTotalPages(total, query.Limit),
	}, nil
}
