package mapsvc

import (
	"context"

	basemodels "retail_map/internal/api/base/models"
	basesvc "retail_map/internal/api/base/service"
	mapdto "retail_map/internal/api/mapview/dto"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegionRef tham chiếu tên của một đơn vị địa lý đã chọn
type RegionRef struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// RegionInfo tên các đơn vị địa lý trong query detail
type RegionInfo struct {
	Province *RegionRef `json:"province,omitempty"`
	City     *RegionRef `json:"city,omitempty"`
	District *RegionRef `json:"district,omitempty"`
}

// DetailStoreItem một điểm bán trong danh sách phẳng theo khu vực
type DetailStoreItem struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id"`
	Brand         primitive.ObjectID  `json:"brand" bson:"brand"`
	BrandName     string              `json:"brandName" bson:"brandName"`
	BrandLogo     string              `json:"brandLogo,omitempty" bson:"brandLogo,omitempty"`
	BrandCategory string              `json:"brandCategory,omitempty" bson:"brandCategory,omitempty"`
	Mall          primitive.ObjectID  `json:"mall" bson:"mall"`
	MallName      string              `json:"mallName" bson:"mallName"`
	MallAddress   string              `json:"mallAddress,omitempty" bson:"mallAddress,omitempty"`
	ProvinceName  string              `json:"provinceName,omitempty" bson:"provinceName,omitempty"`
	CityName      string              `json:"cityName,omitempty" bson:"cityName,omitempty"`
	DistrictName  string              `json:"districtName,omitempty" bson:"districtName,omitempty"`
	StoreName     string              `json:"storeName,omitempty" bson:"storeName,omitempty"`
	StoreAddress  string              `json:"storeAddress,omitempty" bson:"storeAddress,omitempty"`
	Floor         string              `json:"floor,omitempty" bson:"floor,omitempty"`
	UnitNumber    string              `json:"unitNumber,omitempty" bson:"unitNumber,omitempty"`
	Score         float64             `json:"score" bson:"score"`
	IsOla         bool                `json:"isOla" bson:"isOla"`
	IsActive      bool                `json:"isActive" bson:"isActive"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	District      *primitive.ObjectID `json:"district,omitempty" bson:"district,omitempty"`
}

// DetailResult kết quả endpoint detail: khu vực đã chọn, thống kê và
// danh sách điểm bán phân trang
type DetailResult struct {
	Region RegionInfo                                   `json:"region"`
	Stats  RegionStatistics                             `json:"stats"`
	Stores *basemodels.PaginateResult[DetailStoreItem] `json:"stores"`
}

// detailStatsRow kết quả group thống kê của pipeline detail
type detailStatsRow struct {
	StoreCount int64 `bson:"storeCount"`
	MallCount  int64 `bson:"mallCount"`
	BrandCount int64 `bson:"brandCount"`
}

// Detail trả danh sách điểm bán phẳng trong một khu vực (bắt buộc chọn ít
// nhất một trong provinceId/cityId/districtId), lọc theo brand và tìm theo
// tên brand, kèm thống kê của đúng tập kết quả đang xem.
func (s *MapService) Detail(ctx context.Context, query *mapdto.DetailQuery) (*DetailResult, error) {
	filter, err := geoFilter(query.ProvinceID, query.CityID, query.DistrictID)
	if err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"Phải chọn ít nhất một khu vực (provinceId/cityId/districtId)", common.StatusBadRequest, nil)
	}

	brandID, err := parseOptionalID("brandId", query.BrandID)
	if err != nil {
		return nil, err
	}
	if brandID != nil {
		filter["brand"] = *brandID
	}

	region, err := s.regionInfo(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Phần đầu dùng chung cho cả ba pipeline: match khu vực (chỉ tính điểm
	// bán đang hoạt động) + lookup brand để lọc theo tên brand
	head := []bson.M{
		{"$match": activeStoreMatch(filter)},
		{"$lookup": bson.M{"from": global.MongoDB_ColNames.Brands, "localField": "brand", "foreignField": "_id", "as": "brandDoc"}},
		{"$unwind": "$brandDoc"},
	}
	if query.Search != "" {
		head = append(head, bson.M{
			"$match": bson.M{"brandDoc.name": primitive.Regex{Pattern: query.Search, Options: "i"}},
		})
	}

	total, err := s.detailCount(ctx, head)
	if err != nil {
		return nil, err
	}

	stats, err := s.detailStats(ctx, head)
	if err != nil {
		return nil, err
	}

	items, err := s.detailItems(ctx, head, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	return &DetailResult{
		Region: region,
		Stats:  stats,
		Stores: &basemodels.PaginateResult[DetailStoreItem]{
			Items:     items,
			Page:      query.Page,
			Limit:     query.Limit,
			ItemCount: int64(len(items)),
			Total:     total,
			TotalPage: basesvc.CalcTotalPages(total, query.Limit),
		},
	}, nil
}

// regionInfo tra tên các đơn vị địa lý đã chọn trong filter
func (s *MapService) regionInfo(ctx context.Context, filter bson.M) (RegionInfo, error) {
	region := RegionInfo{}

	if id, ok := filter["province"].(primitive.ObjectID); ok {
		province, err := s.provinceService.FindOneById(ctx, id)
		if err != nil {
			return region, err
		}
		region.Province = &RegionRef{ID: province.ID, Name: province.Name}
	}
	if id, ok := filter["city"].(primitive.ObjectID); ok {
		city, err := s.cityService.FindOneById(ctx, id)
		if err != nil {
			return region, err
		}
		region.City = &RegionRef{ID: city.ID, Name: city.Name}
	}
	if id, ok := filter["district"].(primitive.ObjectID); ok {
		district, err := s.districtService.FindOneById(ctx, id)
		if err != nil {
			return region, err
		}
		region.District = &RegionRef{ID: district.ID, Name: district.Name}
	}

	return region, nil
}

// detailCount đếm tổng điểm bán khớp filter + search
func (s *MapService) detailCount(ctx context.Context, head []bson.M) (int64, error) {
	pipeline := append(append([]bson.M{}, head...), bson.M{"$count": "total"})
	rows := []struct {
		Total int64 `bson:"total"`
	}{}
	if err := s.brandStoreService.Aggregate(ctx, pipeline, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// detailStats thống kê trên đúng tập điểm bán khớp filter + search
func (s *MapService) detailStats(ctx context.Context, head []bson.M) (RegionStatistics, error) {
	pipeline := append(append([]bson.M{}, head...),
		bson.M{"$group": bson.M{
			"_id":        nil,
			"storeCount": bson.M{"$sum": 1},
			"malls":      bson.M{"$addToSet": "$mall"},
			"brands":     bson.M{"$addToSet": "$brand"},
		}},
		bson.M{"$project": bson.M{
			"storeCount": 1,
			"mallCount":  bson.M{"$size": "$malls"},
			"brandCount": bson.M{"$size": "$brands"},
		}},
	)

	rows := []detailStatsRow{}
	if err := s.brandStoreService.Aggregate(ctx, pipeline, &rows); err != nil {
		return RegionStatistics{}, err
	}
	if len(rows) == 0 {
		return RegionStatistics{}, nil
	}
	return RegionStatistics{
		StoreCount: rows[0].StoreCount,
		MallCount:  rows[0].MallCount,
		BrandCount: rows[0].BrandCount,
	}, nil
}

// detailItems lấy trang dữ liệu: lookup mall + tên địa lý rồi project
func (s *MapService) detailItems(ctx context.Context, head []bson.M, page, limit int64) ([]DetailStoreItem, error) {
	pipeline := append(append([]bson.M{}, head...),
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Malls, "localField": "mall", "foreignField": "_id", "as": "mallDoc"}},
		bson.M{"$unwind": "$mallDoc"},
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Provinces, "localField": "province", "foreignField": "_id", "as": "provinceDoc"}},
		bson.M{"$unwind": bson.M{"path": "$provinceDoc", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Cities, "localField": "city", "foreignField": "_id", "as": "cityDoc"}},
		bson.M{"$unwind": bson.M{"path": "$cityDoc", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Districts, "localField": "district", "foreignField": "_id", "as": "districtDoc"}},
		bson.M{"$unwind": bson.M{"path": "$districtDoc", "preserveNullAndEmptyArrays": true}},
		bson.M{"$project": bson.M{
			"_id":           1,
			"brand":         1,
			"brandName":     "$brandDoc.name",
			"brandLogo":     "$brandDoc.logo",
			"brandCategory": "$brandDoc.category",
			"mall":          1,
			"mallName":      "$mallDoc.name",
			"mallAddress":   "$mallDoc.address",
			"provinceName":  "$provinceDoc.name",
			"cityName":      "$cityDoc.name",
			"districtName":  "$districtDoc.name",
			"district":      1,
			"storeName":     1,
			"storeAddress":  1,
			"floor":         1,
			"unitNumber":    1,
			"score":         1,
			"isOla":         1,
			"isActive":      1,
			"createdAt":     1,
		}},
		bson.M{"$sort": bson.M{"brandName": 1, "mallName": 1}},
	)
	if limit > 0 {
		pipeline = append(pipeline,
			bson.M{"$skip": (page - 1) * limit},
			bson.M{"$limit": limit},
		)
	}

	items := []DetailStoreItem{}
	if err := s.brandStoreService.Aggregate(ctx, pipeline, &items); err != nil {
		return nil, err
	}
	return items, nil
}
