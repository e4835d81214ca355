package mapsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	mapdto "retail_map/internal/api/mapview/dto"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComparisonBrand một brand trong bảng so sánh của một địa điểm
type ComparisonBrand struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Logo       string             `json:"logo,omitempty"`
	StoreCount int64              `json:"storeCount"`
	TotalScore float64            `json:"totalScore"`
}

// ComparisonLocation một địa điểm (mall hoặc city) trong kết quả so sánh,
// xếp hạng theo totalScore giảm dần
type ComparisonLocation struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Type       string             `json:"type"` // "mall" hoặc "city"
	Rank       int64              `json:"rank"`
	BrandCount int64              `json:"brandCount"`
	StoreCount int64              `json:"storeCount"`
	TotalScore float64            `json:"totalScore"`
	AvgScore   float64            `json:"avgScore"`
	Brands     []ComparisonBrand  `json:"brands"`
}

// comparisonStoreRow một điểm bán kèm thông tin brand phục vụ tính điểm
type comparisonStoreRow struct {
	Brand         primitive.ObjectID `bson:"brand"`
	BrandName     string             `bson:"brandName"`
	BrandLogo     string             `bson:"brandLogo"`
	BrandScore    float64            `bson:"brandScore"`
	BrandCategory string             `bson:"brandCategory"`
}

// StoreScore điểm của một điểm bán: ưu tiên score của brand, brand chưa
// chấm điểm thì suy từ hạng category ("1" = 10, "2" = 5, còn lại = 0).
func StoreScore(brandScore float64, category string) float64 {
	if brandScore > 0 {
		return brandScore
	}
	switch category {
	case "1":
		return 10
	case "2":
		return 5
	default:
		return 0
	}
}

// parseIDList tách danh sách ObjectID phân cách dấu phẩy, bỏ phần tử rỗng
// và trùng lặp, giữ thứ tự xuất hiện
func parseIDList(field, raw string) ([]primitive.ObjectID, error) {
	ids := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(part)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("%s chứa ObjectID không hợp lệ: %s", field, part), common.StatusBadRequest, nil)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Comparison so sánh các địa điểm theo điểm brand hiện diện. Truyền đúng
// một trong hai: mallIds (so sánh các mall) hoặc cityIds (so sánh các city).
func (s *MapService) Comparison(ctx context.Context, query *mapdto.ComparisonQuery) ([]ComparisonLocation, error) {
	if (query.MallIDs == "") == (query.CityIDs == "") {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"Phải truyền đúng một trong hai tham số: mallIds hoặc cityIds", common.StatusBadRequest, nil)
	}

	brandID, err := parseOptionalID("brandId", query.BrandID)
	if err != nil {
		return nil, err
	}

	locations := []ComparisonLocation{}
	if query.MallIDs != "" {
		ids, err := parseIDList("mallIds", query.MallIDs)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, common.NewError(common.ErrCodeValidationInput, "mallIds không được để trống", common.StatusBadRequest, nil)
		}
		for _, id := range ids {
			mall, err := s.mallService.FindOneById(ctx, id)
			if err != nil {
				return nil, common.NewError(common.ErrCodeValidationInput,
					fmt.Sprintf("Không tìm thấy trung tâm thương mại: %s", id.Hex()), common.StatusBadRequest, nil)
			}
			location, err := s.compareLocation(ctx, mall.ID, mall.Name, "mall", bson.M{"mall": mall.ID}, brandID)
			if err != nil {
				return nil, err
			}
			locations = append(locations, location)
		}
	} else {
		ids, err := parseIDList("cityIds", query.CityIDs)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, common.NewError(common.ErrCodeValidationInput, "cityIds không được để trống", common.StatusBadRequest, nil)
		}
		for _, id := range ids {
			city, err := s.cityService.FindOneById(ctx, id)
			if err != nil {
				return nil, common.NewError(common.ErrCodeValidationInput,
					fmt.Sprintf("Không tìm thấy quận/thành phố: %s", id.Hex()), common.StatusBadRequest, nil)
			}
			location, err := s.compareLocation(ctx, city.ID, city.Name, "city", bson.M{"city": city.ID}, brandID)
			if err != nil {
				return nil, err
			}
			locations = append(locations, location)
		}
	}

	// Xếp hạng theo tổng điểm giảm dần
	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].TotalScore > locations[j].TotalScore
	})
	for i := range locations {
		locations[i].Rank = int64(i + 1)
	}

	return locations, nil
}

// compareLocation tổng hợp điểm brand của một địa điểm theo match cho trước
func (s *MapService) compareLocation(ctx context.Context, id primitive.ObjectID, name, locType string, match bson.M, brandID *primitive.ObjectID) (ComparisonLocation, error) {
	location := ComparisonLocation{ID: id, Name: name, Type: locType, Brands: []ComparisonBrand{}}

	match = activeStoreMatch(match)
	if brandID != nil {
		match["brand"] = *brandID
	}
	pipeline := []bson.M{
		{"$match": match},
		{"$lookup": bson.M{"from": global.MongoDB_ColNames.Brands, "localField": "brand", "foreignField": "_id", "as": "brandDoc"}},
		{"$unwind": "$brandDoc"},
		{"$project": bson.M{
			"brand":         1,
			"brandName":     "$brandDoc.name",
			"brandLogo":     "$brandDoc.logo",
			"brandScore":    "$brandDoc.score",
			"brandCategory": "$brandDoc.category",
		}},
	}

	rows := []comparisonStoreRow{}
	if err := s.brandStoreService.Aggregate(ctx, pipeline, &rows); err != nil {
		return location, err
	}

	brandIndex := map[primitive.ObjectID]int{}
	for _, row := range rows {
		score := StoreScore(row.BrandScore, row.BrandCategory)
		idx, exist := brandIndex[row.Brand]
		if !exist {
			idx = len(location.Brands)
			brandIndex[row.Brand] = idx
			location.Brands = append(location.Brands, ComparisonBrand{
				ID:   row.Brand,
				Name: row.BrandName,
				Logo: row.BrandLogo,
			})
		}
		location.Brands[idx].StoreCount++
		location.Brands[idx].TotalScore += score

		location.StoreCount++
		location.TotalScore += score
	}
	location.BrandCount = int64(len(location.Brands))
	if location.StoreCount > 0 {
		location.AvgScore = location.TotalScore / float64(location.StoreCount)
	}

	sort.SliceStable(location.Brands, func(i, j int) bool {
		return location.Brands[i].TotalScore > location.Brands[j].TotalScore
	})

	return location, nil
}
