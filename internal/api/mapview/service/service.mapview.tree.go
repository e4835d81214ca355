package mapsvc

import (
	"context"

	mapdto "retail_map/internal/api/mapview/dto"
	"retail_map/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TreeStats thống kê sống (đếm trực tiếp từ brand_stores) tại một node cây
type TreeStats struct {
	StoreCount int64 `json:"storeCount"`
	MallCount  int64 `json:"mallCount"`
	BrandCount int64 `json:"brandCount"`
}

// add cộng dồn thống kê con vào node cha
func (t *TreeStats) add(other TreeStats) {
	t.StoreCount += other.StoreCount
	t.MallCount += other.MallCount
	t.BrandCount += other.BrandCount
}

// TreeBrand brand rút gọn trong cây
type TreeBrand struct {
	ID       primitive.ObjectID `json:"id" bson:"id"`
	Name     string             `json:"name" bson:"name"`
	Logo     string             `json:"logo,omitempty" bson:"logo,omitempty"`
	Category string             `json:"category,omitempty" bson:"category,omitempty"`
	Score    float64            `json:"score" bson:"score"`
}

// TreeMall mall trong cây kèm các brand hiện diện
type TreeMall struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Address    string             `json:"address,omitempty"`
	StoreCount int64              `json:"storeCount"`
	Brands     []TreeBrand        `json:"brands"`
}

// TreeDistrict district trong cây (level 3)
type TreeDistrict struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Stats TreeStats          `json:"stats"`
	Malls []TreeMall         `json:"malls"`
}

// TreeCity city trong cây (level 2 trở lên).
// DirectMalls là các mall gắn thẳng vào city (không có district).
type TreeCity struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Stats       TreeStats          `json:"stats"`
	Districts   []TreeDistrict     `json:"districts,omitempty"`
	DirectMalls []TreeMall         `json:"directMalls,omitempty"`
}

// TreeProvince province trong cây
type TreeProvince struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Stats  TreeStats          `json:"stats"`
	Cities []TreeCity         `json:"cities,omitempty"`
}

// treeMallRow một dòng kết quả pipeline group theo mall trong một city
type treeMallRow struct {
	ID          primitive.ObjectID  `bson:"_id"`
	District    *primitive.ObjectID `bson:"district"`
	MallName    string              `bson:"mallName"`
	MallAddress string              `bson:"mallAddress"`
	StoreCount  int64               `bson:"storeCount"`
	Brands      []TreeBrand         `bson:"brands"`
}

// liveStoreStats đếm storeCount/mallCount/brandCount trực tiếp từ brand_stores
// theo match cho trước (đã gồm brand filter nếu có).
func (s *MapService) liveStoreStats(ctx context.Context, match bson.M) (TreeStats, error) {
	stats := TreeStats{}

	storeCount, err := s.brandStoreService.CountDocuments(ctx, match)
	if err != nil {
		return stats, err
	}
	stats.StoreCount = storeCount

	malls, err := s.brandStoreService.Distinct(ctx, "mall", match)
	if err != nil {
		return stats, err
	}
	stats.MallCount = int64(len(malls))

	brands, err := s.brandStoreService.Distinct(ctx, "brand", match)
	if err != nil {
		return stats, err
	}
	stats.BrandCount = int64(len(brands))

	return stats, nil
}

// Tree dựng cây phân cấp địa lý với thống kê sống tại mỗi node.
// Level 1: province. Level 2: + city (stats province = tổng city).
// Level 3: + district với malls[]/brands[], mall không district gom vào
// directMalls của city; stats các cấp cộng dồn từ con.
func (s *MapService) Tree(ctx context.Context, query *mapdto.TreeQuery) ([]TreeProvince, error) {
	level := query.Level
	if level < 1 {
		level = 1
	}

	brandID, err := parseOptionalID("brandId", query.BrandID)
	if err != nil {
		return nil, err
	}

	provinceFilter := bson.M{"isActive": true}
	provinceID, err := parseOptionalID("provinceId", query.ProvinceID)
	if err != nil {
		return nil, err
	}
	if provinceID != nil {
		provinceFilter["_id"] = *provinceID
	}

	provinces, err := s.provinceService.Find(ctx, provinceFilter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	result := make([]TreeProvince, 0, len(provinces))
	for _, province := range provinces {
		node := TreeProvince{ID: province.ID, Name: province.Name}

		if level == 1 {
			match := activeStoreMatch(bson.M{"province": province.ID})
			if brandID != nil {
				match["brand"] = *brandID
			}
			stats, err := s.liveStoreStats(ctx, match)
			if err != nil {
				return nil, err
			}
			node.Stats = stats
			result = append(result, node)
			continue
		}

		cities, err := s.treeCities(ctx, province.ID, query, brandID, level)
		if err != nil {
			return nil, err
		}
		node.Cities = cities
		for _, city := range cities {
			node.Stats.add(city.Stats)
		}
		result = append(result, node)
	}

	return result, nil
}

// treeCities dựng các node city của một province theo level yêu cầu
func (s *MapService) treeCities(ctx context.Context, provinceID primitive.ObjectID, query *mapdto.TreeQuery, brandID *primitive.ObjectID, level int64) ([]TreeCity, error) {
	cityFilter := bson.M{"province": provinceID, "isActive": true}
	cityID, err := parseOptionalID("cityId", query.CityID)
	if err != nil {
		return nil, err
	}
	if cityID != nil {
		cityFilter["_id"] = *cityID
	}

	cities, err := s.cityService.Find(ctx, cityFilter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	nodes := make([]TreeCity, 0, len(cities))
	for _, city := range cities {
		node := TreeCity{ID: city.ID, Name: city.Name}

		if level == 2 {
			match := activeStoreMatch(bson.M{"city": city.ID})
			if brandID != nil {
				match["brand"] = *brandID
			}
			stats, err := s.liveStoreStats(ctx, match)
			if err != nil {
				return nil, err
			}
			node.Stats = stats
			nodes = append(nodes, node)
			continue
		}

		if err := s.fillCityLevel3(ctx, &node, city.ID, query, brandID); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// fillCityLevel3 chạy pipeline group theo mall trong một city rồi phân hoạch
// mall theo district; mall không district vào directMalls.
func (s *MapService) fillCityLevel3(ctx context.Context, node *TreeCity, cityID primitive.ObjectID, query *mapdto.TreeQuery, brandID *primitive.ObjectID) error {
	match := activeStoreMatch(bson.M{"city": cityID})
	if brandID != nil {
		match["brand"] = *brandID
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$lookup": bson.M{"from": global.MongoDB_ColNames.Brands, "localField": "brand", "foreignField": "_id", "as": "brandDoc"}},
		{"$unwind": "$brandDoc"},
	}
	if query.Search != "" {
		pipeline = append(pipeline, bson.M{
			"$match": bson.M{"brandDoc.name": primitive.Regex{Pattern: query.Search, Options: "i"}},
		})
	}
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{"from": global.MongoDB_ColNames.Malls, "localField": "mall", "foreignField": "_id", "as": "mallDoc"}},
		bson.M{"$unwind": "$mallDoc"},
		bson.M{"$group": bson.M{
			"_id":         "$mall",
			"district":    bson.M{"$first": "$district"},
			"mallName":    bson.M{"$first": "$mallDoc.name"},
			"mallAddress": bson.M{"$first": "$mallDoc.address"},
			"storeCount":  bson.M{"$sum": 1},
			"brands": bson.M{"$addToSet": bson.M{
				"id":       "$brandDoc._id",
				"name":     "$brandDoc.name",
				"logo":     "$brandDoc.logo",
				"category": "$brandDoc.category",
				"score":    "$brandDoc.score",
			}},
		}},
	)

	rows := []treeMallRow{}
	if err := s.brandStoreService.Aggregate(ctx, pipeline, &rows); err != nil {
		return err
	}

	mallsByDistrict := map[primitive.ObjectID][]TreeMall{}
	directMalls := []TreeMall{}
	for _, row := range rows {
		mall := TreeMall{
			ID:         row.ID,
			Name:       row.MallName,
			Address:    row.MallAddress,
			StoreCount: row.StoreCount,
			Brands:     row.Brands,
		}
		if row.District == nil {
			directMalls = append(directMalls, mall)
		} else {
			mallsByDistrict[*row.District] = append(mallsByDistrict[*row.District], mall)
		}
	}

	districtFilter := bson.M{"city": cityID, "isActive": true}
	districtID, err := parseOptionalID("districtId", query.DistrictID)
	if err != nil {
		return err
	}
	if districtID != nil {
		districtFilter["_id"] = *districtID
	}
	districts, err := s.districtService.Find(ctx, districtFilter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return err
	}

	node.Districts = make([]TreeDistrict, 0, len(districts))
	for _, district := range districts {
		malls := mallsByDistrict[district.ID]
		if malls == nil {
			malls = []TreeMall{}
		}
		districtNode := TreeDistrict{
			ID:    district.ID,
			Name:  district.Name,
			Malls: malls,
			Stats: sumMallStats(malls),
		}
		node.Districts = append(node.Districts, districtNode)
		node.Stats.add(districtNode.Stats)
	}

	node.DirectMalls = directMalls
	node.Stats.add(sumMallStats(directMalls))
	return nil
}

// sumMallStats cộng dồn thống kê từ danh sách mall: storeCount tổng,
// mallCount số mall, brandCount số brand khác nhau.
func sumMallStats(malls []TreeMall) TreeStats {
	stats := TreeStats{MallCount: int64(len(malls))}
	brandSet := map[primitive.ObjectID]bool{}
	for _, mall := range malls {
		stats.StoreCount += mall.StoreCount
		for _, brand := range mall.Brands {
			brandSet[brand.ID] = true
		}
	}
	stats.BrandCount = int64(len(brandSet))
	return stats
}
