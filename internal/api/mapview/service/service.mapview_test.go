// Package mapsvc - Test các hàm tính điểm, parse filter và cộng dồn thống kê.
package mapsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStoreScore(t *testing.T) {
	// Brand đã chấm điểm: dùng thẳng điểm của brand
	assert.Equal(t, 7.5, StoreScore(7.5, "1"))
	// Brand chưa chấm điểm: suy từ hạng category
	assert.Equal(t, float64(10), StoreScore(0, "1"))
	assert.Equal(t, float64(5), StoreScore(0, "2"))
	assert.Equal(t, float64(0), StoreScore(0, "3"))
	assert.Equal(t, float64(0), StoreScore(0, ""))
}

func TestParseIDList(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ids, err := parseIDList("mallIds", a.Hex()+", "+b.Hex()+","+a.Hex())
	assert.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a, b}, ids, "phải dedupe và giữ thứ tự xuất hiện")

	ids, err = parseIDList("mallIds", " , ")
	assert.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parseIDList("mallIds", "abc")
	assert.Error(t, err, "hex không hợp lệ phải trả lỗi")
}

func TestParseOptionalID(t *testing.T) {
	id, err := parseOptionalID("provinceId", "")
	assert.NoError(t, err)
	assert.Nil(t, id, "chuỗi rỗng nghĩa là không lọc")

	want := primitive.NewObjectID()
	id, err = parseOptionalID("provinceId", want.Hex())
	assert.NoError(t, err)
	if assert.NotNil(t, id) {
		assert.Equal(t, want, *id)
	}

	_, err = parseOptionalID("provinceId", "bad-hex")
	assert.Error(t, err)
}

func TestGeoFilter(t *testing.T) {
	provinceID := primitive.NewObjectID()
	districtID := primitive.NewObjectID()

	filter, err := geoFilter(provinceID.Hex(), "", districtID.Hex())
	assert.NoError(t, err)
	assert.Len(t, filter, 2)
	assert.Equal(t, provinceID, filter["province"])
	assert.Equal(t, districtID, filter["district"])
	_, hasCity := filter["city"]
	assert.False(t, hasCity, "cityId rỗng không được xuất hiện trong filter")

	filter, err = geoFilter("", "", "")
	assert.NoError(t, err)
	assert.Empty(t, filter)
}

func TestActiveStoreMatch(t *testing.T) {
	provinceID := primitive.NewObjectID()

	base := bson.M{"province": provinceID}
	match := activeStoreMatch(base)
	assert.Equal(t, true, match["isActive"], "match brand_stores phải loại điểm bán đã tắt")
	assert.Equal(t, provinceID, match["province"], "điều kiện cho trước phải được giữ nguyên")

	_, mutated := base["isActive"]
	assert.False(t, mutated, "map đầu vào không được bị sửa")

	empty := activeStoreMatch(bson.M{})
	assert.Equal(t, bson.M{"isActive": true}, empty)
}

func TestSumMallStats(t *testing.T) {
	brandA := primitive.NewObjectID()
	brandB := primitive.NewObjectID()

	malls := []TreeMall{
		{
			StoreCount: 3,
			Brands:     []TreeBrand{{ID: brandA}, {ID: brandB}},
		},
		{
			StoreCount: 2,
			Brands:     []TreeBrand{{ID: brandA}},
		},
	}

	stats := sumMallStats(malls)
	assert.Equal(t, int64(5), stats.StoreCount)
	assert.Equal(t, int64(2), stats.MallCount)
	assert.Equal(t, int64(2), stats.BrandCount, "brand trùng giữa các mall chỉ đếm một lần")

	empty := sumMallStats(nil)
	assert.Equal(t, TreeStats{}, empty)
}

func TestTreeStatsAdd(t *testing.T) {
	total := TreeStats{StoreCount: 1, MallCount: 1, BrandCount: 1}
	total.add(TreeStats{StoreCount: 4, MallCount: 2, BrandCount: 3})
	assert.Equal(t, TreeStats{StoreCount: 5, MallCount: 3, BrandCount: 4}, total)
}
