// Package basehdl - Test quy tắc chuyển đổi DTO sang model bằng reflection.
package basehdl

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type transformTestInput struct {
	Name     string
	Province string
	District string
	Malls    []string
	Address  *string
	Sort     int64
}

type transformTestModel struct {
	Name     string
	Province primitive.ObjectID
	District *primitive.ObjectID
	Malls    []primitive.ObjectID
	Address  string
	Sort     int64
	Extra    string // không có trong DTO, phải giữ nguyên zero value
}

func TestTransformInputToModel_ObjectIDConversion(t *testing.T) {
	provinceID := primitive.NewObjectID()
	districtID := primitive.NewObjectID()
	mallID := primitive.NewObjectID()
	address := "12 Lý Thường Kiệt"

	input := &transformTestInput{
		Name:     "Vincom",
		Province: provinceID.Hex(),
		District: districtID.Hex(),
		Malls:    []string{mallID.Hex()},
		Address:  &address,
		Sort:     3,
	}

	model := &transformTestModel{}
	if err := transformInputToModel(input, model); err != nil {
		t.Fatalf("transformInputToModel trả về lỗi: %v", err)
	}

	if model.Name != "Vincom" {
		t.Errorf("Name = %q, muốn %q", model.Name, "Vincom")
	}
	if model.Province != provinceID {
		t.Errorf("Province = %s, muốn %s (string → ObjectID)", model.Province.Hex(), provinceID.Hex())
	}
	if model.District == nil || *model.District != districtID {
		t.Errorf("District = %v, muốn con trỏ tới %s (string → *ObjectID)", model.District, districtID.Hex())
	}
	if len(model.Malls) != 1 || model.Malls[0] != mallID {
		t.Errorf("Malls = %v, muốn [%s] ([]string → []ObjectID)", model.Malls, mallID.Hex())
	}
	if model.Address != address {
		t.Errorf("Address = %q, muốn %q (*string → string)", model.Address, address)
	}
	if model.Sort != 3 {
		t.Errorf("Sort = %d, muốn 3", model.Sort)
	}
	if model.Extra != "" {
		t.Errorf("Extra phải giữ zero value, nhận %q", model.Extra)
	}
}

func TestTransformInputToModel_EmptyStringSkipsObjectID(t *testing.T) {
	input := &transformTestInput{Name: "Chỉ có tên"}
	model := &transformTestModel{}
	if err := transformInputToModel(input, model); err != nil {
		t.Fatalf("transformInputToModel trả về lỗi: %v", err)
	}

	if !model.Province.IsZero() {
		t.Errorf("Province phải giữ zero value khi input rỗng, nhận %s", model.Province.Hex())
	}
	if model.District != nil {
		t.Errorf("District phải là nil khi input rỗng, nhận %s", model.District.Hex())
	}
}

func TestTransformInputToModel_InvalidHexReturnsError(t *testing.T) {
	input := &transformTestInput{Name: "Bad", Province: "không-phải-hex"}
	model := &transformTestModel{}
	if err := transformInputToModel(input, model); err == nil {
		t.Fatal("transformInputToModel phải trả lỗi khi hex ObjectID không hợp lệ")
	}
}

func TestTransformInputToModel_NilPointerSkipped(t *testing.T) {
	input := &transformTestInput{Name: "NoAddress", Address: nil}
	model := &transformTestModel{Address: "giữ nguyên"}
	if err := transformInputToModel(input, model); err != nil {
		t.Fatalf("transformInputToModel trả về lỗi: %v", err)
	}
	if model.Address != "giữ nguyên" {
		t.Errorf("Address phải giữ nguyên khi con trỏ DTO là nil, nhận %q", model.Address)
	}
}

type partialUpdateInput struct {
	Name     *string
	Province *string
	Score    *float64
	Sort     *int64
	IsActive *bool
	Note     string
}

type partialUpdateModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Province primitive.ObjectID `bson:"province"`
	Score    float64            `bson:"score"`
	Sort     int64              `bson:"sort"`
	IsActive bool               `bson:"isActive"`
	Note     string             `bson:"note,omitempty"`
}

func buildPartialUpdateForTest(t *testing.T, input *partialUpdateInput) map[string]interface{} {
	t.Helper()
	h := &BaseHandler[partialUpdateModel, partialUpdateInput, partialUpdateInput]{}
	model, err := h.TransformUpdateInputToModel(input)
	if err != nil {
		t.Fatalf("TransformUpdateInputToModel trả về lỗi: %v", err)
	}
	updateData, err := h.BuildPartialUpdate(input, model)
	if err != nil {
		t.Fatalf("BuildPartialUpdate trả về lỗi: %v", err)
	}
	return updateData.Set
}

func TestBuildPartialUpdate_ExplicitZeroValuesKept(t *testing.T) {
	isActive := false
	score := float64(0)
	sort := int64(0)
	input := &partialUpdateInput{IsActive: &isActive, Score: &score, Sort: &sort}

	set := buildPartialUpdateForTest(t, input)

	if v, ok := set["isActive"]; !ok || v != false {
		t.Errorf("isActive = %v (ok=%v), client gửi false thì phải vào $set", v, ok)
	}
	if v, ok := set["score"]; !ok || v != float64(0) {
		t.Errorf("score = %v (ok=%v), client gửi 0 thì phải vào $set", v, ok)
	}
	if v, ok := set["sort"]; !ok || v != int64(0) {
		t.Errorf("sort = %v (ok=%v), client gửi 0 thì phải vào $set", v, ok)
	}
	if _, ok := set["name"]; ok {
		t.Error("name không gửi lên thì không được xuất hiện trong $set")
	}
	if _, ok := set["province"]; ok {
		t.Error("province không gửi lên thì không được xuất hiện trong $set")
	}
}

func TestBuildPartialUpdate_ProvidedFieldsUseBsonKeys(t *testing.T) {
	name := "Vincom Bà Triệu"
	provinceID := primitive.NewObjectID()
	provinceHex := provinceID.Hex()
	input := &partialUpdateInput{Name: &name, Province: &provinceHex, Note: "mở lại sau sửa chữa"}

	set := buildPartialUpdateForTest(t, input)

	if set["name"] != name {
		t.Errorf("name = %v, muốn %q", set["name"], name)
	}
	if set["province"] != provinceID {
		t.Errorf("province = %v, muốn ObjectID %s (giữ chuyển đổi string → ObjectID)", set["province"], provinceHex)
	}
	if set["note"] != "mở lại sau sửa chữa" {
		t.Errorf("note = %v, field thường khác zero phải vào $set", set["note"])
	}
	if _, ok := set["isActive"]; ok {
		t.Error("isActive nil thì không được xuất hiện trong $set")
	}
	if _, ok := set["_id"]; ok {
		t.Error("_id không bao giờ được xuất hiện trong $set")
	}
}

func TestBuildPartialUpdate_EmptyObjectIDHexSkipped(t *testing.T) {
	empty := ""
	input := &partialUpdateInput{Province: &empty}

	set := buildPartialUpdateForTest(t, input)

	if _, ok := set["province"]; ok {
		t.Error("province rỗng bị transform bỏ qua thì không được ghi đè bằng ObjectID zero")
	}
}
