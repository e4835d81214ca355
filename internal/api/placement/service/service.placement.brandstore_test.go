// Package placementsvc - Test tách danh sách mall id và ngữ nghĩa bulk create.
package placementsvc

import (
	"strings"
	"testing"

	"retail_map/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseMallIds_DedupeAndOrder(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	raw := strings.Join([]string{a.Hex(), " " + b.Hex() + " ", a.Hex(), ""}, ",")

	ids, err := parseMallIds(raw)
	if err != nil {
		t.Fatalf("parseMallIds trả về lỗi: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("parseMallIds trả về %d id, muốn 2 (dedupe)", len(ids))
	}
	if ids[0] != a || ids[1] != b {
		t.Errorf("parseMallIds phải giữ thứ tự xuất hiện, nhận %v", ids)
	}
}

func TestParseMallIds_Empty(t *testing.T) {
	for _, raw := range []string{"", " , ,", ","} {
		_, err := parseMallIds(raw)
		if err == nil {
			t.Errorf("parseMallIds(%q) phải trả lỗi danh sách rỗng", raw)
			continue
		}
		appErr, ok := err.(*common.Error)
		if !ok {
			t.Errorf("parseMallIds(%q) phải trả *common.Error, nhận %T", raw, err)
			continue
		}
		if appErr.StatusCode != common.StatusBadRequest {
			t.Errorf("parseMallIds(%q) status = %d, muốn %d", raw, appErr.StatusCode, common.StatusBadRequest)
		}
	}
}

func TestParseMallIds_InvalidHex(t *testing.T) {
	_, err := parseMallIds(primitive.NewObjectID().Hex() + ",xyz")
	if err == nil {
		t.Fatal("parseMallIds phải trả lỗi khi có id không hợp lệ")
	}
	appErr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("parseMallIds phải trả *common.Error, nhận %T", err)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("status = %d, muốn %d", appErr.StatusCode, common.StatusBadRequest)
	}
}

func TestBulkCreateResult_AllSkipped(t *testing.T) {
	cases := []struct {
		name    string
		result  BulkCreateResult
		skipped bool
	}{
		{"tạo mới một phần", BulkCreateResult{Created: []BulkCreatedStore{{}}, Skipped: 1}, false},
		{"toàn bộ đã tồn tại", BulkCreateResult{Skipped: 3}, true},
		{"không tạo không skip", BulkCreateResult{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.result.AllSkipped(); got != tc.skipped {
				t.Errorf("AllSkipped() = %v, muốn %v", got, tc.skipped)
			}
		})
	}
}
