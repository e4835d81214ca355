// Package common - Test ngữ nghĩa status code của taxonomy lỗi và
// chuẩn hóa lỗi MongoDB.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"sai thông tin đăng nhập trả 401", ErrInvalidCredentials, StatusUnauthorized},
		{"thiếu quyền admin trả 403", ErrForbidden, StatusForbidden},
		{"còn dữ liệu con trả 409", ErrHasChildren, StatusConflict},
		{"trùng unique key trả 409", ErrMongoDuplicate, StatusConflict},
		{"không tìm thấy trả 404", ErrNotFound, StatusNotFound},
		{"input sai trả 400", ErrInvalidInput, StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr, ok := tc.err.(*Error)
			if !ok {
				t.Fatalf("phải là *common.Error, nhận %T", tc.err)
			}
			if appErr.StatusCode != tc.want {
				t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, tc.want)
			}
		})
	}
}

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", got)
	}

	if got := ConvertMongoError(mongo.ErrNoDocuments); got != ErrNotFound {
		t.Errorf("ErrNoDocuments phải chuẩn hóa thành ErrNotFound, nhận %v", got)
	}

	// Lỗi đã chuẩn hóa được giữ nguyên, không bọc lại
	if got := ConvertMongoError(ErrHasChildren); got != ErrHasChildren {
		t.Errorf("lỗi *common.Error phải giữ nguyên, nhận %v", got)
	}

	// WriteException với code 11000 là duplicate key
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	if got := ConvertMongoError(dup); got != ErrMongoDuplicate {
		t.Errorf("duplicate key phải chuẩn hóa thành ErrMongoDuplicate, nhận %v", got)
	}

	// Lỗi lạ không được trả về nil
	if got := ConvertMongoError(errors.New("lỗi bất kỳ")); got == nil {
		t.Error("lỗi không nhận dạng được vẫn phải trả về khác nil")
	}
}
