// Package basesvc - Test các hàm tính toán phân trang không cần database.
package basesvc

import "testing"

func TestCalcTotalPages(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		limit int64
		want  int64
	}{
		{"limit 0 trả về 1 trang (lấy tất cả)", 100, 0, 1},
		{"limit âm trả về 1 trang", 100, -5, 1},
		{"total 0 trả về 0 trang", 0, 10, 0},
		{"chia hết", 100, 10, 10},
		{"chia dư làm tròn lên", 101, 10, 11},
		{"total nhỏ hơn limit", 3, 10, 1},
		{"limit 1", 7, 1, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalcTotalPages(tc.total, tc.limit)
			if got != tc.want {
				t.Errorf("CalcTotalPages(%d, %d) = %d, muốn %d", tc.total, tc.limit, got, tc.want)
			}
		})
	}
}
