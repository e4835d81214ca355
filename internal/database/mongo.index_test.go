// Package database - Test phân tách tag `index` trên model.
package database

import (
	"reflect"
	"testing"
)

func TestParseIndexTag(t *testing.T) {
	cases := []struct {
		name string
		tag  string
		want []map[string]string
	}{
		{
			"unique đơn",
			"unique",
			[]map[string]string{{"unique": ""}},
		},
		{
			"unique sparse",
			"unique,sparse",
			[]map[string]string{{"unique": "", "sparse": ""}},
		},
		{
			"single giảm dần",
			"single,order:-1",
			[]map[string]string{{"single": "", "order": "-1"}},
		},
		{
			"compound có group",
			"compound:province_name_unique",
			[]map[string]string{{"compound": "province_name_unique"}},
		},
		{
			"nhiều index trên một field",
			"single;compound:city_name_unique",
			[]map[string]string{{"single": ""}, {"compound": "city_name_unique"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseIndexTag(tc.tag)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseIndexTag(%q) = %v, muốn %v", tc.tag, got, tc.want)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("parseOrder với order:-1 = %d, muốn -1", got)
	}
	if got := parseOrder("single"); got != 1 {
		t.Errorf("parseOrder mặc định = %d, muốn 1", got)
	}
}
