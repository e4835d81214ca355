// Package models - Test các field bắt buộc của model địa lý.
package models

import (
	"reflect"
	"testing"
)

func TestCityDistrictCarryCode(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
	}{
		{"City", reflect.TypeOf(City{})},
		{"District", reflect.TypeOf(District{})},
	}

	for _, tc := range cases {
		field, ok := tc.typ.FieldByName("Code")
		if !ok {
			t.Fatalf("%s phải có field Code (mã hành chính)", tc.name)
		}
		if got := field.Tag.Get("bson"); got != "code" {
			t.Errorf("%s.Code tag bson = %q, muốn %q", tc.name, got, "code")
		}
	}
}
