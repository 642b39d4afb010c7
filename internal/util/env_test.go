package util

import (
	"reflect"
	"testing"
)

func TestParseBoolEnv(t *testing.T) {
	cases := []struct {
		value      string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"OFF", true, false},
		{"", true, true},
		{"", false, false},
		{"maybe", true, true},
		{"maybe", false, false},
		{" true ", false, true},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL", tc.value)
		if got := ParseBoolEnv("TEST_BOOL", tc.defaultVal); got != tc.want {
			t.Errorf("ParseBoolEnv(%q, %v) = %v, want %v", tc.value, tc.defaultVal, got, tc.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	cases := []struct {
		value string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , b ", []string{"a", "b"}},
		{",,", nil},
	}
	for _, tc := range cases {
		got := SplitList(tc.value)
		if tc.want == nil {
			if got != nil {
				t.Errorf("SplitList(%q) = %v, want nil", tc.value, got)
			}
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestParseListEnv(t *testing.T) {
	cases := []struct {
		value string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b", []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Setenv("TEST_LIST", tc.value)
		if got := ParseListEnv("TEST_LIST"); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseListEnv(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
