package model_test

import (
	"testing"

	"roa-expert-system/internal/model"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want model.Category
	}{
		{"exact weather", "weather", model.CategoryWeather},
		{"exact news", "news", model.CategoryNews},
		{"exact joke", "joke", model.CategoryJoke},
		{"exact others", "others", model.CategoryOthers},
		{"uppercase", "WEATHER", model.CategoryWeather},
		{"padded", "  news \n", model.CategoryNews},
		{"empty", "", model.CategoryOthers},
		{"multi-word", "the category is weather", model.CategoryOthers},
		{"unexpected text", "sports", model.CategoryOthers},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := model.ParseCategory(tc.raw); got != tc.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
