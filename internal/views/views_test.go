package views

import "testing"

func TestPageParamsNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   PageParams
		want PageParams
	}{
		{"zeroValues", PageParams{}, PageParams{Page: 1, Limit: DefaultPageLimit}},
		{"negative", PageParams{Page: -2, Limit: -5}, PageParams{Page: 1, Limit: DefaultPageLimit}},
		{"valid", PageParams{Page: 3, Limit: 25}, PageParams{Page: 3, Limit: 25}},
		{"partial", PageParams{Page: 2}, PageParams{Page: 2, Limit: DefaultPageLimit}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); got != tc.want {
				t.Fatalf("Normalize(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestEscapeLikePattern(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cats", "cats"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{"%_%", `\%\_\%`},
	}

	for _, tc := range cases {
		if got := escapeLikePattern(tc.in); got != tc.want {
			t.Fatalf("escapeLikePattern(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPageParamsOffset(t *testing.T) {
	cases := []struct {
		in   PageParams
		want int
	}{
		{PageParams{Page: 1, Limit: 10}, 0},
		{PageParams{Page: 2, Limit: 10}, 10},
		{PageParams{Page: 5, Limit: 3}, 12},
	}

	for _, tc := range cases {
		if got := tc.in.Offset(); got != tc.want {
			t.Fatalf("Offset(%+v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
