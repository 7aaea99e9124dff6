package utils

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		limit    int
		expected int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single row", 1, 10, 1},
		{"empty", 0, 10, 0},
		{"zero limit clamps", 50, 0, 0},
		{"negative limit clamps", 50, -3, 0},
		{"negative total clamps", -1, 10, 0},
		{"limit of one", 3, 1, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalPages(tc.total, tc.limit); got != tc.expected {
				t.Errorf("TotalPages(%d, %d) = %d, expected %d", tc.total, tc.limit, got, tc.expected)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)
	if p.Page != 2 || p.Limit != 10 || p.Total != 35 || p.TotalPages != 4 {
		t.Errorf("Unexpected pagination %+v", p)
	}
}
