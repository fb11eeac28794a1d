package shared_test

import (
	"adbook/shared"
	"reflect"
	"testing"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "empty collection", total: 0, limit: 10, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "zero limit", total: 5, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestJoinMulti(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "single value stays bare", values: []string{"Sony"}, expected: "Sony"},
		{name: "multiple values comma joined", values: []string{"Sony", "Zee", "Star"}, expected: "Sony, Zee, Star"},
		{name: "empty slice", values: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.JoinMulti(tt.values); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		page     int
		limit    int
		expected []int
	}{
		{name: "first page", page: 1, limit: 2, expected: []int{1, 2}},
		{name: "last partial page", page: 3, limit: 2, expected: []int{5}},
		{name: "page beyond range", page: 4, limit: 2, expected: []int{}},
		{name: "no pagination", page: 0, limit: 0, expected: items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.Paginate(items, tt.page, tt.limit); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
