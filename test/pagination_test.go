package main

import (
	"testing"

	"app/utils"
)

func TestCreatePagination(t *testing.T) {
	p := utils.CreatePagination(24, 2, 10)
	if p.TotalPages != 3 || p.CurrentPage != 2 || p.PageSize != 10 || p.TotalItems != 24 {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	// Defaults kick in for non-positive inputs.
	p = utils.CreatePagination(5, 0, 0)
	if p.CurrentPage != 1 || p.PageSize != 10 || p.TotalPages != 1 {
		t.Fatalf("unexpected default pagination: %+v", p)
	}
}

func TestSliceBounds(t *testing.T) {
	cases := []struct {
		total, page, size  int
		wantStart, wantEnd int
	}{
		{24, 1, 10, 0, 10},
		{24, 3, 10, 20, 24},
		{24, 4, 10, 24, 24},
		{0, 1, 10, 0, 0},
	}

	for _, c := range cases {
		start, end := utils.SliceBounds(c.total, c.page, c.size)
		if start != c.wantStart || end != c.wantEnd {
			t.Fatalf("SliceBounds(%d, %d, %d) = (%d, %d); want (%d, %d)",
				c.total, c.page, c.size, start, end, c.wantStart, c.wantEnd)
		}
	}
}
