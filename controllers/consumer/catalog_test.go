package consumer

import "testing"

func TestClampPagination(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 10, 1, 10},
		{3, 25, 3, 25},
		{0, 10, 1, 10},   // page=0 would make the offset negative
		{-2, 10, 1, 10},
		{1, 0, 1, 10},    // limit=0 would divide by zero in the page count
		{1, -5, 1, 10},
		{0, 0, 1, 10},
	}

	for _, tc := range cases {
		page, limit := clampPagination(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("clampPagination(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}

		// The values the handler derives from them must be safe
		if offset := (page - 1) * limit; offset < 0 {
			t.Errorf("clampPagination(%d, %d) yields negative offset %d", tc.page, tc.limit, offset)
		}
		count := 3
		if pages := (count + limit - 1) / limit; pages < 1 {
			t.Errorf("clampPagination(%d, %d) yields page count %d", tc.page, tc.limit, pages)
		}
	}
}
