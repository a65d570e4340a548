package utils

import "testing"

func TestNewPaginationParamsClamps(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, MinPageSize},
		{-3, 10, 1, 10},
		{2, 1000, 2, MaxPageSize},
		{4, 25, 4, 25},
	}
	for _, tt := range tests {
		p := NewPaginationParams(tt.page, tt.size)
		if p.Page != tt.wantPage || p.PageSize != tt.wantSize {
			t.Errorf("NewPaginationParams(%d, %d) = %+v", tt.page, tt.size, p)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		page      int
		size      int
		want      []int
		wantPages int
		hasNext   bool
	}{
		{"first page", 1, 2, []int{1, 2}, 3, true},
		{"last partial page", 3, 2, []int{5}, 3, false},
		{"past the end", 9, 2, []int{}, 3, false},
		{"everything", 1, 10, []int{1, 2, 3, 4, 5}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := Paginate(items, NewPaginationParams(tt.page, tt.size))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
			if meta.Total != 5 || meta.TotalPages != tt.wantPages || meta.HasNext != tt.hasNext {
				t.Errorf("meta = %+v", meta)
			}
		})
	}
}
