package utils

import "testing"

func TestParsePaginationFromQuery(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   string
		wantPage, wantPS int
	}{
		{"defaults", "", "", 1, 20},
		{"explicit", "3", "50", 3, 50},
		{"caps page size", "1", "500", 1, 100},
		{"garbage", "x", "-4", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := ParsePaginationFromQuery(tt.page, tt.pageSize)
			if page != tt.wantPage || pageSize != tt.wantPS {
				t.Errorf("ParsePaginationFromQuery(%q, %q) = (%d, %d), want (%d, %d)",
					tt.page, tt.pageSize, page, pageSize, tt.wantPage, tt.wantPS)
			}
		})
	}
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := CalculatePaginationInfo(45, 2, 20)
	if info.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", info.TotalPages)
	}
	if !info.HasNext || !info.HasPrevious {
		t.Errorf("expected both next and previous, got %+v", info)
	}
	if CalculateOffset(2, 20) != 20 {
		t.Errorf("expected offset 20, got %d", CalculateOffset(2, 20))
	}

	empty := CalculatePaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 || empty.HasNext {
		t.Errorf("unexpected empty pagination %+v", empty)
	}
}
