package helpers

import (
	"testing"
	"time"
)

func TestNullableInt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   *int
		wantOK bool
	}{
		{"empty is nil", "", nil, true},
		{"whitespace is nil", "   ", nil, true},
		{"plain number", "5", intPtr(5), true},
		{"padded number", " 2014 ", intPtr(2014), true},
		{"garbage fails", "five", nil, false},
		{"float fails", "3.5", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NullableInt(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("got = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestNullableDate(t *testing.T) {
	got, ok := NullableDate("2008-12-31")
	if !ok || got == nil {
		t.Fatalf("NullableDate() = %v, %v", got, ok)
	}
	want := time.Date(2008, 12, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("date = %v, want %v", got, want)
	}

	if got, ok := NullableDate(""); !ok || got != nil {
		t.Errorf("empty input: got %v, %v, want nil, true", got, ok)
	}
	if _, ok := NullableDate("31-12-2008"); ok {
		t.Error("DD-MM-YYYY accepted, want rejection")
	}
	if _, ok := NullableDate("2008-13-01"); ok {
		t.Error("month 13 accepted, want rejection")
	}
}

func TestTrimmedOrNil(t *testing.T) {
	if got := TrimmedOrNil(nil); got != nil {
		t.Errorf("nil input: got %v", got)
	}

	empty := "   "
	if got := TrimmedOrNil(&empty); got != nil {
		t.Errorf("blank input: got %q, want nil", *got)
	}

	padded := "  Ram Singh  "
	got := TrimmedOrNil(&padded)
	if got == nil || *got != "Ram Singh" {
		t.Errorf("got %v, want \"Ram Singh\"", got)
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -2, 10, 0, 10},
		{"oversized page size falls back", 2, 500, 10, DefaultPageSize},
		{"zero size falls back", 2, 0, 10, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("got (%d, %d), want (%d, %d)", offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	if info.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", info.TotalPages)
	}
	if info.CurrentPage != 2 || info.PageSize != 10 || info.TotalItems != 45 {
		t.Errorf("unexpected info: %+v", info)
	}

	// Page beyond the end clamps to the last page.
	info = NewPaginationInfo(45, 9, 10)
	if info.CurrentPage != 5 {
		t.Errorf("CurrentPage = %d, want clamp to 5", info.CurrentPage)
	}

	// An empty listing still reports one (empty) page.
	info = NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 for an empty listing", info.TotalPages)
	}
}

func intPtr(n int) *int { return &n }
