package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{n: 0, size: 6, want: 1},
		{n: 1, size: 6, want: 1},
		{n: 6, size: 6, want: 1},
		{n: 7, size: 6, want: 2},
		{n: 12, size: 6, want: 2},
		{n: 13, size: 6, want: 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.n, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.size, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(0, 10, 6); got != 1 {
		t.Fatalf("page below range should clamp to 1, got %d", got)
	}
	if got := Clamp(99, 10, 6); got != 2 {
		t.Fatalf("page above range should clamp to last page, got %d", got)
	}
	if got := Clamp(2, 10, 6); got != 2 {
		t.Fatalf("valid page should be untouched, got %d", got)
	}
	if got := Clamp(3, 0, 6); got != 1 {
		t.Fatalf("empty view clamps everything to page 1, got %d", got)
	}
}

func TestSliceCoversWholeView(t *testing.T) {
	const n, size = 20, 6

	covered := 0
	for page := 1; page <= TotalPages(n, size); page++ {
		p := Slice(page, n, size)
		covered += p.End - p.Start
	}
	if covered != n {
		t.Fatalf("page lengths should sum to %d, got %d", n, covered)
	}
}

func TestSliceWindows(t *testing.T) {
	p := Slice(2, 10, 6)
	if p.Start != 6 || p.End != 10 {
		t.Fatalf("expected window [6,10), got [%d,%d)", p.Start, p.End)
	}
	if p.TotalPages != 2 || p.TotalItems != 10 {
		t.Fatalf("unexpected totals: %+v", p)
	}

	empty := Slice(1, 0, 6)
	if empty.Start != 0 || empty.End != 0 || empty.TotalPages != 1 {
		t.Fatalf("empty view should yield empty first page: %+v", empty)
	}
}
