package pagination

// DefaultPageSize is the standard page size when one is not configured.
const DefaultPageSize = 6

// Page describes one slice of an ordered view.
type Page struct {
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	Start      int `json:"-"`
	End        int `json:"-"`
}

// NormalizeSize enforces the default page size.
func NormalizeSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	return size
}

// TotalPages returns ceil(n/size), never less than 1: an empty view still
// has a first page so prev/next controls have somewhere to rest.
func TotalPages(n, size int) int {
	size = NormalizeSize(size)
	if n <= 0 {
		return 1
	}
	pages := (n + size - 1) / size
	return pages
}

// Clamp pins a requested page number into [1, TotalPages(n, size)].
// Out-of-range requests are not an error; they mirror disabled prev/next
// controls at the bounds.
func Clamp(page, n, size int) int {
	total := TotalPages(n, size)
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Slice resolves the [start, end) window of the requested page over a view
// of n items, clipping to [0, n).
func Slice(page, n, size int) Page {
	size = NormalizeSize(size)
	page = Clamp(page, n, size)

	start := (page - 1) * size
	if start > n {
		start = n
	}
	end := start + size
	if end > n {
		end = n
	}

	return Page{
		Number:     page,
		Size:       size,
		TotalItems: n,
		TotalPages: TotalPages(n, size),
		Start:      start,
		End:        end,
	}
}
