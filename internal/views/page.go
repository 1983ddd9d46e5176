package views

// Page describes the slice of rows returned.
type Page struct {
	Index      int `json:"index"`
	Size       int `json:"size"`
	TotalRows  int `json:"totalRows"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns page index of rows. An index outside the available pages
// falls back to the first page.
func Paginate[T any](rows []T, index int) ([]T, Page) {
	total := len(rows)
	pages := (total + PageSize - 1) / PageSize
	if index < 0 || index >= pages {
		index = 0
	}
	start := index * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, rows[start:end])
	return out, Page{Index: index, Size: PageSize, TotalRows: total, TotalPages: pages}
}
