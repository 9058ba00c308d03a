package domain

// PaginationParams selects one page of a list. Pages are 1-based; a zero PageSize means
// the whole list.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Window returns the [start, end) slice bounds of the page within a list of total items.
// Pages past the end yield an empty window.
func (p PaginationParams) Window(total int) (start, end int) {
	if p.PageSize <= 0 {
		return 0, total
	}
	page := max(p.Page, 1)
	start = min((page-1)*p.PageSize, total)
	return start, min(start+p.PageSize, total)
}

// Paginate returns the page of items selected by p.
func Paginate[T any](items []T, p PaginationParams) []T {
	start, end := p.Window(len(items))
	return items[start:end]
}
