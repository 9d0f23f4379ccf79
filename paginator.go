package verdant

// Paginator is a 1-based page cursor bounded by [1, total]. Next and Prev
// are no-ops at the bounds; there is no direct jump.
type Paginator struct {
	page  int
	total int
}

// NewPaginator starts at page 1. A total below 1 is treated as an empty
// catalog with a single placeholder page.
func NewPaginator(total int) *Paginator {
	if total < 1 {
		total = 1
	}
	return &Paginator{page: 1, total: total}
}

// Page returns the current page number.
func (p *Paginator) Page() int { return p.page }

// Total returns the page count.
func (p *Paginator) Total() int { return p.total }

// Next advances one page, stopping at the last.
func (p *Paginator) Next() {
	if p.page < p.total {
		p.page++
	}
}

// Prev steps back one page, stopping at the first.
func (p *Paginator) Prev() {
	if p.page > 1 {
		p.page--
	}
}

// ClampPage bounds an arbitrary page number (e.g. from a query parameter)
// into [1, total].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
