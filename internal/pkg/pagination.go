package pkg

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Pagination maps 1-based page/per_page onto an offset/limit pair.
type Pagination struct {
	Page    int
	PerPage int
}

// NewPagination applies defaults for absent or non-positive values.
func NewPagination(page, perPage int) Pagination {
	if page <= 0 {
		page = DefaultPage
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return Pagination{Page: page, PerPage: perPage}
}

// Offset is (page-1)*per_page; page 1 is always offset 0.
func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

func (p Pagination) Limit() int { return p.PerPage }
