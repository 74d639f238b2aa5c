package domain

import "strings"

// Pagination is a page request plus an optional sort key. A leading "-" on
// Sort means descending order.
type Pagination struct {
	Page     int
	PageSize int
	Sort     string
	// SortSafelist maps accepted sort keys to the column they order by.
	SortSafelist map[string]string
}

// SortColumn returns the column for Sort. Keys missing from the safelist fall
// back to "id" so the value can be formatted into SQL.
func (p Pagination) SortColumn() string {
	column, ok := p.SortSafelist[strings.TrimPrefix(p.Sort, "-")]
	if !ok {
		return "id"
	}

	return column
}

func (p Pagination) SortDirection() string {
	if strings.HasPrefix(p.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.PageSize
}
