package model

import (
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "last_name:asc"

	defaultSortColumn = "last_name"
)

// sortableColumns is the allow-list of columns a listing may be ordered by
var sortableColumns = map[string]bool{
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

// ListQuery describes a contact listing request
type ListQuery struct {
	Search   string
	Page     int
	PageSize int
	Sort     string
}

// Normalize fills in defaults for out-of-range paging values.
// PageSize has no upper bound.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	return q
}

// Offset is the number of rows skipped before the requested page
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// ParseSort splits "column:direction". Columns outside the allow-list fall
// back to last_name; the direction is descending only for "desc".
func ParseSort(sort string) (column string, desc bool) {
	col, dir, _ := strings.Cut(sort, ":")
	column = col
	if !sortableColumns[column] {
		column = defaultSortColumn
	}
	desc = strings.EqualFold(dir, "desc")
	return column, desc
}

// FormatSort joins a column and direction into the "column:direction" form
func FormatSort(column string, desc bool) string {
	if desc {
		return column + ":desc"
	}
	return column + ":asc"
}
