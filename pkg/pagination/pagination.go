// Package pagination provides page-number pagination helpers shared by the
// use case and delivery layers.
package pagination

import "strconv"

// Params holds normalized pagination parameters.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps the page to 1 when it is zero or negative.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePage parses a raw query value into a page number.
// Non-numeric or non-positive values fall back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// Pages returns the total number of pages for a row count.
// An empty result set still reports one page.
func Pages(total int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}

	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}

	return pages
}
