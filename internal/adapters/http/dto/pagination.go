package dto

import (
	"github.com/quotely/quotely-api/internal/ports"
)

// PageQuery binds the offset pagination query parameters shared by list
// endpoints. Out-of-range values are normalized rather than rejected.
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// ToPage normalizes the raw query values into a pagination window.
func (q PageQuery) ToPage() ports.Page {
	return ports.NormalizePage(q.Page, q.Limit)
}

// Pagination is the metadata block attached to paginated list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination builds pagination metadata for a page drawn from a result
// set of the given total size.
func NewPagination(page ports.Page, total int) *Pagination {
	return &Pagination{
		Page:  page.Number,
		Limit: page.Limit,
		Total: total,
		Pages: page.Pages(total),
	}
}
