package models

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination is the normalized page window of a list request.
type Pagination struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize clamps the window to sane bounds.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

func (p Pagination) Skip() int64 {
	n := p.Normalize()
	return int64((n.Page - 1) * n.Limit)
}

// Page wraps one page of list results.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func NewPage[T any](items []T, total int64, p Pagination) Page[T] {
	n := p.Normalize()
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: n.Page, Limit: n.Limit}
}

// UploadResult is returned by every upload endpoint.
type UploadResult struct {
	URL         string `json:"url"`
	PublicID    string `json:"public_id"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
