package model

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

// PageRequest is a 1-based page of a listing.
type PageRequest struct {
	Page int
	Size int
}

func NewPageRequest(page, size int) PageRequest {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageRequest{Page: page, Size: size}
}

func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.Size)
}

func (p PageRequest) Limit() uint64 {
	return uint64(p.Size)
}

func (p PageRequest) Paging(total int) Paging {
	return Paging{
		Page:          p.Page,
		PageSize:      p.Size,
		TotalElements: total,
	}
}
