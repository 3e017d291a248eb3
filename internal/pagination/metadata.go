package pagination

// Meta contains metadata about one rendered page.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates pagination metadata for page given the API's total and limit.
func NewMeta(page, total, limit int) Meta {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < MinPage {
		page = MinPage
	}

	totalPages := TotalPages(total, limit)

	return Meta{
		CurrentPage: page,
		PageSize:    limit,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasPrevious: page > MinPage,
		HasNext:     page < totalPages,
	}
}
