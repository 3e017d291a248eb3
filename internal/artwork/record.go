package artwork

import (
	"strings"

	"github.com/rshade/artable/internal/pagination"
)

// DefaultPageSize is the number of records requested per page.
const DefaultPageSize = pagination.DefaultPageSize

// Fields is the field projection sent with every page request.
//
//nolint:gochecknoglobals // Fixed projection shared by client and tests.
var Fields = []string{
	"id",
	"title",
	"place_of_origin",
	"artist_display",
	"inscription",
	"date_start",
	"date_end",
}

// FieldsParam returns the projection in the comma-separated form the API expects.
func FieldsParam() string {
	return strings.Join(Fields, ",")
}

// Record is a single artwork row. The API sends null for unknown values,
// which decode to the zero value.
type Record struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscription   string `json:"inscription"`
	DateStart     int    `json:"date_start"`
	DateEnd       int    `json:"date_end"`
}

// PageResult is one decoded page of artworks plus the pagination metadata
// needed to derive the total page count.
type PageResult struct {
	Records []Record
	Total   int
	Limit   int

	// CurrentPage is reported by the API but not trusted; the requested page
	// number is authoritative.
	CurrentPage int
}

// TotalPages returns ceil(Total / Limit). A zero limit falls back to DefaultPageSize.
func (p *PageResult) TotalPages() int {
	if p == nil {
		return 0
	}
	return pagination.TotalPages(p.Total, p.Limit)
}

// IDs returns the record identifiers in page order.
func (p *PageResult) IDs() []int {
	if p == nil {
		return nil
	}
	ids := make([]int, len(p.Records))
	for i, r := range p.Records {
		ids[i] = r.ID
	}
	return ids
}

// apiResponse is the wire shape of GET /artworks.
type apiResponse struct {
	Data       []Record `json:"data"`
	Pagination struct {
		Total       int `json:"total"`
		Limit       int `json:"limit"`
		CurrentPage int `json:"current_page"`
	} `json:"pagination"`
}

func (r apiResponse) toPageResult() *PageResult {
	records := r.Data
	if records == nil {
		records = []Record{}
	}
	return &PageResult{
		Records:     records,
		Total:       r.Pagination.Total,
		Limit:       r.Pagination.Limit,
		CurrentPage: r.Pagination.CurrentPage,
	}
}
