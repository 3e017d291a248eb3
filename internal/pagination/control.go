package pagination

import (
	"errors"
	"fmt"
	"math"
)

// Pagination defaults.
const (
	DefaultPageSize = 10
	MinPage         = 1
)

// ErrInvalidPage is returned when a page number below MinPage is requested.
var ErrInvalidPage = errors.New("page must be >= 1")

// TotalPages calculates ceil(total / limit). A non-positive limit falls back to
// DefaultPageSize; a non-positive total yields 0.
func TotalPages(total, limit int) int {
	if total <= 0 {
		return 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// ValidatePage checks that page is a usable 1-based page number.
func ValidatePage(page int) error {
	if page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	return nil
}

// Control is the previous/next pagination control. It is a pure value: the
// caller supplies the current page and the total page count, and applies the
// page numbers it emits.
//
// A Total of 0 means the page count is not known yet (nothing loaded).
type Control struct {
	Current int
	Total   int
}

// NewControl returns a control for the given page state.
func NewControl(current, total int) Control {
	return Control{Current: current, Total: total}
}

// known reports whether the page count has been loaded.
func (c Control) known() bool {
	return c.Total >= MinPage
}

// Clamp floors page at 1 and, once the total is known, caps it at the last page.
func (c Control) Clamp(page int) int {
	switch {
	case page < MinPage:
		return MinPage
	case c.known() && page > c.Total:
		return c.Total
	default:
		return page
	}
}

// Previous returns the page emitted by the "previous" control, floored at 1.
func (c Control) Previous() int {
	return c.Clamp(c.Current - 1)
}

// Next returns the page emitted by the "next" control, capped at the last page.
// While the total is unknown the control is disabled and Next stays put.
func (c Control) Next() int {
	if !c.known() {
		return c.Clamp(c.Current)
	}
	return c.Clamp(c.Current + 1)
}

// HasPrevious reports whether the "previous" control is enabled.
func (c Control) HasPrevious() bool {
	return c.Current > MinPage
}

// HasNext reports whether the "next" control is enabled.
func (c Control) HasNext() bool {
	return c.known() && c.Current < c.Total
}

// Label renders "current of total", with "?" while the total is unknown.
func (c Control) Label() string {
	if !c.known() {
		return fmt.Sprintf("%d of ?", c.Current)
	}
	return fmt.Sprintf("%d of %d", c.Current, c.Total)
}
