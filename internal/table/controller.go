package table

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/artable/internal/artwork"
	"github.com/rshade/artable/internal/pagination"
	"github.com/rshade/artable/internal/selection"
)

// DefaultTimeout bounds a single page load.
const DefaultTimeout = 10 * time.Second

// ErrUnknownRecord is returned when selecting an id that is not on the current page.
var ErrUnknownRecord = errors.New("record is not on the current page")

// PageFetcher fetches one page of artworks.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (*artwork.PageResult, error)
}

// State is the page-load state of the controller.
type State int

const (
	// StateIdle means no page load is in flight.
	StateIdle State = iota
	// StateLoading means a page load is in flight.
	StateLoading
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeout overrides the per-load deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithStartPage sets the page loaded by Start.
func WithStartPage(page int) Option {
	return func(c *Controller) {
		if page >= pagination.MinPage {
			c.page = page
		}
	}
}

// Controller owns the state of the artwork table.
type Controller struct {
	fetcher PageFetcher
	parent  context.Context
	timeout time.Duration
	logger  zerolog.Logger

	// Page state
	page         int
	totalPages   int
	totalRecords int
	records      []artwork.Record

	// Load state
	loading     bool
	state       State
	lastOutcome artwork.Outcome
	generation  uint64
	cancel      context.CancelCauseFunc

	selected *selection.Set
}

// New creates a controller. ctx bounds every page load; cancelling it aborts
// the in-flight load.
func New(ctx context.Context, fetcher PageFetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		parent:   ctx,
		timeout:  DefaultTimeout,
		logger:   zerolog.Nop(),
		page:     pagination.MinPage,
		records:  []artwork.Record{},
		state:    StateIdle,
		selected: selection.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cycle is one page-load request. Run it off the event loop and hand the
// result back to Apply.
type Cycle struct {
	Generation uint64
	Page       int

	ctx     context.Context
	fetcher PageFetcher
	timeout time.Duration
}

// LoadResult is the outcome of a Cycle.
type LoadResult struct {
	Generation uint64
	Page       int
	Result     *artwork.PageResult
	Err        error
	Outcome    artwork.Outcome
	Duration   time.Duration
}

// Run performs the page load with the cycle's deadline.
func (cy Cycle) Run() LoadResult {
	start := time.Now()
	ctx, cancel := context.WithTimeoutCause(cy.ctx, cy.timeout, artwork.ErrTimeout)
	defer cancel()

	result, err := cy.fetcher.FetchPage(ctx, cy.Page)
	return LoadResult{
		Generation: cy.Generation,
		Page:       cy.Page,
		Result:     result,
		Err:        err,
		Outcome:    artwork.Classify(ctx, err),
		Duration:   time.Since(start),
	}
}

// Start begins the initial load of the start page.
func (c *Controller) Start() Cycle {
	return c.begin()
}

// SetPage navigates to page. The page is floored at 1 and, once the total is
// known, capped at the last page. It reports false (and starts nothing) when
// the page does not change; otherwise the previous load is cancelled and a new
// cycle is returned.
func (c *Controller) SetPage(page int) (Cycle, bool) {
	page = c.clamp(page)
	if page == c.page {
		return Cycle{}, false
	}
	c.page = page
	return c.begin(), true
}

// Reload starts a new cycle for the current page.
func (c *Controller) Reload() Cycle {
	return c.begin()
}

func (c *Controller) clamp(page int) int {
	if page < pagination.MinPage {
		return pagination.MinPage
	}
	if c.totalPages > 0 && page > c.totalPages {
		return c.totalPages
	}
	return page
}

func (c *Controller) begin() Cycle {
	if c.cancel != nil {
		c.cancel(artwork.ErrSuperseded)
	}

	ctx, cancel := context.WithCancelCause(c.parent)
	c.cancel = cancel
	c.generation++
	c.loading = true
	c.state = StateLoading

	c.logger.Debug().
		Int("page", c.page).
		Uint64("generation", c.generation).
		Msg("page load started")

	return Cycle{
		Generation: c.generation,
		Page:       c.page,
		ctx:        ctx,
		fetcher:    c.fetcher,
		timeout:    c.timeout,
	}
}

// Apply folds a finished cycle into the controller. Results from superseded
// cycles are dropped and Apply reports false.
func (c *Controller) Apply(res LoadResult) bool {
	artwork.RecordOutcome(res.Outcome)

	if res.Generation != c.generation {
		c.logger.Debug().
			Int("page", res.Page).
			Uint64("generation", res.Generation).
			Uint64("current_generation", c.generation).
			Str("outcome", string(res.Outcome)).
			Msg("discarding stale page load")
		return false
	}

	if c.cancel != nil {
		c.cancel(nil)
		c.cancel = nil
	}
	c.loading = false
	c.state = StateIdle
	c.lastOutcome = res.Outcome

	switch res.Outcome {
	case artwork.OutcomeSuccess:
		if res.Result != nil {
			c.records = res.Result.Records
			c.totalRecords = res.Result.Total
			c.totalPages = res.Result.TotalPages()
		}
		c.logger.Debug().
			Int("page", res.Page).
			Int("records", len(c.records)).
			Int("total_pages", c.totalPages).
			Dur("duration", res.Duration).
			Msg("page loaded")
	case artwork.OutcomeTimeout:
		c.logger.Debug().Int("page", res.Page).Dur("timeout", c.timeout).Msg("page load timed out")
	case artwork.OutcomeCancelled:
		c.logger.Debug().Int("page", res.Page).Msg("page load cancelled")
	case artwork.OutcomeFailed:
		c.logger.Error().Err(res.Err).Int("page", res.Page).Msg("page load failed")
	}

	return true
}

// Close cancels any in-flight load.
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel(context.Canceled)
		c.cancel = nil
	}
}

// ToggleSelection flips the selection of a record on the current page and
// reports whether it is now selected.
func (c *Controller) ToggleSelection(id int) (bool, error) {
	if !c.onPage(id) {
		return false, fmt.Errorf("%w: id %d", ErrUnknownRecord, id)
	}
	return c.selected.Toggle(id), nil
}

// ToggleSelectAll selects every record on the current page, or deselects them
// all when they are already selected. Selections on other pages are kept. It
// does nothing when the page is empty.
func (c *Controller) ToggleSelectAll() {
	c.selected.ToggleAll(c.pageIDs())
}

// AllSelectedOnPage reports whether the current page is non-empty and fully selected.
func (c *Controller) AllSelectedOnPage() bool {
	return c.selected.AllSelected(c.pageIDs())
}

// IsSelected reports whether id is selected.
func (c *Controller) IsSelected(id int) bool {
	return c.selected.Contains(id)
}

// SelectedCount returns the number of selected records across all pages.
func (c *Controller) SelectedCount() int {
	return c.selected.Len()
}

// SelectedIDs returns the selected record ids in ascending order.
func (c *Controller) SelectedIDs() []int {
	return c.selected.IDs()
}

func (c *Controller) pageIDs() []int {
	ids := make([]int, len(c.records))
	for i, r := range c.records {
		ids[i] = r.ID
	}
	return ids
}

func (c *Controller) onPage(id int) bool {
	for _, r := range c.records {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Page returns the current page number.
func (c *Controller) Page() int { return c.page }

// TotalPages returns the page count from the last successful load, 0 before it.
func (c *Controller) TotalPages() int { return c.totalPages }

// TotalRecords returns the record count from the last successful load.
func (c *Controller) TotalRecords() int { return c.totalRecords }

// Records returns the rows of the current page.
func (c *Controller) Records() []artwork.Record { return c.records }

// Loading reports whether a page load is in flight.
func (c *Controller) Loading() bool { return c.loading }

// State returns the load state.
func (c *Controller) State() State { return c.state }

// LastOutcome returns the outcome of the last applied cycle.
func (c *Controller) LastOutcome() artwork.Outcome { return c.lastOutcome }

// Generation returns the generation of the latest cycle.
func (c *Controller) Generation() uint64 { return c.generation }

// Pagination returns the pagination control for the current page state.
func (c *Controller) Pagination() pagination.Control {
	return pagination.NewControl(c.page, c.totalPages)
}
