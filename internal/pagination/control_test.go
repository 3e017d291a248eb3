package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact multiple", total: 100, limit: 10, want: 10},
		{name: "partial last page", total: 95, limit: 10, want: 10},
		{name: "single record", total: 1, limit: 10, want: 1},
		{name: "empty", total: 0, limit: 10, want: 0},
		{name: "negative total", total: -5, limit: 10, want: 0},
		{name: "zero limit uses default", total: 25, limit: 0, want: 3},
		{name: "large collection", total: 125418, limit: 10, want: 12542},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestValidatePage(t *testing.T) {
	require.NoError(t, ValidatePage(1))
	require.NoError(t, ValidatePage(42))

	err := ValidatePage(0)
	require.ErrorIs(t, err, ErrInvalidPage)
	assert.Contains(t, err.Error(), "got 0")
}

func TestControl_Navigation(t *testing.T) {
	tests := []struct {
		name        string
		control     Control
		wantPrev    int
		wantNext    int
		hasPrevious bool
		hasNext     bool
	}{
		{name: "first page", control: NewControl(1, 10), wantPrev: 1, wantNext: 2, hasPrevious: false, hasNext: true},
		{name: "middle page", control: NewControl(5, 10), wantPrev: 4, wantNext: 6, hasPrevious: true, hasNext: true},
		{name: "last page", control: NewControl(10, 10), wantPrev: 9, wantNext: 10, hasPrevious: true, hasNext: false},
		{name: "single page", control: NewControl(1, 1), wantPrev: 1, wantNext: 1, hasPrevious: false, hasNext: false},
		{name: "total unknown", control: NewControl(1, 0), wantPrev: 1, wantNext: 1, hasPrevious: false, hasNext: false},
		{name: "total unknown deep page", control: NewControl(5, 0), wantPrev: 4, wantNext: 5, hasPrevious: true, hasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPrev, tt.control.Previous())
			assert.Equal(t, tt.wantNext, tt.control.Next())
			assert.Equal(t, tt.hasPrevious, tt.control.HasPrevious())
			assert.Equal(t, tt.hasNext, tt.control.HasNext())
		})
	}
}

func TestControl_NeverEmitsOutOfRange(t *testing.T) {
	// total=95, limit=10 -> 10 pages; page 11 is clamped back to 10.
	c := NewControl(1, TotalPages(95, 10))
	assert.Equal(t, 10, c.Total)
	assert.Equal(t, 10, c.Clamp(11))
	assert.Equal(t, 1, c.Clamp(0))

	// Only the floor applies until the total is known.
	unknown := NewControl(5, 0)
	assert.Equal(t, 42, unknown.Clamp(42))
	assert.Equal(t, 1, unknown.Clamp(-3))

	for page := 1; page <= c.Total; page++ {
		c.Current = page
		assert.GreaterOrEqual(t, c.Previous(), 1)
		assert.LessOrEqual(t, c.Next(), c.Total)
	}
}

func TestControl_Label(t *testing.T) {
	assert.Equal(t, "3 of 10", NewControl(3, 10).Label())
	assert.Equal(t, "1 of ?", NewControl(1, 0).Label())
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 95, 10)
	assert.Equal(t, Meta{
		CurrentPage: 2,
		PageSize:    10,
		TotalPages:  10,
		TotalItems:  95,
		HasPrevious: true,
		HasNext:     true,
	}, meta)

	last := NewMeta(10, 95, 0)
	assert.Equal(t, DefaultPageSize, last.PageSize)
	assert.False(t, last.HasNext)

	empty := NewMeta(0, 0, 10)
	assert.Equal(t, 1, empty.CurrentPage)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasPrevious)
	assert.False(t, empty.HasNext)
}
