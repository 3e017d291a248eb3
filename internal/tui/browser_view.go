package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/artable/internal/artwork"
	"github.com/rshade/artable/internal/pagination"
)

const (
	titleText   = "Artwork List"
	loadingText = "Loading..."
	emptyText   = "No artworks to display."
	prevText    = "‹ Previous"
	nextText    = "Next ›"
)

// View renders the current view (Bubble Tea interface).
func (m BrowserModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	default:
		return m.renderListView()
	}
}

// renderListView renders header, table (or loading indicator), pagination and help.
func (m BrowserModel) renderListView() string {
	sections := []string{m.renderHeader()}

	switch {
	case m.ctrl.Loading():
		sections = append(sections, m.spinner.View()+" "+InfoStyle.Render(loadingText))
	case len(m.ctrl.Records()) == 0:
		sections = append(sections, m.table.View(), SubtleStyle.Render(emptyText))
	default:
		sections = append(sections, m.table.View())
	}

	sections = append(sections, RenderPagination(m.ctrl.Pagination()), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title and the selection count.
func (m BrowserModel) renderHeader() string {
	title := HeaderStyle.Render(titleText)
	count := CountStyle.Render(formatCount(m.ctrl.SelectedCount())) + SubtleStyle.Render(" selected")

	if total := m.ctrl.TotalRecords(); total > 0 {
		count += SubtleStyle.Render(" · " + formatCount(total) + " artworks")
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(count)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + count
}

// RenderPagination renders the previous/next control. Controls at a boundary
// are rendered dimmed.
func RenderPagination(c pagination.Control) string {
	prev := DisabledControlStyle.Render(prevText)
	if c.HasPrevious() {
		prev = ControlStyle.Render(prevText)
	}
	next := DisabledControlStyle.Render(nextText)
	if c.HasNext() {
		next = ControlStyle.Render(nextText)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, ValueStyle.Render(c.Label()), next)
}

// renderDetailView renders every field of the chosen record.
func (m BrowserModel) renderDetailView() string {
	r := m.detail
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ARTWORK DETAIL"))
	content.WriteString("\n\n")

	writeField(&content, "ID", formatCount(r.ID))
	writeField(&content, "Selected", checkbox(m.ctrl.IsSelected(r.ID)))
	writeField(&content, "Title", r.Title)
	writeField(&content, "Origin", r.PlaceOfOrigin)
	writeField(&content, "Artist", r.ArtistDisplay)
	writeField(&content, "Inscription", r.Inscription)
	writeField(&content, "Years", yearRange(r))

	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("space: select · esc: back · q: quit"))

	width := m.width - borderPadding
	if width < minDetailWidth {
		width = minDetailWidth
	}
	return BoxStyle.Width(width).Render(content.String())
}

const (
	borderPadding  = 2
	minDetailWidth = 40
	labelWidth     = 13
)

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		value = emptyCell
	}
	b.WriteString(LabelStyle.Width(labelWidth).Render(label + ":"))
	b.WriteString(ValueStyle.Render(value))
	b.WriteString("\n")
}

func yearRange(r artwork.Record) string {
	start, end := yearText(r.DateStart), yearText(r.DateEnd)
	if start == end {
		return start
	}
	return start + " – " + end
}
