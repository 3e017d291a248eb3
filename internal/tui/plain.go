package tui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/artable/internal/artwork"
	"github.com/rshade/artable/internal/pagination"
)

// plainCellWidth caps free-text columns in plain output.
const plainCellWidth = 40

// RenderPlain writes one page as a plain text table followed by the
// pagination label. selected may be nil.
func RenderPlain(w io.Writer, page int, result *artwork.PageResult, selected func(id int) bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
	fmt.Fprintln(tw, "SEL\tID\tTITLE\tORIGIN\tARTIST\tINSCRIPTION\tSTART\tEND")

	for _, r := range result.Records {
		sel := false
		if selected != nil {
			sel = selected(r.ID)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			checkbox(sel),
			r.ID,
			truncate(cellText(r.Title)),
			truncate(cellText(r.PlaceOfOrigin)),
			truncate(cellText(r.ArtistDisplay)),
			truncate(cellText(r.Inscription)),
			yearText(r.DateStart),
			yearText(r.DateEnd),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	control := pagination.NewControl(page, result.TotalPages())
	_, err := fmt.Fprintf(w, "\nPage %s · %s artworks\n", control.Label(), formatCount(result.Total))
	return err
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= plainCellWidth {
		return s
	}
	return string(runes[:plainCellWidth-1]) + "…"
}
