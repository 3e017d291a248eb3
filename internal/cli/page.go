package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/artable/internal/artwork"
	"github.com/rshade/artable/internal/pagination"
	"github.com/rshade/artable/internal/tui"
)

// Output formats for the page command.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// pageOutput is the JSON document printed by "page --output json".
type pageOutput struct {
	Pagination pagination.Meta  `json:"pagination"`
	Data       []artwork.Record `json:"data"`
}

// NewPageCmd creates the one-shot page command.
func NewPageCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "page N",
		Short: "Print a single page of artworks",
		Example: `  # Print the first page as a table
  artable page 1

  # Print page 3 as JSON
  artable page 3 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("page %q: %w", args[0], pagination.ErrInvalidPage)
			}
			return runPage(cmd, page, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	return cmd
}

func runPage(cmd *cobra.Command, page int, output string) error {
	output = strings.ToLower(strings.TrimSpace(output))
	if output != outputTable && output != outputJSON {
		return fmt.Errorf("unsupported output format: %s", output)
	}
	if err := pagination.ValidatePage(page); err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	ctrl, result, err := loadOnce(ctx, client, page)
	if err != nil {
		return err
	}

	if output == outputJSON {
		doc := pageOutput{
			Pagination: pagination.NewMeta(ctrl.Page(), result.Total, result.Limit),
			Data:       result.Records,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err = enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding page: %w", err)
		}
		return nil
	}

	return tui.RenderPlain(cmd.OutOrStdout(), ctrl.Page(), result, nil)
}
