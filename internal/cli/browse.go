package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/artable/internal/config"
	"github.com/rshade/artable/internal/logging"
	"github.com/rshade/artable/internal/metrics"
	"github.com/rshade/artable/internal/pagination"
	"github.com/rshade/artable/internal/tui"
)

// NewBrowseCmd creates the interactive browse command.
func NewBrowseCmd() *cobra.Command {
	var (
		startPage int
		plain     bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse artworks in an interactive, selectable table",
		Long: `Browse artworks page by page. Rows can be selected with space and the
selection is kept while moving between pages. When stdout is not a terminal
the requested page is printed as plain text instead.`,
		Example: `  # Start at the first page
  artable browse

  # Start at page 12
  artable browse --page 12

  # Print the page without the interactive table
  artable browse --plain`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationLogToFile: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, startPage, plain)
		},
	}

	cmd.Flags().IntVar(&startPage, "page", pagination.MinPage, "page to start on (1-based)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the page as plain text instead of the interactive table")

	return cmd
}

func runBrowse(cmd *cobra.Command, startPage int, forcePlain bool) error {
	if err := pagination.ValidatePage(startPage); err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	if tui.DetectOutputMode(forcePlain) == tui.OutputModePlain {
		ctrl, result, loadErr := loadOnce(ctx, client, startPage)
		if loadErr != nil {
			return loadErr
		}
		return tui.RenderPlain(cmd.OutOrStdout(), ctrl.Page(), result, ctrl.IsSelected)
	}

	log := logging.FromContext(ctx)
	ctrl := newController(ctx, client, startPage)
	defer ctrl.Close()

	model := tui.NewBrowserModel(ctx, ctrl,
		tui.WithPageChangeHook(func(page int) {
			log.Info().Int("page", page).Msg("page changed")
		}),
		tui.WithRowToggleHook(func(id int, selected bool) {
			log.Info().Int("artwork_id", id).Bool("selected", selected).Msg("row toggled")
		}),
	)

	if err = runProgram(ctx, model, config.GetGlobalConfig().Metrics.Listen); err != nil {
		return err
	}

	log.Info().
		Int("selected", ctrl.SelectedCount()).
		Ints("selected_ids", ctrl.SelectedIDs()).
		Msg("browse finished")
	return nil
}

// runProgram runs the Bubble Tea program and, when metricsAddr is set, the
// metrics endpoint alongside it. The endpoint stops when the program exits.
func runProgram(ctx context.Context, model tea.Model, metricsAddr string) error {
	g, gCtx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gCtx)
	defer stop()

	if metricsAddr != "" {
		srv, err := metrics.Listen(metricsAddr, logger)
		if err != nil {
			return err
		}
		g.Go(func() error { return srv.Serve(runCtx) })
	}

	g.Go(func() error {
		defer stop()
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(runCtx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run interactive TUI: %w", err)
		}
		return nil
	})

	return g.Wait()
}
