package cli

import (
	"context"
	"fmt"

	"github.com/rshade/artable/internal/artwork"
	"github.com/rshade/artable/internal/config"
	"github.com/rshade/artable/internal/logging"
	"github.com/rshade/artable/internal/table"
)

// newClient builds the artworks client from the global configuration.
func newClient(ctx context.Context) (*artwork.Client, error) {
	cfg := config.GetGlobalConfig()
	l := logging.ComponentLogger(*logging.FromContext(ctx), "artwork")

	client, err := artwork.NewClient(artwork.ClientConfig{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Logger:    &l,
	})
	if err != nil {
		return nil, fmt.Errorf("creating artworks client: %w", err)
	}
	return client, nil
}

// newController builds a table controller that logs under the "table" component.
func newController(ctx context.Context, fetcher table.PageFetcher, page int) *table.Controller {
	return table.New(ctx, fetcher,
		table.WithStartPage(page),
		table.WithLogger(logging.ComponentLogger(*logging.FromContext(ctx), "table")),
	)
}

// loadOnce runs a single load cycle for page through the controller so one-shot
// output gets the same deadline and error handling as the browser.
func loadOnce(
	ctx context.Context,
	fetcher table.PageFetcher,
	page int,
) (*table.Controller, *artwork.PageResult, error) {
	ctrl := newController(ctx, fetcher, page)
	res := ctrl.Start().Run()
	ctrl.Apply(res)
	ctrl.Close()

	switch res.Outcome {
	case artwork.OutcomeSuccess:
		return ctrl, res.Result, nil
	case artwork.OutcomeTimeout:
		return nil, nil, fmt.Errorf("loading page %d: %w", page, artwork.ErrTimeout)
	case artwork.OutcomeCancelled:
		return nil, nil, fmt.Errorf("loading page %d: %w", page, res.Err)
	default:
		return nil, nil, res.Err
	}
}
