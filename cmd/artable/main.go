package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/rshade/artable/internal/cli"
	"github.com/rshade/artable/pkg/version"
)

func main() {
	os.Exit(run(context.Background()))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context) int {
	root := cli.NewRootCmd(version.GetVersion())

	if err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return 1
	}
	return 0
}
