package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/artable/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration commands"}
	cmd.AddCommand(NewConfigShowCmd())
	return cmd
}

// NewConfigShowCmd prints the effective configuration (file, environment and flags applied).
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.GetGlobalConfig().YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}
