package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

func newItemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the sample items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := types.SampleItems()
			if a.flags.jsonMode {
				return printJSON(cmd, items)
			}
			for _, item := range items {
				if err := writeLine(cmd, item); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
