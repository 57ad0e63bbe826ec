package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

const defaultGreetName = "World"

func newGreetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultGreetName
			if len(args) == 1 {
				name = args[0]
			}
			greeting := types.Greet(name)
			if a.flags.jsonMode {
				return printJSON(cmd, map[string]string{"greeting": greeting})
			}
			return writeLine(cmd, greeting)
		},
	}
}
