package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/pkg/sharedkit"
)

type versionInfo struct {
	Version string `json:"version"`
	Module  string `json:"module"`
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.jsonMode {
				return printJSON(cmd, versionInfo{Version: sharedkit.Version, Module: sharedkit.ModulePath})
			}
			return writef(cmd, "sharedkit v%s\nmodule: %s\n", sharedkit.Version, sharedkit.ModulePath)
		},
	}
}
