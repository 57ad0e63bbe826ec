package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

type colorEntry struct {
	Name    types.Color `json:"name"`
	Default bool        `json:"default"`
}

func newColorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the color set",
		Long:  "colors lists every member of the color set. The configured color is marked with *.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := types.Colors()
			if a.flags.jsonMode {
				entries := make([]colorEntry, len(colors))
				for i, c := range colors {
					entries[i] = colorEntry{Name: c, Default: c == a.cfg.Color}
				}
				return printJSON(cmd, entries)
			}
			for _, c := range colors {
				marker := " "
				if c == a.cfg.Color {
					marker = "*"
				}
				if err := writef(cmd, "%s %s\n", marker, a.painter.Paint(c)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
