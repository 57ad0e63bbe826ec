package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/internal/config"
	"github.com/mesh-intelligence/sharedkit/internal/paths"
)

type initResult struct {
	ConfigFile    string `json:"config_file"`
	ConfigCreated bool   `json:"config_created"`
	DataDir       string `json:"data_dir"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file and tally store",
		Long: "init writes a default config.yaml into the configuration directory if\n" +
			"none exists and creates the tally store in the data directory. Running\n" +
			"it again leaves an existing configuration untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := config.WriteDefault(a.configDir, a.flags.dataDir)
			if err != nil {
				return sysError(err)
			}

			dataDir, err := a.resolveDataDir()
			if err != nil {
				return sysError(fmt.Errorf("resolve data dir: %w", err))
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.Detach(); err != nil {
				return sysError(fmt.Errorf("detach store: %w", err))
			}

			res := initResult{
				ConfigFile:    paths.ConfigFile(a.configDir),
				ConfigCreated: created,
				DataDir:       dataDir,
			}
			if a.flags.jsonMode {
				return printJSON(cmd, res)
			}
			if created {
				if err := writef(cmd, "Created %s\n", res.ConfigFile); err != nil {
					return err
				}
			} else if err := writef(cmd, "Using existing %s\n", res.ConfigFile); err != nil {
				return err
			}
			return writef(cmd, "Tally store ready in %s\n", res.DataDir)
		},
	}
}
