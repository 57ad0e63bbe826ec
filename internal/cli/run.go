package cli

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/internal/consumer"
	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

type runResult struct {
	Consumer string       `json:"consumer"`
	Output   []string     `json:"output"`
	Tally    *types.Tally `json:"tally,omitempty"`
}

func newRunCmd(a *app) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "run <consumer>",
		Short: "Run a consumer and print its report",
		Long: "run executes one of the shared-helper consumers (" + strings.Join(consumer.Names(), ", ") + ")\n" +
			"and prints its report. With --record, or record: true in config.yaml,\n" +
			"the tally the consumer computed is saved to the tally store.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: consumer.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, err := consumer.Lookup(name); err != nil {
				return userError(fmt.Errorf("%w (available: %s)", err, strings.Join(consumer.Names(), ", ")))
			}

			var buf bytes.Buffer
			env := consumer.Env{Out: cmd.OutOrStdout(), Painter: a.painter, Logger: a.logger}
			if a.flags.jsonMode {
				env.Out = &buf
			}

			tally, err := consumer.Run(name, env)
			if err != nil {
				return sysError(err)
			}

			if tally != nil && (record || a.cfg.Record) {
				if err := a.saveTally(tally); err != nil {
					return err
				}
				if !a.flags.jsonMode {
					if err := writef(cmd, "Recorded tally %s\n", tally.TallyID); err != nil {
						return err
					}
				}
			}

			if a.flags.jsonMode {
				return printJSON(cmd, runResult{
					Consumer: name,
					Output:   splitLines(buf.String()),
					Tally:    tally,
				})
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "save the consumer's tally to the tally store")
	return cmd
}

// saveTally stores t and fills in its ID and creation time.
func (a *app) saveTally(t *types.Tally) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	id, err := store.Save(t)
	if err != nil {
		if errors.Is(err, types.ErrInvalidData) || errors.Is(err, types.ErrInvalidID) {
			return userError(fmt.Errorf("save tally: %w", err))
		}
		return sysError(fmt.Errorf("save tally: %w", err))
	}
	a.logger.Info("tally recorded", slog.String("tally_id", id), slog.String("consumer", t.Consumer))
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
