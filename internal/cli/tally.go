package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

func newTallyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Inspect recorded tallies",
	}
	cmd.AddCommand(newTallyListCmd(a))
	cmd.AddCommand(newTallyShowCmd(a))
	cmd.AddCommand(newTallyDeleteCmd(a))
	return cmd
}

func newTallyListCmd(a *app) *cobra.Command {
	var consumerName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded tallies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			tallies, err := store.List(consumerName)
			if err != nil {
				return sysError(fmt.Errorf("list tallies: %w", err))
			}

			if a.flags.jsonMode {
				return printJSON(cmd, tallies)
			}
			if len(tallies) == 0 {
				return writeLine(cmd, "No tallies recorded")
			}
			for _, t := range tallies {
				if err := writef(cmd, "%s  %-10s  %s  total=%d\n",
					t.TallyID, t.Consumer, t.CreatedAt.Format(time.RFC3339), t.Total()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&consumerName, "consumer", "", "only list tallies of this consumer")
	return cmd
}

func newTallyShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one tally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			t, err := store.Get(args[0])
			if err != nil {
				return storeError("get tally", err)
			}

			if a.flags.jsonMode {
				return printJSON(cmd, t)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "ID:       %s\n", t.TallyID)
			fmt.Fprintf(&b, "Consumer: %s\n", t.Consumer)
			fmt.Fprintf(&b, "Created:  %s\n", t.CreatedAt.Format(time.RFC3339))
			fmt.Fprintf(&b, "Total:    %d\n", t.Total())
			for _, item := range t.Items() {
				fmt.Fprintf(&b, "  %s: %d\n", item, t.Counts[item])
			}
			return writef(cmd, "%s", b.String())
		},
	}
}

func newTallyDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			id := args[0]
			if err := store.Delete(id); err != nil {
				return storeError("delete tally", err)
			}
			a.logger.Info("tally deleted", slog.String("tally_id", id))

			if a.flags.jsonMode {
				return printJSON(cmd, map[string]string{"deleted": id})
			}
			return writef(cmd, "Deleted tally %s\n", id)
		},
	}
}

// storeError classifies a store error: missing or malformed IDs are the
// caller's fault, anything else is a system error.
func storeError(op string, err error) error {
	err = fmt.Errorf("%s: %w", op, err)
	if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
		return userError(err)
	}
	return sysError(err)
}
