package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/internal/consumer"
	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// countConsumer is the consumer name recorded for tallies made by count.
const countConsumer = "count"

type countResult struct {
	Counts  map[string]int `json:"counts"`
	Total   int            `json:"total"`
	TallyID string         `json:"tally_id,omitempty"`
}

func newCountCmd(a *app) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "count [item...]",
		Short: "Count item occurrences",
		Long: "count reports how often each argument occurs. Without arguments it\n" +
			"counts the sample items.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := args
			if len(data) == 0 {
				data = types.SampleItems()
			}

			var p types.Processor = consumer.ItemCounter{}
			counts, err := p.Process(data)
			if err != nil {
				return sysError(err)
			}
			tally := types.NewTally(countConsumer, counts)

			if record || a.cfg.Record {
				if err := a.saveTally(tally); err != nil {
					return err
				}
			}

			if a.flags.jsonMode {
				return printJSON(cmd, countResult{Counts: tally.Counts, Total: tally.Total(), TallyID: tally.TallyID})
			}
			for _, item := range tally.Items() {
				if err := writef(cmd, "%s: %d\n", item, tally.Counts[item]); err != nil {
					return err
				}
			}
			if tally.TallyID != "" {
				return writef(cmd, "Recorded tally %s\n", tally.TallyID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "save the counts to the tally store")
	return cmd
}
