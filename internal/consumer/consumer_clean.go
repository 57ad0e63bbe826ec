package consumer

import (
	"fmt"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// CleanConsumer uses only the helper functions: it greets, lists the sample
// items and prints the process-data report, whose counts it returns.
func CleanConsumer(env Env) (*types.Tally, error) {
	r := &report{w: env.Out}

	r.linef("%s", types.Greet("World"))
	for _, item := range types.SampleItems() {
		r.linef("Processing %s", item)
	}

	counts, err := processData(r)
	if err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, fmt.Errorf("write report: %w", r.err)
	}
	return types.NewTally(NameCleanConsumer, counts), nil
}
