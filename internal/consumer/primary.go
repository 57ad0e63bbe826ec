package consumer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// Primary greets, lists and counts the sample items, shows a string
// container holding the shared constant, and reports Red as its color. It
// finishes with the process-data report and returns the tally of the
// sample items.
func Primary(env Env) (*types.Tally, error) {
	r := &report{w: env.Out}

	r.linef("%s", types.Greet("World"))

	items := types.SampleItems()
	for _, item := range items {
		r.linef("Processing %s", item)
	}

	shared := types.NewContainer("consumer", types.SharedConstant)
	r.linef("Using shared class: %s - %s", shared.Name(), shared.Value())

	var impl types.Processor = ItemCounter{}
	counts, err := impl.Process(items)
	if err != nil {
		return nil, fmt.Errorf("process items: %w", err)
	}
	r.linef("Processed items: %s", formatCounts(counts))
	r.linef("Selected color: %s", env.paint(types.Red))

	if _, err := processData(r); err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, fmt.Errorf("write report: %w", r.err)
	}

	env.logger().Debug("items processed", "consumer", NamePrimary, "distinct", len(counts))
	return types.NewTally(NamePrimary, counts), nil
}

// processData reports the size, sorted order and counts of the sample items.
func processData(r *report) (map[string]int, error) {
	data := types.SampleItems()
	r.linef("Found %d items", len(data))

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	r.linef("Sorted data: %s", strings.Join(sorted, ", "))

	counts, err := ItemCounter{}.Process(data)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	r.linef("Item counts: %s", formatCounts(counts))
	return counts, nil
}
