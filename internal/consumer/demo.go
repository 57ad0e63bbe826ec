package consumer

import (
	"fmt"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// Values reported by the main consumer.
const (
	DemoConstant = "test constant"
	DemoPi       = 3.14159
)

// DemoItems is the fixed input counted by the main consumer.
func DemoItems() []string {
	return []string{"apple", "banana", "apple", "orange"}
}

func demoValues() []int {
	return []int{1, 2, 3, 4, 5}
}

// Accumulator holds a running integer total.
type Accumulator struct {
	value int
}

// NewAccumulator returns an Accumulator starting at value.
func NewAccumulator(value int) *Accumulator {
	return &Accumulator{value: value}
}

// Add increments the total by n and returns the new total.
func (a *Accumulator) Add(n int) int {
	a.value += n
	return a.value
}

// Main is the self-contained demo: a greeting, an Accumulator stepped from
// 10 by 5, the counts of DemoItems, and the demo constants. It returns the
// tally of DemoItems.
func Main(env Env) (*types.Tally, error) {
	r := &report{w: env.Out}

	r.linef("%s", types.Greet("World"))
	r.linef("New value: %d", NewAccumulator(10).Add(5))

	var p types.Processor = ItemCounter{}
	counts, err := p.Process(DemoItems())
	if err != nil {
		return nil, fmt.Errorf("count demo items: %w", err)
	}
	r.linef("Counts: %s", formatCounts(counts))

	r.linef("Constants - constant: %s, pi: %v", DemoConstant, DemoPi)
	r.linef("Variables - values: %v", demoValues())

	if r.err != nil {
		return nil, fmt.Errorf("write report: %w", r.err)
	}
	return types.NewTally(NameMain, counts), nil
}
