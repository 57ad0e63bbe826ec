package consumer

import (
	"fmt"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// CleanConstant is reported by the clean consumer.
const CleanConstant = "This is a clean constant"

// Named is a value that only knows its name.
type Named struct {
	name string
}

// NewNamed returns a Named called name.
func NewNamed(name string) Named {
	return Named{name: name}
}

// Name returns the name given to NewNamed.
func (n Named) Name() string { return n.name }

// Processed labels param as processed.
func Processed(param string) string {
	return "Processed: " + param
}

// Sum adds up items.
func Sum(items []int) int {
	total := 0
	for _, n := range items {
		total += n
	}
	return total
}

func cleanValues() []int {
	return []int{10, 20, 30, 40, 50}
}

// Clean exercises the standalone clean helpers: a named value, the
// processed label of the shared constant, a sum and CleanConstant. It
// counts nothing and returns a nil tally.
func Clean(env Env) (*types.Tally, error) {
	r := &report{w: env.Out}

	r.linef("Instance name: %s", NewNamed(NameClean).Name())
	r.linef("%s", Processed(types.SharedConstant))
	r.linef("Sum: %d", Sum(cleanValues()))
	r.linef("Constant: %s", CleanConstant)

	if r.err != nil {
		return nil, fmt.Errorf("write report: %w", r.err)
	}
	return nil, nil
}
