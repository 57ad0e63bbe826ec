package consumer

import (
	"fmt"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// AnotherImplementation uses the shared container and helpers without
// implementing types.Processor.
type AnotherImplementation struct {
	shared types.Container[string]
}

// NewAnotherImplementation returns an implementation whose container holds
// the shared constant.
func NewAnotherImplementation() *AnotherImplementation {
	return &AnotherImplementation{
		shared: types.NewContainer("another", types.SharedConstant),
	}
}

// DoSomething greets the container's value.
func (a *AnotherImplementation) DoSomething() string {
	return types.Greet(a.shared.Value())
}

// Another shows the shared constant, a float container, the result of
// AnotherImplementation, a direct greeting and Green. It counts nothing and
// returns a nil tally.
func Another(env Env) (*types.Tally, error) {
	r := &report{w: env.Out}

	r.linef("Using constant: %s", types.SharedConstant)

	shared := types.NewContainer("another example", 3.14)
	r.linef("Name: %s, Value: %v", shared.Name(), shared.Value())

	impl := NewAnotherImplementation()
	r.linef("Implementation result: %s", impl.DoSomething())

	r.linef("Helper output: %s", types.Greet("another direct call"))
	r.linef("Selected color: %s", env.paint(types.Green))

	if r.err != nil {
		return nil, fmt.Errorf("write report: %w", r.err)
	}
	return nil, nil
}
