package consumer

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// Func runs one consumer. It returns the tally it computed, or nil when the
// consumer counts nothing.
type Func func(env Env) (*types.Tally, error)

// Consumer names accepted by Lookup.
const (
	NamePrimary       = "consumer"
	NameAnother       = "another"
	NameCleanConsumer = "consumer_clean"
	NameClean         = "clean"
	NameMain          = "main"
)

// ErrConsumerNotFound is returned by Lookup for unknown names.
var ErrConsumerNotFound = errors.New("consumer not found")

var registry = map[string]Func{
	NamePrimary:       Primary,
	NameAnother:       Another,
	NameCleanConsumer: CleanConsumer,
	NameClean:         Clean,
	NameMain:          Main,
}

// Lookup returns the consumer registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConsumerNotFound, name)
	}
	return fn, nil
}

// Names lists the registered consumer names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Run looks up and runs the named consumer.
func Run(name string, env Env) (*types.Tally, error) {
	fn, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	env.logger().Debug("consumer run", "consumer", name)
	tally, err := fn(env)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return tally, nil
}
