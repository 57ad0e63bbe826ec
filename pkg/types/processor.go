package types

import (
	"errors"
	"fmt"
)

// ErrUnimplemented is returned when Process is called on a type that did not
// supply its own implementation.
var ErrUnimplemented = errors.New("unimplemented capability")

// Processor turns an ordered sequence of strings into a mapping from each
// distinct string to the number of times it occurs.
//
// Implementations must return an empty, non-nil map for empty input and must
// count exactly: result[s] equals the number of occurrences of s in data.
type Processor interface {
	Process(data []string) (map[string]int, error)
}

// UnimplementedProcessor can be embedded in types that intend to implement
// Processor. Until the embedding type defines its own Process, calls fail
// with ErrUnimplemented instead of returning an empty result.
type UnimplementedProcessor struct{}

// Process always fails with ErrUnimplemented.
func (UnimplementedProcessor) Process([]string) (map[string]int, error) {
	return nil, fmt.Errorf("process: %w", ErrUnimplemented)
}
