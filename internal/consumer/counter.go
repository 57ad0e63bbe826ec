package consumer

import "github.com/mesh-intelligence/sharedkit/pkg/types"

// ItemCounter implements types.Processor by counting occurrences.
type ItemCounter struct{}

var _ types.Processor = ItemCounter{}

// Process returns the number of times each distinct item occurs in data.
func (ItemCounter) Process(data []string) (map[string]int, error) {
	result := make(map[string]int, len(data))
	for _, item := range data {
		result[item]++
	}
	return result, nil
}
