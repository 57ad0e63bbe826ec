package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTallyCopiesCounts(t *testing.T) {
	counts := map[string]int{"apple": 2}
	tally := NewTally("consumer", counts)
	counts["apple"] = 9
	counts["pear"] = 1

	assert.Equal(t, "consumer", tally.Consumer)
	assert.Equal(t, map[string]int{"apple": 2}, tally.Counts)
	assert.Empty(t, tally.TallyID)
	assert.True(t, tally.CreatedAt.IsZero())
}

func TestNewTallyNilCounts(t *testing.T) {
	tally := NewTally("clean", nil)
	assert.NotNil(t, tally.Counts)
	assert.Zero(t, tally.Total())
	assert.Empty(t, tally.Items())
}

func TestTallyTotalAndItems(t *testing.T) {
	tally := NewTally("consumer", map[string]int{"orange": 1, "apple": 2, "banana": 1})
	assert.Equal(t, 4, tally.Total())
	assert.Equal(t, []string{"apple", "banana", "orange"}, tally.Items())
}
