package consumer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

func TestItemCounterProcess(t *testing.T) {
	tests := []struct {
		name string
		data []string
		want map[string]int
	}{
		{
			name: "repeated apple",
			data: []string{"apple", "banana", "apple", "orange"},
			want: map[string]int{"apple": 2, "banana": 1, "orange": 1},
		},
		{
			name: "sample items",
			data: types.SampleItems(),
			want: map[string]int{"apple": 1, "banana": 1, "orange": 1, "grape": 1},
		},
		{
			name: "all identical",
			data: []string{"kiwi", "kiwi", "kiwi", "kiwi", "kiwi"},
			want: map[string]int{"kiwi": 5},
		},
		{
			name: "empty",
			data: []string{},
			want: map[string]int{},
		},
		{
			name: "nil",
			data: nil,
			want: map[string]int{},
		},
		{
			name: "empty string is an item",
			data: []string{"", "", "x"},
			want: map[string]int{"": 2, "x": 1},
		},
	}

	var p types.Processor = ItemCounter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Process(tt.data)
			require.NoError(t, err)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Process() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestItemCounterCountsMatchOccurrences(t *testing.T) {
	data := []string{"b", "a", "c", "a", "b", "a"}
	got, err := ItemCounter{}.Process(data)
	require.NoError(t, err)

	for _, s := range data {
		n := 0
		for _, d := range data {
			if d == s {
				n++
			}
		}
		if got[s] != n {
			t.Errorf("count of %q = %d, want %d", s, got[s], n)
		}
	}
	if len(got) != 3 {
		t.Errorf("got %d keys, want 3", len(got))
	}
}

func TestFormatCounts(t *testing.T) {
	got := formatCounts(map[string]int{"orange": 1, "apple": 2, "banana": 1})
	if got != "apple=2 banana=1 orange=1" {
		t.Errorf("formatCounts() = %q", got)
	}
	if got := formatCounts(map[string]int{}); got != "" {
		t.Errorf("formatCounts(empty) = %q, want empty", got)
	}
}
