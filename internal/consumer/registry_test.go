package consumer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{NameAnother, NameClean, NamePrimary, NameCleanConsumer, NameMain}, Names())
}

func TestLookup(t *testing.T) {
	for _, name := range []string{NamePrimary, NameAnother, NameCleanConsumer, NameClean, NameMain} {
		fn, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, fn, name)
	}

	_, err := Lookup("error_file")
	assert.ErrorIs(t, err, ErrConsumerNotFound)
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	tally, err := Run(NameCleanConsumer, Env{Out: &buf})
	require.NoError(t, err)
	require.NotNil(t, tally)
	assert.Equal(t, 4, tally.Total())
	assert.NotEmpty(t, buf.String())

	_, err = Run("missing", Env{Out: &buf})
	assert.ErrorIs(t, err, ErrConsumerNotFound)
}
