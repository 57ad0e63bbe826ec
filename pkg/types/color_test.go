package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColors(t *testing.T) {
	colors := Colors()
	require.Len(t, colors, 3)
	assert.Equal(t, []Color{Red, Green, Blue}, colors)

	tags := map[string]bool{}
	for _, c := range colors {
		assert.True(t, c.Valid())
		tags[c.Tag()] = true
	}
	assert.Equal(t, map[string]bool{"red": true, "green": true, "blue": true}, tags)
}

func TestColorsReturnsFreshSlice(t *testing.T) {
	first := Colors()
	first[0] = Blue
	assert.Equal(t, Red, Colors()[0])
}

func TestColorIdentity(t *testing.T) {
	assert.NotEqual(t, Red, Green)
	assert.NotEqual(t, Green, Blue)
	assert.NotEqual(t, Red, Blue)

	again, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, Red, again)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		tag     string
		want    Color
		wantErr error
	}{
		{tag: "red", want: Red},
		{tag: "green", want: Green},
		{tag: "blue", want: Blue},
		{tag: "RED", wantErr: ErrInvalidColor},
		{tag: "purple", wantErr: ErrInvalidColor},
		{tag: "", wantErr: ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseColor(tt.tag)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorOutOfRange(t *testing.T) {
	c := Color(7)
	assert.False(t, c.Valid())
	assert.Empty(t, c.Tag())
	assert.Equal(t, "Color(7)", c.String())

	_, err := c.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestColorJSON(t *testing.T) {
	type palette struct {
		Primary Color   `json:"primary"`
		Others  []Color `json:"others"`
	}

	data, err := json.Marshal(palette{Primary: Green, Others: []Color{Red, Blue}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"primary":"green","others":["red","blue"]}`, string(data))

	var back palette
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Green, back.Primary)
	assert.Equal(t, []Color{Red, Blue}, back.Others)

	err = json.Unmarshal([]byte(`{"primary":"teal"}`), &back)
	assert.ErrorIs(t, err, ErrInvalidColor)
}
