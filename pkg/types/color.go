package types

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is returned when a tag does not name a Color.
var ErrInvalidColor = errors.New("invalid color")

// Color is a member of the closed set Red, Green, Blue.
type Color int

const (
	Red   Color = iota // tag "red"
	Green              // tag "green"
	Blue               // tag "blue"
)

// colorTags is indexed by Color.
var colorTags = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

// Colors returns every member in declaration order.
func Colors() []Color {
	return []Color{Red, Green, Blue}
}

// ParseColor returns the Color whose tag is tag.
func ParseColor(tag string) (Color, error) {
	for i, t := range colorTags {
		if t == tag {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, tag)
}

// Valid reports whether c is one of the declared members.
func (c Color) Valid() bool {
	return c >= Red && c <= Blue
}

// Tag returns the fixed string tag of c, or "" if c is not a member.
func (c Color) Tag() string {
	if !c.Valid() {
		return ""
	}
	return colorTags[c]
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorTags[c]
}

// MarshalText encodes c as its tag.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, int(c))
	}
	return []byte(colorTags[c]), nil
}

// UnmarshalText decodes a tag produced by MarshalText.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
