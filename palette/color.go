package palette

import (
	"fmt"
	"math/rand"
)

// Color represents a displayable sRGB color with each channel in [0, 255].
// Colors are value types; perturbation always produces a new value.
type Color struct {
	R, G, B int
}

// FormatError indicates a malformed hexadecimal color literal.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("palette: %q is not a color in the format '#RRGGBB'", e.Input)
}

// ParseHex parses a 7-character "#RRGGBB" string.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, &FormatError{s}
	}

	var c Color
	for i, ch := range []*int{&c.R, &c.G, &c.B} {
		v, ok := hexByte(s[1+2*i], s[2+2*i])
		if !ok {
			return Color{}, &FormatError{s}
		}
		*ch = v
	}

	return c, nil
}

// MustHex is ParseHex for literals known to be well-formed; it panics on
// a malformed input.
func MustHex(s string) Color {
	c, e := ParseHex(s)
	if e != nil {
		panic(e)
	}
	return c
}

// Parse accepts a color in either public literal form: a "#RRGGBB" string,
// a Color, or a [3]int channel triple.
func Parse(v interface{}) (Color, error) {
	switch c := v.(type) {
	case Color:
		return c, nil
	case string:
		return ParseHex(c)
	case [3]int:
		return Color{c[0], c[1], c[2]}, nil
	default:
		return Color{}, fmt.Errorf("palette: cannot interpret %T as a color", v)
	}
}

// ParseAll parses a slice of hex literals.
func ParseAll(hexes []string) ([]Color, error) {
	colors := make([]Color, len(hexes))
	for i, h := range hexes {
		c, e := ParseHex(h)
		if e != nil {
			return nil, e
		}
		colors[i] = c
	}
	return colors, nil
}

// Hex returns c in "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", byte(c.R), byte(c.G), byte(c.B))
}

// Random returns a color drawn uniformly from the sRGB cube.
func Random(rng *rand.Rand) Color {
	return Color{rng.Intn(256), rng.Intn(256), rng.Intn(256)}
}

// nearby shifts one randomly chosen channel of c by a uniform amount in
// [-0.05, 0.05] of its normalized value, clamped to the displayable range.
func nearby(rng *rand.Rand, c Color) Color {
	channels := [3]*int{&c.R, &c.G, &c.B}
	ch := channels[rng.Intn(3)]

	v := float64(*ch)/255 + (rng.Float64()*0.1 - 0.05)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	*ch = int(v * 255)

	return c
}

func hexByte(hi, lo byte) (int, bool) {
	h, ok := hexDigit(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexDigit(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}
