package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrettelZeroSeverityIsIdentity(t *testing.T) {
	// sweep every channel value: the gamma round trip truncates some of
	// them (12, 14, 241-243, 252-254), so a sample is not enough here
	for _, d := range []Deficiency{Protanopia, Deuteranopia, Tritanopia} {
		for v := 0; v < 256; v++ {
			c := Color{v, v, v}
			assert.Equal(t, c, Brettel(c, d, 0.0), "%s on %v", d, c)
		}
		for _, c := range sampleColors() {
			assert.Equal(t, c, Brettel(c, d, 0.0), "%s on %v", d, c)
		}
	}
}

func TestBrettelWithoutConfusionAxisIsIdentity(t *testing.T) {
	for _, c := range sampleColors() {
		assert.Equal(t, c, Brettel(c, Normal, 1.0))
		assert.Equal(t, c, Brettel(c, Achromatopsia, 1.0))
	}
}

func TestBrettelFullSeverityCollapsesRed(t *testing.T) {
	red := Color{255, 0, 0}

	// a protanope cannot see saturated red as red
	seen := Brettel(red, Protanopia, 1.0)
	assert.NotEqual(t, red, seen)
	assert.Less(t, seen.R, 200)
}

func TestBrettelIsDeterministic(t *testing.T) {
	c := Color{37, 142, 219}
	for _, d := range []Deficiency{Protanopia, Deuteranopia, Tritanopia} {
		assert.Equal(t, Brettel(c, d, 0.6), Brettel(c, d, 0.6))
	}
}

func TestBrettelStaysInGamut(t *testing.T) {
	for _, d := range []Deficiency{Protanopia, Deuteranopia, Tritanopia} {
		for _, c := range sampleColors() {
			assertInGamut(t, Brettel(c, d, 1.0))
			assertInGamut(t, Brettel(c, d, 0.6))
		}
	}
}

func TestMonochromeZeroSeverityIsIdentity(t *testing.T) {
	for _, c := range sampleColors() {
		assert.Equal(t, c, Monochrome(c, 0.0))
	}
}

func TestMonochromeRoundsHalfToEven(t *testing.T) {
	// 0.114*250 = 28.5 exactly; it must round down to the even value
	assert.Equal(t, Color{28, 28, 28}, Monochrome(Color{0, 0, 250}, 1.0))
	// 0.299*50 + 0.587*50 + 0.114*50 = 50 exactly, no tie to break
	assert.Equal(t, Color{50, 50, 50}, Monochrome(Color{50, 50, 50}, 1.0))
}

func TestMonochromeFullSeverityEqualizesChannels(t *testing.T) {
	for _, c := range sampleColors() {
		m := Monochrome(c, 1.0)
		assert.Equal(t, m.R, m.G, "color %v", c)
		assert.Equal(t, m.G, m.B, "color %v", c)

		z := int(math.RoundToEven(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)))
		assert.Equal(t, z, m.R, "color %v", c)
	}
}

func TestSimulate(t *testing.T) {
	c := Color{237, 104, 4}

	assert.Equal(t, c, Normal.Simulate(c))
	assert.Equal(t, Brettel(c, Protanopia, 1.0), Protanopia.Simulate(c))
	assert.Equal(t, Brettel(c, Protanomaly, 0.6), Protanomaly.Simulate(c))
	assert.Equal(t, Brettel(c, Deuteranopia, 1.0), Deuteranopia.Simulate(c))
	assert.Equal(t, Brettel(c, Deuteranomaly, 0.6), Deuteranomaly.Simulate(c))
	assert.Equal(t, Brettel(c, Tritanopia, 1.0), Tritanopia.Simulate(c))
	assert.Equal(t, Brettel(c, Tritanomaly, 0.6), Tritanomaly.Simulate(c))
	assert.Equal(t, Monochrome(c, 1.0), Achromatopsia.Simulate(c))
	assert.Equal(t, Monochrome(c, 0.6), Achromatomaly.Simulate(c))
}

func TestDeficiencyString(t *testing.T) {
	assert.Equal(t, "Normal", Normal.String())
	assert.Equal(t, "Tritanomaly", Tritanomaly.String())
	assert.Equal(t, "Unknown", Deficiency(99).String())
}
