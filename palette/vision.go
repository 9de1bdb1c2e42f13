package palette

import "math"

// Deficiency names a color vision condition to simulate. The -opia variants
// are full-severity, the -omaly variants partial (0.6).
type Deficiency int

const (
	Normal Deficiency = iota
	Protanopia
	Protanomaly
	Deuteranopia
	Deuteranomaly
	Tritanopia
	Tritanomaly
	Achromatopsia
	Achromatomaly
)

var deficiencyNames = [...]string{
	"Normal",
	"Protanopia",
	"Protanomaly",
	"Deuteranopia",
	"Deuteranomaly",
	"Tritanopia",
	"Tritanomaly",
	"Achromatopsia",
	"Achromatomaly",
}

func (d Deficiency) String() string {
	if d < 0 || int(d) >= len(deficiencyNames) {
		return "Unknown"
	}
	return deficiencyNames[d]
}

// brettelParams holds the empirical constants of the Brettel dichromacy
// model for one confusion axis: two projection matrices (row-major 3x3)
// and the normal of the plane separating their domains in linear RGB.
type brettelParams struct {
	cvdFromRGB1 [9]float64
	cvdFromRGB2 [9]float64
	separation  [3]float64
}

var (
	protan = brettelParams{
		cvdFromRGB1: [9]float64{
			0.1451, 1.20165, -0.34675,
			0.10447, 0.85316, 0.04237,
			0.00429, -0.00603, 1.00174,
		},
		cvdFromRGB2: [9]float64{
			0.14115, 1.16782, -0.30897,
			0.10495, 0.8573, 0.03776,
			0.00431, -0.00586, 1.00155,
		},
		separation: [3]float64{0.00048, 0.00416, -0.00464},
	}
	deutan = brettelParams{
		cvdFromRGB1: [9]float64{
			0.36198, 0.86755, -0.22953,
			0.26099, 0.64512, 0.09389,
			-0.01975, 0.02686, 0.99289,
		},
		cvdFromRGB2: [9]float64{
			0.37009, 0.8854, -0.25549,
			0.25767, 0.63782, 0.10451,
			-0.0195, 0.02741, 0.99209,
		},
		separation: [3]float64{-0.00293, -0.00645, 0.00938},
	}
	tritan = brettelParams{
		cvdFromRGB1: [9]float64{
			1.01354, 0.14268, -0.15622,
			-0.01181, 0.87561, 0.13619,
			0.07707, 0.81208, 0.11085,
		},
		cvdFromRGB2: [9]float64{
			0.93337, 0.19999, -0.13336,
			0.05809, 0.82565, 0.11626,
			-0.37923, 1.13825, 0.24098,
		},
		separation: [3]float64{0.0396, -0.02831, -0.01129},
	}
)

func (d Deficiency) params() *brettelParams {
	switch d {
	case Protanopia, Protanomaly:
		return &protan
	case Deuteranopia, Deuteranomaly:
		return &deutan
	case Tritanopia, Tritanomaly:
		return &tritan
	}
	return nil
}

// Simulate returns c as seen under the deficiency.
func (d Deficiency) Simulate(c Color) Color {
	switch d {
	case Protanopia, Deuteranopia, Tritanopia:
		return Brettel(c, d, 1.0)
	case Protanomaly, Deuteranomaly, Tritanomaly:
		return Brettel(c, d, 0.6)
	case Achromatopsia:
		return Monochrome(c, 1.0)
	case Achromatomaly:
		return Monochrome(c, 0.6)
	}
	return c
}

// Brettel projects c onto the dichromat confusion plane for the deficiency's
// axis and blends the projection with the original by severity (1 is the
// full simulation, 0 the identity). Deficiencies without a Brettel parameter
// set pass through unchanged.
func Brettel(c Color, d Deficiency, severity float64) Color {
	p := d.params()
	if p == nil || severity == 0 {
		// the gamma round trip truncates a handful of channel values,
		// so the identity case must not go through it
		return c
	}

	r, g, b := c.Linear()

	// The separation plane decides which of the two half-plane
	// projections applies.
	m := &p.cvdFromRGB1
	if r*p.separation[0]+g*p.separation[1]+b*p.separation[2] < 0 {
		m = &p.cvdFromRGB2
	}

	cr := m[0]*r + m[1]*g + m[2]*b
	cg := m[3]*r + m[4]*g + m[5]*b
	cb := m[6]*r + m[7]*g + m[8]*b

	cr = cr*severity + r*(1-severity)
	cg = cg*severity + g*(1-severity)
	cb = cb*severity + b*(1-severity)

	return Color{srgbFromLinear(cr), srgbFromLinear(cg), srgbFromLinear(cb)}
}

// Monochrome blends c toward its luminance by severity, approximating
// achromatopsia.
func Monochrome(c Color, severity float64) Color {
	z := math.RoundToEven(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
	blend := func(v int) int {
		return int(z*severity + (1-severity)*float64(v))
	}
	return Color{blend(c.R), blend(c.G), blend(c.B)}
}
