package palette

import "math"

// Lab is a color in CIE Lab space, derived transiently from an sRGB color
// during distance computation.
type Lab struct {
	L, A, B float64
}

// linearLookup maps each 8-bit sRGB channel value to its linear-light
// equivalent. It depends on no runtime input, so it is built once.
var linearLookup [256]float64

func init() {
	for i := range linearLookup {
		linearLookup[i] = linearFromSRGB(i)
	}
}

// linearFromSRGB gamma-decodes a single 0-255 sRGB channel value.
func linearFromSRGB(v int) float64 {
	fv := float64(v) / 255
	if fv < 0.04045 {
		return fv / 12.92
	}
	return math.Pow((fv+0.055)/1.055, 2.4)
}

// srgbFromLinear gamma-encodes a linear channel value back to 0-255,
// clamping out-of-gamut input.
func srgbFromLinear(v float64) int {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	if v < 0.0031308 {
		return int(0.5 + v*12.92*255)
	}
	return int(255 * (math.Pow(v, 1/2.4)*1.055 - 0.055))
}

// Linear returns the gamma-decoded linear RGB components of c.
func (c Color) Linear() (r, g, b float64) {
	return linearLookup[c.R], linearLookup[c.G], linearLookup[c.B]
}

// labF is the Lab companding function.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// labDecode gamma-decodes a normalized sRGB channel for the Lab pipeline.
// Channels above the linear threshold go through the Lab companding
// function rather than the 2.4-power curve.
func labDecode(v float64) float64 {
	if v > 0.04045 {
		return labF((v + 0.055) / 1.055)
	}
	return v / 12.92
}

// Lab converts c to CIE Lab via XYZ using the D65 reference white.
func (c Color) Lab() Lab {
	r := labDecode(float64(c.R) / 255)
	g := labDecode(float64(c.G) / 255)
	b := labDecode(float64(c.B) / 255)

	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041

	x = labF(x / 0.95047)
	y = labF(y / 1.0)
	z = labF(z / 1.08883)

	return Lab{
		L: 116*y - 16,
		A: 500 * (x - y),
		B: 200 * (y - z),
	}
}
