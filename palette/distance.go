package palette

import "math"

// CIEDE2000 returns the ΔE* 2000 difference between two Lab colors.
// The result is non-negative and exactly 0 for identical inputs, but it is
// not a true metric; callers must not rely on the triangle inequality.
func CIEDE2000(lab1, lab2 Lab) float64 {
	l1, a1, b1 := lab1.L, lab1.A, lab1.B
	l2, a2, b2 := lab2.L, lab2.A, lab2.B

	c1 := math.Sqrt(a1*a1 + b1*b1)
	c2 := math.Sqrt(a2*a2 + b2*b2)
	cabbar := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(cabbar)/(pow7(cabbar)+pow7(25))))
	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := math.Sqrt(a1p*a1p + b1*b1)
	c2p := math.Sqrt(a2p*a2p + b2*b2)

	h1p := math.Atan2(b1, a1p)
	if h1p < 0 {
		h1p += 2 * math.Pi
	}
	h2p := math.Atan2(b2, a2p)
	if h2p < 0 {
		h2p += 2 * math.Pi
	}

	dl := l2 - l1
	dc := c2p - c1p

	// The hue difference is wrapped into (-π, π] only when both chromas
	// are nonzero; otherwise the hue terms degenerate to zero on their own.
	dh := h2p - h1p
	if c1p*c2p != 0 {
		if dh > math.Pi {
			dh -= 2 * math.Pi
		} else if dh < -math.Pi {
			dh += 2 * math.Pi
		}
	}
	dhh := 2 * math.Sqrt(c1p*c2p) * math.Sin(dh/2)

	lbar := (l1 + l2) / 2
	cbar := (c1p + c2p) / 2
	hbar := (h1p + h2p) / 2
	if c1p*c2p != 0 && math.Abs(h1p-h2p) > math.Pi {
		hbar += math.Pi
	}

	t := 1 -
		0.17*math.Cos(hbar-rad(30)) +
		0.24*math.Cos(2*hbar) +
		0.32*math.Cos(3*hbar+rad(6)) -
		0.20*math.Cos(4*hbar-rad(63))

	sl := 1 + 0.015*sq(lbar-50)/math.Sqrt(20+sq(lbar-50))
	sc := 1 + 0.045*cbar
	sh := 1 + 0.015*cbar*t

	rt := -2 * math.Sqrt(pow7(cbar)/(pow7(cbar)+pow7(25))) *
		math.Sin(rad(60*math.Exp(-sq((hbar-rad(275))/rad(25)))))

	return math.Sqrt(sq(dl/sl) + sq(dc/sc) + sq(dhh/sh) + rt*(dc/sc)*(dhh/sh))
}

// ColorDistance returns the CIEDE2000 difference between two sRGB colors.
func ColorDistance(a, b Color) float64 {
	return CIEDE2000(a.Lab(), b.Lab())
}

// Distance returns the CIEDE2000 difference between two colors, each given
// in either public literal form (see Parse).
func Distance(a, b interface{}) (float64, error) {
	ca, e := Parse(a)
	if e != nil {
		return 0, e
	}
	cb, e := Parse(b)
	if e != nil {
		return 0, e
	}
	return ColorDistance(ca, cb), nil
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func sq(v float64) float64 { return v * v }

func pow7(v float64) float64 { return math.Pow(v, 7) }
