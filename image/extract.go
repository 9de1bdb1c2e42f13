// Package image extracts reference palettes from images for use as
// optimizer targets.
package image

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/palettegen/palette"
)

// colors closer than this (CIE2000) are treated as duplicates of the more
// prevalent one
const minSeparation = 10

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD65
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		nil,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// ColorVol represents an extracted color, its Lab equivalent, and the
// number of sampled pixels it covers in the source image.
type ColorVol struct {
	Color palette.Color
	Lab   chromath.Lab
	Count int
}

type byCount []ColorVol

func (cvs byCount) Len() int           { return len(cvs) }
func (cvs byCount) Less(i, j int) bool { return cvs[i].Count > cvs[j].Count }
func (cvs byCount) Swap(i, j int)      { cvs[i], cvs[j] = cvs[j], cvs[i] }

type byDarkness []ColorVol

func (cvs byDarkness) Len() int           { return len(cvs) }
func (cvs byDarkness) Less(i, j int) bool { return cvs[i].Lab.L() < cvs[j].Lab.L() }
func (cvs byDarkness) Swap(i, j int)      { cvs[i], cvs[j] = cvs[j], cvs[i] }

// Load loads an image for use given a file path.
func Load(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, e
	}

	return i, nil
}

// Extract retrieves `num` colors that best represent the image located at
// `path`, ordered dark to light, for use as optimizer targets.
func Extract(path string, num int) ([]palette.Color, error) {
	img, e := Load(path)
	if e != nil {
		return nil, e
	}

	// quantize image
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)

	// map each quantized color to its prevalence
	m := make(map[palette.Color]int)
	w, h := o.Bounds().Max.X, o.Bounds().Max.Y
	for x := 0; x < w; x += 5 {
		for y := 0; y < h; y += 5 {
			r, g, b, a := o.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			m[palette.Color{R: int(byte(r)), G: int(byte(g)), B: int(byte(b))}]++
		}
	}

	cvs := make([]ColorVol, 0, len(m))
	for k, v := range m {
		cvs = append(cvs, ColorVol{k, rgb2Lab(k), v})
	}
	sort.Sort(byCount(cvs))
	cvs = dedupe(cvs)

	if len(cvs) < num {
		return nil, fmt.Errorf("image at %s does not have enough variation to support %d target colors", path, num)
	}

	cvs = cvs[:num]
	sort.Sort(byDarkness(cvs))

	colors := make([]palette.Color, num)
	for i, cv := range cvs {
		colors[i] = cv.Color
	}

	return colors, nil
}

// dedupe drops colors perceptually too close to a more prevalent one,
// folding their pixel counts into the color that absorbed them. cvs must
// already be sorted by prevalence.
func dedupe(cvs []ColorVol) []ColorVol {
	kept := make([]ColorVol, 0, len(cvs))

	for _, cv := range cvs {
		absorbed := false
		for i := range kept {
			if deltae.CIE2000(kept[i].Lab, cv.Lab, klch) < minSeparation {
				kept[i].Count += cv.Count
				absorbed = true
				break
			}
		}
		if !absorbed {
			kept = append(kept, cv)
		}
	}

	return kept
}

// converts an sRGB color to its Lab equivalent
func rgb2Lab(c palette.Color) chromath.Lab {
	rgb := chromath.RGB{float64(c.R), float64(c.G), float64(c.B)}
	xyz := rgb2Xyz.Convert(rgb)
	return lab2Xyz.Invert(xyz)
}
